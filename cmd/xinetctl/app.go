package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xinet/pkg/business/xinet"
	"github.com/omeyang/xinet/pkg/config/xconf"
	"github.com/omeyang/xinet/pkg/observability/xlog"
	"github.com/omeyang/xinet/pkg/observability/xmetrics"
)

const appName = "xinetctl"

// app 保存一次运行的状态：配置、日志、统计与按需创建的 Service。
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg      appConfig
	conf     xconf.Config
	logger   xlog.LoggerWithLevel
	closeLog func() error
	local    *xmetrics.Local
	svc      *xinet.Service
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{stdin: stdin, stdout: stdout, stderr: stderr}
}

// before 加载配置并构建日志器，在任何子命令之前运行。
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, conf, err := loadConfig(cmd.String("config"))
	if err != nil {
		return ctx, err
	}
	applyFlags(cmd, &cfg)
	if err := cfg.validate(); err != nil {
		return ctx, newUsageError(err.Error())
	}
	a.cfg, a.conf = cfg, conf

	logger, closeLog, err := buildLogger(cfg.Log, a.stderr)
	if err != nil {
		return ctx, newUsageError(err.Error())
	}
	a.logger, a.closeLog = logger, closeLog

	if cmd.Bool("stats") {
		local, err := xmetrics.NewLocal()
		if err != nil {
			return ctx, fmt.Errorf("init stats: %w", err)
		}
		a.local = local
	}
	return ctx, nil
}

// after 输出统计并释放资源。
func (a *app) after(ctx context.Context, _ *cli.Command) error {
	var errs []error
	if a.local != nil {
		errs = append(errs, a.printStats(ctx), a.local.Shutdown(ctx))
	}
	if a.closeLog != nil {
		errs = append(errs, a.closeLog())
	}
	return errors.Join(errs...)
}

func buildLogger(cfg logConfig, stderr io.Writer) (xlog.LoggerWithLevel, func() error, error) {
	b := xlog.New().
		SetOutput(stderr).
		SetLevelString(cfg.Level).
		SetFormat(cfg.Format).
		SetAttrs(slog.String("app", appName))
	if cfg.Filename != "" {
		b.SetRotation(cfg.Config)
	}
	return b.Build()
}

func (a *app) observer() xmetrics.Observer {
	if a.local == nil {
		return xmetrics.NoopObserver{}
	}
	return a.local
}

// service 返回共享的 Service，首次调用时加载厂商表。
func (a *app) service(ctx context.Context) (*xinet.Service, error) {
	if a.svc != nil {
		return a.svc, nil
	}
	opts := []xinet.Option{
		xinet.WithLogger(a.logger),
		xinet.WithObserver(a.observer()),
		xinet.WithCacheSize(a.cfg.Cache.Size),
	}
	table, err := xinet.LoadVendors(ctx, a.cfg.Vendor, opts...)
	if err != nil {
		return nil, err
	}
	svc, err := xinet.New(table, opts...)
	if err != nil {
		return nil, err
	}
	a.svc = svc
	return svc, nil
}

// call 按函数名调用并返回结果文本。
func (a *app) call(ctx context.Context, name string, args ...xinet.Value) (xinet.Value, error) {
	svc, err := a.service(ctx)
	if err != nil {
		return xinet.Null(), err
	}
	return svc.Call(ctx, name, args...)
}

func (a *app) printStats(ctx context.Context) error {
	counts, err := a.local.Snapshot(ctx)
	if err != nil {
		return err
	}
	for _, c := range counts {
		fmt.Fprintf(a.stderr, "%s\t%s\t%s\t%d\n", c.Component, c.Operation, c.Status, c.Count)
	}
	if a.svc != nil {
		st := a.svc.CacheStats()
		fmt.Fprintf(a.stderr, "cache\thits=%d\tmisses=%d\tratio=%.2f\n", st.Hits, st.Misses, st.HitRatio())
	}
	return nil
}

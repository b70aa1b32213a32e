package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/omeyang/xinet/pkg/business/xinet"
	"github.com/omeyang/xinet/pkg/config/xconf"
	"github.com/omeyang/xinet/pkg/lifecycle/xrun"
	"github.com/omeyang/xinet/pkg/observability/xlog"
)

// maxLineSize 批处理单行上限。
const maxLineSize = 1 << 20

type batchOptions struct {
	workers   int
	chunkSize int
	failFast  bool
}

type batchLine struct {
	no   int
	text string
}

type batchResult struct {
	out string
	err error
	// skipped 表示 fail-fast 取消后该行未被求值。
	skipped bool
}

func createBatchCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "batch",
		Usage: "从标准输入逐行调用函数",
		Description: `每行形如 "FUNC arg..."，参数字面量规则与 call 相同。
空行与 # 开头的行被跳过；其余每行输出一行结果，顺序与输入一致。
失败的行输出 "error: line N: ..."，处理继续；任一行失败时退出码为 1。`,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "并发度，0 使用配置或 GOMAXPROCS"},
			&cli.BoolFlag{Name: "fail-fast", Usage: "遇到第一个失败行即停止"},
			&cli.BoolFlag{Name: "watch-config", Usage: "监视配置文件，变更后更新日志级别"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := batchOptions{
				workers:   a.cfg.Batch.workers(),
				chunkSize: a.cfg.Batch.ChunkSize,
				failFast:  cmd.Bool("fail-fast"),
			}
			if w := cmd.Int("workers"); w > 0 {
				opts.workers = w
			}
			ctx = xlog.ContextWithAttrs(ctx, slog.String("run_id", uuid.NewString()))

			watch := cmd.Bool("watch-config")
			if watch && a.conf.Path() == "" {
				return newUsageError("--watch-config 需要 --config")
			}
			svc, err := a.service(ctx)
			if err != nil {
				return err
			}
			if watch {
				return a.runWatched(ctx, svc, opts)
			}
			return a.runBatch(ctx, svc, opts)
		},
	}
}

// runWatched 并行运行批处理与配置监视，批处理结束后停止监视。
func (a *app) runWatched(ctx context.Context, svc *xinet.Service, opts batchOptions) error {
	g, _ := xrun.NewGroup(ctx, xrun.WithLogger(a.logger), xrun.WithName("batch"))
	g.GoWithName("processor", func(ctx context.Context) error {
		if err := a.runBatch(ctx, svc, opts); err != nil {
			return err
		}
		g.Cancel(nil)
		return nil
	})
	g.GoWithName("config-watch", func(ctx context.Context) error {
		w, err := xconf.Watch(a.conf, a.onConfigChange(ctx))
		if err != nil {
			return err
		}
		w.StartAsync()
		<-ctx.Done()
		return w.Stop()
	})
	return g.Wait()
}

// onConfigChange 重载后只应用日志级别，其余配置在下次启动时生效。
func (a *app) onConfigChange(ctx context.Context) xconf.WatchCallback {
	return func(conf xconf.Config, err error) {
		if err != nil {
			a.logger.Warn(ctx, "reload config", xlog.Path(conf.Path()), xlog.Err(err))
			return
		}
		var lc logConfig
		if err := conf.Unmarshal("log", &lc); err != nil {
			a.logger.Warn(ctx, "decode reloaded config", xlog.Err(err))
			return
		}
		if lc.Level == "" {
			return
		}
		level, err := xlog.ParseLevel(lc.Level)
		if err != nil {
			a.logger.Warn(ctx, "invalid log level in config", xlog.Input(lc.Level), xlog.Err(err))
			return
		}
		if level != a.logger.GetLevel() {
			a.logger.SetLevel(level)
			a.logger.Info(ctx, "log level changed", slog.String("level", level.String()))
		}
	}
}

// runBatch 分块读取输入，块内并发求值，按输入顺序输出。
func (a *app) runBatch(ctx context.Context, svc *xinet.Service, opts batchOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, readErr := readLines(ctx, a.stdin)

	out := bufio.NewWriter(a.stdout)
	defer out.Flush() //nolint:errcheck // 结束时的刷新错误由最后一次 Flush 报告

	total, failed := 0, 0
	chunk := make([]batchLine, 0, opts.chunkSize)
	flush := func() error {
		results, err := evalChunk(ctx, svc, chunk, opts)
		if err != nil {
			return err
		}
		for i, r := range results {
			if r.skipped {
				continue
			}
			total++
			if r.err != nil {
				failed++
				fmt.Fprintf(out, "error: line %d: %v\n", chunk[i].no, r.err)
				if opts.failFast {
					return &exitError{code: 1}
				}
				continue
			}
			fmt.Fprintln(out, r.out)
		}
		chunk = chunk[:0]
		return out.Flush()
	}

read:
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				break read
			}
			chunk = append(chunk, l)
			if len(chunk) < opts.chunkSize {
				continue
			}
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := <-readErr; err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err := flush(); err != nil {
		return err
	}

	a.logger.Info(ctx, "batch finished", xlog.Count(total), slog.Int("failed", failed))
	if failed > 0 {
		return &exitError{code: 1}
	}
	return nil
}

// readLines 在独立 goroutine 中读取输入，ctx 取消后停止发送。
// 返回的错误通道在 lines 关闭后恰好收到一个值。
func readLines(ctx context.Context, r io.Reader) (<-chan batchLine, <-chan error) {
	lines := make(chan batchLine)
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		defer close(lines)
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		no := 0
		for sc.Scan() {
			no++
			text := strings.TrimSpace(sc.Text())
			if text == "" || strings.HasPrefix(text, "#") {
				continue
			}
			select {
			case lines <- batchLine{no: no, text: text}:
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- sc.Err()
	}()
	return lines, errc
}

// evalChunk 并发求值一块输入，结果与输入下标对应。
// 只有 ctx 取消时返回错误；fail-fast 时首个失败行取消块内其余求值，
// 尚未开始的行标记为 skipped，下标可能小于失败行。
func evalChunk(ctx context.Context, svc *xinet.Service, chunk []batchLine, opts batchOptions) ([]batchResult, error) {
	results := make([]batchResult, len(chunk))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers)
	for i, l := range chunk {
		g.Go(func() error {
			if gctx.Err() != nil {
				results[i] = batchResult{skipped: true}
				return nil
			}
			results[i] = evalLine(gctx, svc, l.text)
			if opts.failFast && results[i].err != nil {
				return results[i].err
			}
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // 失败已记录在 results 中
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func evalLine(ctx context.Context, svc *xinet.Service, line string) batchResult {
	name, args, err := parseCall(line)
	if err != nil {
		return batchResult{err: err}
	}
	v, err := svc.Call(ctx, name, args...)
	if err != nil {
		return batchResult{err: err}
	}
	return batchResult{out: v.String()}
}

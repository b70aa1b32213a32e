package xinet

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/omeyang/xinet/pkg/observability/xlog"
	"github.com/omeyang/xinet/pkg/observability/xmetrics"
	"github.com/omeyang/xinet/pkg/util/xoui"
)

// VendorConfig 描述厂商表的来源。
type VendorConfig struct {
	// Path 为 manuf 格式文件路径，为空时使用内置数据。
	Path string `koanf:"path" json:"path"`
	// Strict 为 true 时重复前缀导致加载失败，否则保留先出现的条目并记录警告。
	Strict bool `koanf:"strict" json:"strict"`
}

// LoadVendors 按配置构建厂商表。仅使用 opts 中的日志器与观测器。
func LoadVendors(ctx context.Context, cfg VendorConfig, opts ...Option) (*xoui.Table, error) {
	o := applyOptions(opts)
	logger := o.logger.With(xlog.Component(componentName))

	source := cfg.Path
	if source == "" {
		source = "embedded"
	}
	ctx, span := xmetrics.Start(ctx, o.observer, xmetrics.SpanOptions{
		Component: componentName,
		Operation: "vendor_load",
		Attrs:     []xmetrics.Attr{xmetrics.String("source", source)},
	})

	var loadOpts []xoui.Option
	duplicates := 0
	if !cfg.Strict {
		loadOpts = append(loadOpts, xoui.WithDuplicateHandler(func(err *xoui.LoadError, kept, _ xoui.Entry) {
			duplicates++
			logger.Warn(ctx, "duplicate vendor prefix",
				xlog.Path(source), xlog.Input(err.Text), xlog.Err(err),
				slog.String("kept", kept.Short))
		}))
	}

	start := time.Now()
	table, err := loadTable(cfg.Path, loadOpts)
	span.End(xmetrics.Result{
		Err:   err,
		Attrs: []xmetrics.Attr{xmetrics.Int("duplicates", duplicates)},
	})
	if err != nil {
		logger.Error(ctx, "load vendor table", xlog.Path(source), xlog.Err(err))
		return nil, err
	}

	logger.Info(ctx, "vendor table loaded",
		xlog.Path(source), xlog.Count(table.Len()),
		xlog.Duration(time.Since(start)), slog.Int("duplicates", duplicates))
	return table, nil
}

func loadTable(path string, opts []xoui.Option) (*xoui.Table, error) {
	if path == "" {
		return xoui.LoadEmbedded(opts...)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("xinet: open vendor file: %w", err)
	}
	defer f.Close() //nolint:errcheck // 只读文件
	table, err := xoui.LoadReader(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("xinet: %s: %w", path, err)
	}
	return table, nil
}

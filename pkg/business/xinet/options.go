package xinet

import (
	"github.com/omeyang/xinet/pkg/observability/xlog"
	"github.com/omeyang/xinet/pkg/observability/xmetrics"
)

// DefaultCacheSize 默认的厂商查找缓存容量（按完整 MAC 地址计）。
const DefaultCacheSize = 4096

type options struct {
	logger    xlog.Logger
	observer  xmetrics.Observer
	cacheSize int
}

func defaultOptions() *options {
	return &options{
		logger:    xlog.Discard(),
		observer:  xmetrics.NoopObserver{},
		cacheSize: DefaultCacheSize,
	}
}

// Option 配置 [Service] 与 [LoadVendors]。
type Option func(*options)

// WithLogger 设置日志器，nil 忽略。
func WithLogger(l xlog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver 设置观测器，nil 忽略。
func WithObserver(obs xmetrics.Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WithCacheSize 设置厂商查找缓存容量，n <= 0 关闭缓存。
func WithCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

package xoui

// DuplicateHandler 在加载时发现重复前缀时被调用。
// kept 为保留的（先出现的）条目，dup 为被丢弃的条目。
type DuplicateHandler func(err *LoadError, kept, dup Entry)

// Option 配置加载行为。
type Option func(*options)

type options struct {
	onDuplicate DuplicateHandler
}

func defaultOptions() *options {
	return &options{}
}

// WithDuplicateHandler 设置重复前缀的处理函数。
//
// 默认遇到重复前缀时加载失败（[ErrDuplicate]）。设置后改为保留先出现的条目，
// 并对每个重复项调用 fn。fn 为 nil 时保持默认行为。
func WithDuplicateHandler(fn DuplicateHandler) Option {
	return func(o *options) {
		o.onDuplicate = fn
	}
}

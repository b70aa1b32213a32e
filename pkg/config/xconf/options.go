package xconf

// Options 定义配置加载选项。
type Options struct {
	// Delim 配置键分隔符，默认 "."。
	Delim string

	// Tag Unmarshal 使用的结构体标签，默认 "koanf"。
	Tag string

	// EnvPrefix 非空时，以该前缀开头的环境变量覆盖文件中的配置。
	EnvPrefix string
}

// Option 定义配置选项函数类型。
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		Delim: ".",
		Tag:   "koanf",
	}
}

// WithDelim 设置配置键分隔符。
func WithDelim(delim string) Option {
	return func(o *Options) {
		if delim != "" {
			o.Delim = delim
		}
	}
}

// WithTag 设置结构体标签名。
func WithTag(tag string) Option {
	return func(o *Options) {
		if tag != "" {
			o.Tag = tag
		}
	}
}

// WithEnvPrefix 启用环境变量覆盖。
//
// 去掉前缀后转小写，'_' 换成分隔符即为配置键：
// 前缀 "XINET_" 下 XINET_CACHE_SIZE=64 覆盖 cache.size。
// 值按字符串写入，Unmarshal 时做弱类型转换。
func WithEnvPrefix(prefix string) Option {
	return func(o *Options) {
		o.EnvPrefix = prefix
	}
}

package xconf

import "github.com/knadh/koanf/v2"

// Format 定义配置文件格式。
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Config 定义配置接口。
// 基础读取操作直接使用 Client() 返回的 koanf 实例。
type Config interface {
	// Client 返回当前 koanf 实例。Reload 后旧实例仍可用，但数据过期。
	Client() *koanf.Koanf

	// Unmarshal 将 path 下的配置解码到 target，path 为空解码整个配置。
	// target 中配置未出现的字段保持原值，可先填默认值再解码。
	Unmarshal(path string, target any) error

	// Reload 重新读取配置文件并重新应用环境变量覆盖。
	// 从字节数据创建的 Config 返回 [ErrNotFile]。
	Reload() error

	// Path 返回配置文件路径，从字节数据创建时为空。
	Path() string

	Format() Format
}

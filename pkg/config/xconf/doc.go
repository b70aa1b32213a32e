// Package xconf 提供配置加载与文件监视，基于 koanf 与 fsnotify。
//
// # 加载
//
//	cfg, err := xconf.New("/etc/xinet/xinet.yaml", xconf.WithEnvPrefix("XINET_"))
//	opts := defaults()
//	err = cfg.Unmarshal("", &opts) // 未出现的字段保持默认值
//
// 支持 YAML（.yaml/.yml）与 JSON（.json）。设置 [WithEnvPrefix] 后环境变量
// 在文件之上覆盖，例如 XINET_LOG_LEVEL=debug 覆盖 log.level。
// Unmarshal 使用 mapstructure 弱类型转换，字符串 "64" 可解码到 int。
//
// # 并发
//
// Reload 串行执行，解析成功后原子替换 koanf 实例；解析失败时保留旧配置。
// Client() 返回快照，Reload 后旧指针仍可用但数据过期，应每次重新获取。
//
// # 监视
//
// [WatchFile] 监视任意文件并在变更后执行重载函数（内置防抖），
// [Watch] 是作用于配置文件本身的便捷形式。
package xconf

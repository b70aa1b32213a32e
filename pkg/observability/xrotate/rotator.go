package xrotate

import "io"

// Rotator 是可手动轮转的日志输出，并发安全。
type Rotator interface {
	io.WriteCloser

	// Rotate 关闭当前文件并开始新文件，旧文件按配置清理。
	Rotate() error
}

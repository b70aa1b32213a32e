package xrotate

import "errors"

var (
	ErrEmptyFilename = errors.New("xrotate: filename is required")

	// ErrInvalidConfig 大小、数量或天数越界，或没有任何备份清理策略。
	ErrInvalidConfig = errors.New("xrotate: invalid config")

	// ErrClosed Close 之后的 Write、Rotate 与重复 Close 返回此错误。
	ErrClosed = errors.New("xrotate: rotator is closed")
)

package xlog

import (
	"log/slog"
	"time"
)

// 常用字段名，保持各组件输出一致。
const (
	KeyError     = "error"
	KeyDuration  = "duration"
	KeyCount     = "count"
	KeyComponent = "component"
	KeyOperation = "operation"
	KeyInput     = "input"
	KeyPath      = "path"
)

// Err 创建错误属性。err 为 nil 时返回空属性，slog 会忽略它。
//
//	if err != nil {
//	    logger.Error(ctx, "load vendor table", xlog.Err(err))
//	}
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Duration 创建耗时属性，输出 time.Duration 的文本形式（如 "1.5ms"）。
func Duration(d time.Duration) slog.Attr {
	return slog.String(KeyDuration, d.String())
}

// Count 创建计数属性。
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}

// Component 标识日志来源组件。
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Operation 标识当前操作。
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// Input 记录导致失败的原始输入。
func Input(s string) slog.Attr {
	return slog.String(KeyInput, s)
}

// Path 记录文件路径。
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

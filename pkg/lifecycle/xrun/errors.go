package xrun

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

var (
	// ErrSignal 表示因收到系统信号而终止，用 errors.Is 判断。
	ErrSignal = errors.New("xrun: received signal")

	// ErrNilFunc 表示传入了 nil 任务函数。
	ErrNilFunc = errors.New("xrun: nil func")
)

// SignalError 携带触发退出的信号。
type SignalError struct {
	Signal os.Signal
}

func (e *SignalError) Error() string {
	if e.Signal == nil {
		return "xrun: received signal <nil>"
	}
	return fmt.Sprintf("xrun: received signal %s", e.Signal)
}

func (e *SignalError) Unwrap() error {
	return ErrSignal
}

// ExitCode 返回 shell 约定的退出码 128+signo，非 Unix 信号返回 1。
func (e *SignalError) ExitCode() int {
	if s, ok := e.Signal.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}

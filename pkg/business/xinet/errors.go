package xinet

import (
	"errors"
	"fmt"
)

var (
	// ErrArity 参数个数不在函数允许的范围内。
	ErrArity = errors.New("xinet: wrong number of arguments")

	// ErrArgType 参数类型不被该位置接受。
	ErrArgType = errors.New("xinet: unsupported argument type")

	// ErrUnknownFunction [Service.Call] 收到未注册的函数名。
	ErrUnknownFunction = errors.New("xinet: unknown function")

	// ErrNilSource 创建 [Service] 时未提供厂商数据源。
	ErrNilSource = errors.New("xinet: nil vendor source")
)

// CallError 描述一次函数调用失败。
//
// Arg 为出错参数的下标（从 0 开始），参数个数错误时为 -1；
// Input 为该参数的文本形式，便于宿主重现失败输入。
// Err 为底层错误（*xmac.ParseError、xnet 的哨兵错误、[ErrArgType] 等），
// 可用 errors.Is / errors.As 判断。
type CallError struct {
	Func  string
	Arg   int
	Input string
	Err   error
}

func (e *CallError) Error() string {
	if e.Arg < 0 {
		return fmt.Sprintf("%s: %v", e.Func, e.Err)
	}
	return fmt.Sprintf("%s: argument %d (%q): %v", e.Func, e.Arg, e.Input, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

func argError(fn string, idx int, v Value, err error) error {
	return &CallError{Func: fn, Arg: idx, Input: v.String(), Err: err}
}

func typeError(fn string, idx int, v Value) error {
	return argError(fn, idx, v, fmt.Errorf("%w: %s", ErrArgType, v.Kind()))
}

func arityError(fn string, got, minArgs, maxArgs int) error {
	var err error
	if minArgs == maxArgs {
		err = fmt.Errorf("%w: want %d, got %d", ErrArity, minArgs, got)
	} else {
		err = fmt.Errorf("%w: want %d to %d, got %d", ErrArity, minArgs, maxArgs, got)
	}
	return &CallError{Func: fn, Arg: -1, Err: err}
}

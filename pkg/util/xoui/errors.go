package xoui

import (
	"errors"
	"fmt"
)

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrFieldCount 行的字段数不在 [2, 4] 范围内。
	ErrFieldCount = errors.New("xoui: bad field count")

	// ErrPrefixSyntax 前缀文本无法解析。
	ErrPrefixSyntax = errors.New("xoui: bad prefix syntax")

	// ErrPrefixLength 前缀长度超出 [24, 48]。
	ErrPrefixLength = errors.New("xoui: prefix length out of range")

	// ErrDuplicate 同一 (前缀, 长度) 出现多次。
	ErrDuplicate = errors.New("xoui: duplicate prefix")
)

// Kind 标识加载失败的类别。
type Kind uint8

const (
	// KindFieldCount 字段数错误。
	KindFieldCount Kind = iota + 1
	// KindPrefixSyntax 前缀语法错误。
	KindPrefixSyntax
	// KindPrefixLength 前缀长度越界。
	KindPrefixLength
	// KindDuplicate 重复条目。
	KindDuplicate
)

// String 返回类别名称。
func (k Kind) String() string {
	switch k {
	case KindFieldCount:
		return "field count"
	case KindPrefixSyntax:
		return "prefix syntax"
	case KindPrefixLength:
		return "prefix length"
	case KindDuplicate:
		return "duplicate"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// LoadError 描述厂商数据加载中某一行的错误。
type LoadError struct {
	// Line 1 起始的行号。
	Line int
	Kind Kind
	// Text 出错行（已去除首尾空白）。
	Text string
	// Count 实际字段数，仅 KindFieldCount 时有效。
	Count int
	// Err 底层原因，可能为 nil。
	Err error
}

// Error 实现 error 接口。
func (e *LoadError) Error() string {
	var detail string
	switch e.Kind {
	case KindFieldCount:
		detail = fmt.Sprintf("got %d fields, want 2..4", e.Count)
	case KindDuplicate:
		detail = "prefix already defined"
	default:
		if e.Err != nil {
			detail = e.Err.Error()
		}
	}
	return fmt.Sprintf("xoui: line %d: %s: %s: %q", e.Line, e.Kind, detail, e.Text)
}

// Unwrap 返回对应的哨兵错误和底层原因。
func (e *LoadError) Unwrap() []error {
	var sentinel error
	switch e.Kind {
	case KindFieldCount:
		sentinel = ErrFieldCount
	case KindPrefixSyntax:
		sentinel = ErrPrefixSyntax
	case KindPrefixLength:
		sentinel = ErrPrefixLength
	default:
		sentinel = ErrDuplicate
	}
	if e.Err == nil {
		return []error{sentinel}
	}
	return []error{sentinel, e.Err}
}

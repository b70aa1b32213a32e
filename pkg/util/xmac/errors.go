package xmac

import (
	"errors"
	"fmt"
)

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrInvalidCharacter 表示输入包含十六进制数字和分隔符以外的字符。
	ErrInvalidCharacter = errors.New("xmac: invalid character")

	// ErrInvalidLength 表示去除分隔符后十六进制数字个数不是 12。
	ErrInvalidLength = errors.New("xmac: invalid length")

	// ErrUnknownStyle 表示无法识别的格式名称。
	ErrUnknownStyle = errors.New("xmac: unknown format style")

	// ErrMixedCaseSpec 表示格式说明符同时包含大写和小写字母。
	ErrMixedCaseSpec = errors.New("xmac: mixed case format specifier")

	// ErrNilReceiver 表示在 nil 指针上调用反序列化方法。
	ErrNilReceiver = errors.New("xmac: nil receiver")
)

// Kind 标识解析失败的类别。
type Kind uint8

const (
	// KindInvalidCharacter 非法字符。
	KindInvalidCharacter Kind = iota + 1
	// KindInvalidLength 十六进制数字个数错误。
	KindInvalidLength
)

// ParseError 描述一次 MAC 地址解析失败。
//
// 携带原始输入和出错细节，调用方可据此还原失败现场；
// 通过 errors.Is 可与 [ErrInvalidCharacter] / [ErrInvalidLength] 匹配。
type ParseError struct {
	Kind Kind
	// Input 原始输入（未去除空白）。
	Input string
	// Char 首个非法字符，仅 KindInvalidCharacter 时有效。
	Char rune
	// Digits 实际读到的十六进制数字个数，仅 KindInvalidLength 时有效。
	Digits int
}

// Error 实现 error 接口。
func (e *ParseError) Error() string {
	switch e.Kind {
	case KindInvalidCharacter:
		return fmt.Sprintf("xmac: invalid character %q in MAC address %q", e.Char, e.Input)
	default:
		return fmt.Sprintf("xmac: invalid length for MAC address %q: got %d hex digits, want %d",
			e.Input, e.Digits, hexDigits)
	}
}

// Unwrap 返回对应的哨兵错误。
func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case KindInvalidCharacter:
		return ErrInvalidCharacter
	default:
		return ErrInvalidLength
	}
}

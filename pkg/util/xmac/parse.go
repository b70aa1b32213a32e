package xmac

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// hexDigits 一个完整 MAC 地址的十六进制数字个数。
const hexDigits = 12

// Parse 解析 MAC 地址字符串。
//
// 解析是宽松的：
//   - 去除首尾空白和可选的 "0x" 前缀
//   - 分隔符 '-'、'.'、':' 直接忽略，不校验位置和数量
//   - 十六进制数字大小写不敏感
//
// 因此 "aa:bb:cc:dd:ee:ff"、"aa-bb-cc-dd-ee-ff"、"aabb.ccdd.eeff"、
// "aabbccddeeff"、"0xaabbccddeeff" 得到同一个值。
//
// 其他字符返回 [ErrInvalidCharacter]；去除分隔符后不是 12 个数字返回 [ErrInvalidLength]。
// 具体错误类型为 [*ParseError]。
func Parse(s string) (Addr, error) {
	return parse(s, false)
}

// ParseExtend 与 [Parse] 相同，但不足 12 个数字时在右侧补 '0'。
//
// 仅用于厂商前缀解析："08:00:87" 与 "08:00:87:00:00:00" 得到同一个值。
// 超过 12 个数字仍返回 [ErrInvalidLength]。
func ParseExtend(s string) (Addr, error) {
	return parse(s, true)
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParse(s string) Addr {
	addr, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xmac.MustParse(%q): %v", s, err))
	}
	return addr
}

// ParseBytes 从字节切片创建 MAC 地址。
// 切片长度必须为 6。
func ParseBytes(b []byte) (Addr, error) {
	if len(b) != 6 {
		return Addr{}, fmt.Errorf("%w: expected 6 bytes, got %d", ErrInvalidLength, len(b))
	}
	var addr Addr
	copy(addr.bytes[:], b)
	return addr, nil
}

func parse(in string, extend bool) (Addr, error) {
	s := strings.TrimSpace(in)
	s = strings.TrimPrefix(s, "0x")

	var v uint64
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '-' || c == '.' || c == ':' {
			continue
		}
		d := hexValue(c)
		if d < 0 {
			r, _ := utf8.DecodeRuneInString(s[i:])
			return Addr{}, &ParseError{Kind: KindInvalidCharacter, Input: in, Char: r}
		}
		// 超出 12 位后只计数，继续扫描以便优先报告非法字符
		if n < hexDigits {
			v = v<<4 | uint64(d)
		}
		n++
	}

	if extend && n < hexDigits {
		v <<= 4 * uint(hexDigits-n)
		n = hexDigits
	}
	if n != hexDigits {
		return Addr{}, &ParseError{Kind: KindInvalidLength, Input: in, Digits: n}
	}
	return AddrFromUint64(v), nil
}

// hexValue 返回十六进制字符的数值，无效字符返回 -1。
func hexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}

package xoui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/omeyang/xinet/pkg/util/xmac"
)

// 前缀长度边界（位）。
const (
	MinBits = 24
	MaxBits = 48
)

// Prefix 是 48 位地址空间中的可变长前缀。
//
// 长度以外的低位恒为零。零值不是合法前缀，使用 [NewPrefix] 或 [ParsePrefix] 创建。
type Prefix struct {
	value uint64
	bits  uint8
}

// NewPrefix 由地址和长度构造前缀，长度以外的位被清零。
func NewPrefix(addr xmac.Addr, bits int) (Prefix, error) {
	if bits < MinBits || bits > MaxBits {
		return Prefix{}, fmt.Errorf("%w: /%d", ErrPrefixLength, bits)
	}
	return Prefix{value: addr.Uint64() & maskOf(uint8(bits)), bits: uint8(bits)}, nil
}

// PrefixFrom 返回地址的 /48 前缀，即搜索键。
func PrefixFrom(addr xmac.Addr) Prefix {
	return Prefix{value: addr.Uint64(), bits: MaxBits}
}

// ParsePrefix 解析 "MAC" 或 "MAC/len" 形式的前缀。
//
// MAC 部分按 [xmac.ParseExtend] 解析，不足 12 位右侧补零；省略长度时为 /24。
// 长度非数字返回 [ErrPrefixSyntax]，越界返回 [ErrPrefixLength]。
func ParsePrefix(s string) (Prefix, error) {
	text, lenText, hasLen := strings.Cut(s, "/")
	bits := MinBits
	if hasLen {
		n, err := strconv.ParseUint(lenText, 10, 8)
		if err != nil {
			return Prefix{}, fmt.Errorf("%w: length %q: %w", ErrPrefixSyntax, lenText, err)
		}
		bits = int(n)
	}
	if bits < MinBits || bits > MaxBits {
		return Prefix{}, fmt.Errorf("%w: /%d", ErrPrefixLength, bits)
	}
	addr, err := xmac.ParseExtend(text)
	if err != nil {
		return Prefix{}, fmt.Errorf("%w: %w", ErrPrefixSyntax, err)
	}
	return NewPrefix(addr, bits)
}

// maskOf 返回长度为 bits 的 48 位网络掩码。
func maskOf(bits uint8) uint64 {
	return (1<<bits - 1) << (MaxBits - bits)
}

// Addr 返回前缀的起始地址。
func (p Prefix) Addr() xmac.Addr {
	return xmac.AddrFromUint64(p.value)
}

// Bits 返回前缀长度。
func (p Prefix) Bits() int {
	return int(p.bits)
}

// IsValid 报告 p 的长度是否在 [24, 48] 内。
func (p Prefix) IsValid() bool {
	return p.bits >= MinBits && p.bits <= MaxBits
}

// Contains 报告 other 是否落在 p 内：p 不长于 other，且 other 的前 p.Bits() 位与 p 相同。
func (p Prefix) Contains(other Prefix) bool {
	if p.bits > other.bits {
		return false
	}
	return other.value&maskOf(p.bits) == p.value
}

// ContainsAddr 报告地址是否落在 p 内。
func (p Prefix) ContainsAddr(addr xmac.Addr) bool {
	return p.Contains(PrefixFrom(addr))
}

// Compare 按 (值, 长度) 比较。
func (p Prefix) Compare(o Prefix) int {
	switch {
	case p.value < o.value:
		return -1
	case p.value > o.value:
		return 1
	case p.bits < o.bits:
		return -1
	case p.bits > o.bits:
		return 1
	default:
		return 0
	}
}

// String 返回小写文本：/24 前缀为 "08:00:87"，其余为 "8c:47:6e:30:00:00/28"。
func (p Prefix) String() string {
	s := p.Addr().String()
	if p.bits == MinBits {
		return s[:8]
	}
	return s + "/" + strconv.Itoa(int(p.bits))
}

// MarshalText 实现 [encoding.TextMarshaler]。
func (p Prefix) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

package xnet

import (
	"fmt"
	"math/bits"
	"net/netip"
	"strconv"
)

type maskKind uint8

const (
	maskAbsent maskKind = iota
	maskBits
	maskText
)

// Mask 是与地址分开提供的网络掩码。
//
// 零值表示未提供。可以是整数前缀长度（[MaskBits]），也可以是文本（[MaskText]），
// 文本为十进制数字（"22"）或点分掩码（"255.255.252.0"、"ffff:ffff::"）。
type Mask struct {
	kind maskKind
	bits int64
	text string
}

// MaskBits 返回整数前缀长度形式的掩码。范围在应用到地址时校验。
func MaskBits(n int64) Mask {
	return Mask{kind: maskBits, bits: n}
}

// MaskText 返回文本形式的掩码。
func MaskText(s string) Mask {
	return Mask{kind: maskText, text: s}
}

// IsAbsent 报告掩码是否未提供。
func (m Mask) IsAbsent() bool {
	return m.kind == maskAbsent
}

// String 返回掩码的原始文本。
func (m Mask) String() string {
	switch m.kind {
	case maskBits:
		return strconv.FormatInt(m.bits, 10)
	case maskText:
		return m.text
	default:
		return ""
	}
}

// PrefixLen 解析掩码在 addr 协议族下对应的前缀长度。
func (m Mask) PrefixLen(addr netip.Addr) (int, error) {
	maxBits := addr.BitLen()
	switch m.kind {
	case maskBits:
		return checkPrefixLen(m.bits, maxBits)
	case maskText:
		if isDigits(m.text) {
			n, err := strconv.ParseInt(m.text, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("%w: %q", ErrInvalidPrefixLen, m.text)
			}
			return checkPrefixLen(n, maxBits)
		}
		mask, err := netip.ParseAddr(m.text)
		if err != nil || mask.Zone() != "" {
			return 0, fmt.Errorf("%w: %q", ErrInvalidMask, m.text)
		}
		if mask.Is4In6() {
			mask = mask.Unmap()
		}
		if mask.BitLen() != maxBits {
			return 0, fmt.Errorf("%w: %d-bit mask %q for %d-bit address %s", ErrInvalidMask,
				mask.BitLen(), m.text, maxBits, addr)
		}
		return MaskPrefixLen(mask)
	default:
		return 0, ErrMissingMask
	}
}

// MaskPrefixLen 返回点分掩码对应的前缀长度。
// 掩码必须是前缀全 1、后缀全 0 的形式，否则返回 [ErrNonContiguousMask]。
func MaskPrefixLen(mask netip.Addr) (int, error) {
	if v, ok := AddrToUint32(mask); ok && mask.Is4() {
		inverted := ^v
		if inverted&(inverted+1) != 0 {
			return 0, fmt.Errorf("%w: %s", ErrNonContiguousMask, mask)
		}
		return bits.LeadingZeros32(inverted), nil
	}
	if !mask.Is6() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidMask, mask)
	}
	hi, lo := addrToUint128(mask)
	ones := bits.LeadingZeros64(^hi)
	if ones < 64 {
		if hi<<ones != 0 || lo != 0 {
			return 0, fmt.Errorf("%w: %s", ErrNonContiguousMask, mask)
		}
		return ones, nil
	}
	n := bits.LeadingZeros64(^lo)
	if n < 64 && lo<<n != 0 {
		return 0, fmt.Errorf("%w: %s", ErrNonContiguousMask, mask)
	}
	return 64 + n, nil
}

func checkPrefixLen(n int64, maxBits int) (int, error) {
	if n < 0 || n > int64(maxBits) {
		return 0, fmt.Errorf("%w: /%d (max %d)", ErrInvalidPrefixLen, n, maxBits)
	}
	return int(n), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

package xmac

import (
	"fmt"
	"strings"
)

// 格式说明符前导标志。
const (
	// FlagFallback 未知风格名回退为 [StyleColon]，不报错。
	FlagFallback = '~'
	// FlagNullOnBad 待格式化的 MAC 无法解析时返回空结果而非错误。
	FlagNullOnBad = '?'
)

// FormatSpec 是解析后的格式说明符。
type FormatSpec struct {
	Style Style
	// Upper 输出大写十六进制。说明符中出现任何大写字母即为 true。
	Upper bool
	// Fallback 对应 '~' 标志。
	Fallback bool
	// NullOnBad 对应 '?' 标志。
	NullOnBad bool
}

// DefaultFormatSpec 未提供说明符时使用：小写冒号格式。
var DefaultFormatSpec = FormatSpec{Style: StyleColon}

// specNames 说明符名称（小写）到风格的映射。
var specNames = map[string]Style{
	"":             StyleColon,
	"hex":          StyleColon,
	"hexstring":    StyleColon,
	"colon":        StyleColon,
	"hexadecimal":  StylePrefixed,
	"bare":         StylePlain,
	"dot":          StyleDots,
	"dash":         StyleDashed,
	"canonical":    StyleDashed,
	"interface-id": StyleInterfaceID,
	"link-local":   StyleLinkLocal,
}

// ParseFormatSpec 解析格式说明符。
//
// 说明符由任意个前导标志（'~'、'?'，可重复、可混排）加风格名组成：
//
//	"hex"     → 冒号，小写
//	"HEX"     → 冒号，大写
//	"~de$H"   → 未知名称回退为冒号（大写，因含大写字母）
//	"?dash"   → 短线，MAC 无效时返回空
//
// 风格名大小写不敏感，但不能大小写混杂，除非设置了 '~'。
func ParseFormatSpec(spec string) (FormatSpec, error) {
	var fs FormatSpec
	name := spec
flags:
	for len(name) > 0 {
		switch name[0] {
		case FlagFallback:
			fs.Fallback = true
		case FlagNullOnBad:
			fs.NullOnBad = true
		default:
			break flags
		}
		name = name[1:]
	}

	hasUpper := strings.ContainsFunc(name, func(r rune) bool { return 'A' <= r && r <= 'Z' })
	hasLower := strings.ContainsFunc(name, func(r rune) bool { return 'a' <= r && r <= 'z' })
	if hasUpper && hasLower && !fs.Fallback {
		return FormatSpec{}, fmt.Errorf("%w: %q", ErrMixedCaseSpec, spec)
	}
	fs.Upper = hasUpper

	style, ok := specNames[strings.ToLower(name)]
	switch {
	case ok:
		fs.Style = style
	case fs.Fallback:
		fs.Style = StyleColon
	default:
		return FormatSpec{}, fmt.Errorf("%w: %q", ErrUnknownStyle, spec)
	}
	return fs, nil
}

// Apply 解析 mac 并按说明符格式化。
//
// 返回值 ok 为 false 表示 MAC 无效且设置了 NullOnBad，此时 err 为 nil。
func (fs FormatSpec) Apply(mac string) (out string, ok bool, err error) {
	addr, err := Parse(mac)
	if err != nil {
		if fs.NullOnBad {
			return "", false, nil
		}
		return "", false, err
	}
	return addr.Format(fs.Style, fs.Upper), true, nil
}

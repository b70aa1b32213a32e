package xmac

import "fmt"

// Style 定义 MAC 地址的输出风格。
type Style uint8

const (
	// StylePlain 无分隔符：aabbccddeeff
	StylePlain Style = iota
	// StyleDashed 短线分隔（IEEE 规范形式）：aa-bb-cc-dd-ee-ff
	StyleDashed
	// StyleColon 冒号分隔：aa:bb:cc:dd:ee:ff
	StyleColon
	// StyleDots 点分隔（Cisco 风格）：aabb.ccdd.eeff
	StyleDots
	// StylePrefixed 0x 前缀：0xaabbccddeeff
	StylePrefixed
	// StyleInterfaceID 修改型 EUI-64 接口标识：a8bb:ccff:fedd:eeff
	StyleInterfaceID
	// StyleLinkLocal IPv6 链路本地地址：fe80::a8bb:ccff:fedd:eeff
	StyleLinkLocal

	styleCount
)

// eui64Flip 修改型 EUI-64 翻转的 U/L 位（第一字节 bit 1）。
const eui64Flip = 0x0000_0200_0000_0000

// maxFormatLen 所有风格中最长的输出长度（StyleLinkLocal）。
const maxFormatLen = 25

// 十六进制字符表。
const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

// styleDesc 描述一种输出风格：模板、输出长度、12 个半字节在模板中的位置。
// 描述表在包初始化后只读，格式化时复制模板到栈上缓冲区再填充。
type styleDesc struct {
	name     string
	template string
	size     int
	slots    [hexDigits]uint8
	eui64    bool
}

var styles = [styleCount]styleDesc{
	StylePlain: {
		name:     "plain",
		template: "############",
		size:     12,
		slots:    [hexDigits]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	},
	StyleDashed: {
		name:     "dashed",
		template: "##-##-##-##-##-##",
		size:     17,
		slots:    [hexDigits]uint8{0, 1, 3, 4, 6, 7, 9, 10, 12, 13, 15, 16},
	},
	StyleColon: {
		name:     "colon",
		template: "##:##:##:##:##:##",
		size:     17,
		slots:    [hexDigits]uint8{0, 1, 3, 4, 6, 7, 9, 10, 12, 13, 15, 16},
	},
	StyleDots: {
		name:     "dots",
		template: "####.####.####",
		size:     14,
		slots:    [hexDigits]uint8{0, 1, 2, 3, 5, 6, 7, 8, 10, 11, 12, 13},
	},
	StylePrefixed: {
		name:     "prefixed",
		template: "0x############",
		size:     14,
		slots:    [hexDigits]uint8{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13},
	},
	StyleInterfaceID: {
		name:     "interface-id",
		template: "####:##ff:fe##:####",
		size:     19,
		slots:    [hexDigits]uint8{0, 1, 2, 3, 5, 6, 12, 13, 15, 16, 17, 18},
		eui64:    true,
	},
	StyleLinkLocal: {
		name:     "link-local",
		template: "fe80::####:##ff:fe##:####",
		size:     25,
		slots:    [hexDigits]uint8{6, 7, 8, 9, 11, 12, 18, 19, 21, 22, 23, 24},
		eui64:    true,
	},
}

// Valid 报告 s 是否为已定义的风格。
func (s Style) Valid() bool {
	return s < styleCount
}

// Size 返回该风格的输出长度，未定义风格返回 0。
func (s Style) Size() int {
	if !s.Valid() {
		return 0
	}
	return styles[s].size
}

// String 返回风格名称。
func (s Style) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Style(%d)", uint8(s))
	}
	return styles[s].name
}

// Styles 返回全部已定义风格，按枚举顺序。
func Styles() []Style {
	out := make([]Style, 0, styleCount)
	for s := range styleCount {
		out = append(out, s)
	}
	return out
}

// String 返回小写冒号格式（aa:bb:cc:dd:ee:ff）。
func (a Addr) String() string {
	return a.Format(StyleColon, false)
}

// Format 按指定风格输出 MAC 地址。
//
// upper 为 true 时所有十六进制数字使用大写；EUI-64 风格的模板字面量
// （fe80::、ff、fe）同样大写，输出中不会出现大小写混杂。
// 未定义风格按 [StyleColon] 处理。
//
// 纯函数，仅输出 ASCII。
func (a Addr) Format(style Style, upper bool) string {
	var buf [maxFormatLen]byte
	return string(a.appendFormat(buf[:0], style, upper))
}

// AppendFormat 将格式化结果追加到 dst，避免额外分配。
func (a Addr) AppendFormat(dst []byte, style Style, upper bool) []byte {
	return a.appendFormat(dst, style, upper)
}

func (a Addr) appendFormat(dst []byte, style Style, upper bool) []byte {
	if !style.Valid() {
		style = StyleColon
	}
	d := &styles[style]

	v := a.Uint64()
	if d.eui64 {
		v ^= eui64Flip
	}
	alphabet := hexLower
	if upper {
		alphabet = hexUpper
	}

	var buf [maxFormatLen]byte
	copy(buf[:], d.template)
	for i, pos := range d.slots {
		shift := uint(4 * (hexDigits - 1 - i))
		buf[pos] = alphabet[(v>>shift)&0x0f]
	}
	if upper && d.eui64 {
		for i := range d.size {
			if 'a' <= buf[i] && buf[i] <= 'z' {
				buf[i] -= 'a' - 'A'
			}
		}
	}
	return append(dst, buf[:d.size]...)
}

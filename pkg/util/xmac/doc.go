// Package xmac 提供 48 位 MAC 地址的宽松解析与按风格格式化。
//
// # 解析
//
// [Parse] 接受十六进制数字（大小写不敏感），并忽略任意位置的 '-'、'.'、':'
// 分隔符；可带 "0x" 前缀，首尾空白被去除。去除分隔符后必须恰好 12 个数字：
//
//	xmac.Parse("aa-bb-cc-dd-ee-ff")  // aa:bb:cc:dd:ee:ff
//	xmac.Parse("aabb.ccdd.eeff")     // aa:bb:cc:dd:ee:ff
//	xmac.Parse("a:a:b:b:c:c:d:d:e:e:f:f") // 同上，分隔符位置不校验
//
// [ParseExtend] 在数字不足时右侧补零，仅用于厂商前缀："08:00:87" 即 08:00:87:00:00:00。
//
// 失败时返回 [*ParseError]，可用 errors.Is 与 [ErrInvalidCharacter]、
// [ErrInvalidLength] 匹配。
//
// # 格式化
//
// [Addr.Format] 按 [Style] 输出，七种风格由只读描述表驱动：
//
//	StylePlain        aabbccddeeff
//	StyleDashed       aa-bb-cc-dd-ee-ff
//	StyleColon        aa:bb:cc:dd:ee:ff
//	StyleDots         aabb.ccdd.eeff
//	StylePrefixed     0xaabbccddeeff
//	StyleInterfaceID  a8bb:ccff:fedd:eeff
//	StyleLinkLocal    fe80::a8bb:ccff:fedd:eeff
//
// 后两种为修改型 EUI-64，输出前翻转 U/L 位。大写模式下整串大写，
// 包括模板字面量。
//
// [ParseFormatSpec] 把文本说明符（"hex"、"~DOT"、"?link-local" 等）转为 [FormatSpec]。
//
// # 零值
//
// 零值 Addr{} 即 00:00:00:00:00:00，是合法地址。
package xmac

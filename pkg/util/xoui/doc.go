// Package xoui 提供可变长 OUI 厂商前缀表与最长前缀匹配查找。
//
// 数据格式为 Wireshark manuf 文件，每行以 TAB 分隔：
//
//	08:00:87	XyplexTe	Xyplex	# terminal servers
//	8C:47:6E:30:00:00/28	Shanghai	Shanghai Satellite Communication Technology Co.,Ltd
//
// 省略长度的前缀为 /24，长度范围 [24, 48]。
//
// # 查找
//
// [Table.Search] 返回包含地址的最长前缀。IEEE 把部分 /24 块细分为 /28、/36 子块，
// 子块未命中时回退到父 /24：
//
//	tbl, _ := xoui.LoadEmbedded()
//	e, ok := tbl.Search(xmac.MustParse("8c:47:6e:3a:bb:cc"))
//	// e.Prefix = 8c:47:6e:30:00:00/28, e.Short = "Shanghai"
//
// # 完整性
//
// 重复的 (前缀, 长度) 总会被检测。默认拒绝加载；通过 [WithDuplicateHandler]
// 可改为保留先出现的条目并逐个上报。
//
// [Table] 构建后只读，可并发查找。
package xoui

// Package xinet 把 MAC 与 IP 工具组织为一组可被宿主（如 SQL 引擎）注册的标量函数。
//
// 每个函数接收 [Value] 参数并返回 [Value]：
//
//	MAC_FORMAT(mac [, spec])          格式化 MAC，spec 见 xmac.ParseFormatSpec
//	MAC_PREFIX / MAC_MANUF /
//	MAC_MANUFLONG / MAC_COMMENT(mac)  最长前缀匹配的厂商信息
//	MAC_ISUNICAST / MAC_ISMULTICAST /
//	MAC_ISUNIVERSAL / MAC_ISLOCAL(mac) 首字节标志位
//	IP_FORMAT(addr [, mask] [, trunc]) 规范化地址或网络
//	IP_CONTAINS(ip, net [, mask])     包含判断
//	IP_BLOBIFY(addr [, mask])         紧凑二进制形式
//	INSUBNET(ip, cidr)
//	INSUBNET(ip, net, mask)           单地址的子网判断
//
// # 空值约定
//
// NULL 输入得到 NULL 输出，不报错。MAC 查找类函数把空串也视为 NULL；
// MAC_FORMAT 的 spec 带 '?' 时无效 MAC 得到 NULL。其余无效输入返回 [*CallError]，
// 指明出错参数的下标与文本。
//
// # 使用
//
//	tbl, _ := xinet.LoadVendors(ctx, xinet.VendorConfig{})
//	svc, _ := xinet.New(tbl, xinet.WithLogger(logger))
//	v, err := svc.Call(ctx, "MAC_MANUF", xinet.Text("3c:a6:f6:00:00:01"))
//	// v = Text("Apple")
//
// [Service] 对厂商查找结果做 LRU 缓存（[WithCacheSize]），可并发使用。
package xinet

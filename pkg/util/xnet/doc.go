// Package xnet 提供 IP 地址与网络的解析、归一化和包含判断。
//
// xnet 基于标准库 [net/netip] 和 [go4.org/netipx] 构建，直接使用 [netip.Addr]、
// [netip.Prefix] 与 [netipx.IPRange]。
//
// # 输入形式
//
// [UserAddr] 表示用户给出的地址或网络，可来自文本（[ParseUserAddr]）
// 或紧凑二进制（[UserAddrFromBinary]，4/5/16/17 字节）。
//
// 地址和掩码分开给出时，用 [Normalize] 合并为网络。掩码 [Mask] 可以是整数前缀长度、
// 数字文本或点分掩码：
//
//	p, _ := xnet.Normalize("10.2.3.1", xnet.MaskText("255.255.255.0"))
//	fmt.Println(p)                          // 10.2.3.1/24
//	fmt.Println(xnet.FormatPrefix(p, true)) // 10.2.3.0/24
//
// CIDR 文本优先，此时掩码被忽略。非连续掩码（如 255.0.255.0）返回 [ErrNonContiguousMask]。
//
// # 包含判断
//
// [Contains] 先截断网络，再判断地址或整个子网是否落在其中：
//
//	u, _ := xnet.ParseUserAddr("128.231.61.3")
//	xnet.Contains(u, netip.MustParsePrefix("128.231.60.0/22")) // true
//
// 协议族不同的比较返回 false。
//
// # 设计决策
//
//   - 点分 IPv4 地址按 [netip.ParseAddr] 规则解析，带前导零的写法（"192.168.003.002"）被拒绝
//   - 带 zone 的 IPv6 地址（"fe80::1%eth0"）被拒绝，网络不能携带 zone
//   - IPv6 掩码也接受地址形式（"ffff:ffff::"），必须与地址同族
package xnet

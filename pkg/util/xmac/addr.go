package xmac

// mask48 48 位地址空间掩码。
const mask48 = 1<<48 - 1

// Addr 表示 48 位 MAC 地址（EUI-48/MAC-48）。
//
// Addr 是不可变值类型：
//   - 可直接比较（==）和用作 map key
//   - 并发安全，无需加锁
//   - 零值即 00:00:00:00:00:00，是合法地址（厂商库中有对应条目）
//
// 使用 [Parse] 或 [MustParse] 创建：
//
//	addr, err := xmac.Parse("aa:bb:cc:dd:ee:ff")
//	addr := xmac.MustParse("aa:bb:cc:dd:ee:ff")
type Addr struct {
	// 固定大小数组：值语义、可比较、栈分配。
	bytes [6]byte
}

// AddrFrom6 从 6 字节数组创建 MAC 地址。
func AddrFrom6(b [6]byte) Addr {
	return Addr{bytes: b}
}

// AddrFromUint64 从 48 位整数创建 MAC 地址（大端）。
// 高 16 位被忽略。
func AddrFromUint64(v uint64) Addr {
	v &= mask48
	return Addr{bytes: [6]byte{
		byte(v >> 40),
		byte(v >> 32),
		byte(v >> 24),
		byte(v >> 16),
		byte(v >> 8),
		byte(v),
	}}
}

// Uint64 返回地址的 48 位整数表示（规范值）。
func (a Addr) Uint64() uint64 {
	b := a.bytes
	return uint64(b[0])<<40 | uint64(b[1])<<32 | uint64(b[2])<<24 |
		uint64(b[3])<<16 | uint64(b[4])<<8 | uint64(b[5])
}

// Bytes 返回 MAC 地址的字节表示（副本）。
func (a Addr) Bytes() [6]byte {
	return a.bytes
}

// Compare 按网络字节序比较两个地址。
// 返回值：-1 (a < b), 0 (a == b), 1 (a > b)。
func (a Addr) Compare(b Addr) int {
	x, y := a.Uint64(), b.Uint64()
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// OUI 返回前 3 字节（IEEE 分配给厂商的 24 位前缀）。
func (a Addr) OUI() [3]byte {
	return [3]byte{a.bytes[0], a.bytes[1], a.bytes[2]}
}

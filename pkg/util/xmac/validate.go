package xmac

// IsUnicast 报告 a 是否为单播地址（第一字节 bit 0 为 0）。
func (a Addr) IsUnicast() bool {
	return a.bytes[0]&0x01 == 0
}

// IsMulticast 报告 a 是否为多播地址（第一字节 bit 0 为 1）。
// 广播地址也是多播地址。
func (a Addr) IsMulticast() bool {
	return a.bytes[0]&0x01 == 0x01
}

// IsUniversal 报告 a 是否为全球唯一地址 UAA（第一字节 bit 1 为 0）。
// 物理网卡出厂地址通常是 UAA。
func (a Addr) IsUniversal() bool {
	return a.bytes[0]&0x02 == 0
}

// IsLocal 报告 a 是否为本地管理地址 LAA（第一字节 bit 1 为 1）。
// 虚拟机、容器等通常使用 LAA。
func (a Addr) IsLocal() bool {
	return a.bytes[0]&0x02 == 0x02
}

// IsBroadcast 报告 a 是否为广播地址 ff:ff:ff:ff:ff:ff。
func (a Addr) IsBroadcast() bool {
	return a.Uint64() == mask48
}

// IsZero 报告 a 是否为全零地址。
// 全零地址是合法值，IsZero 只用于识别，不表示无效。
func (a Addr) IsZero() bool {
	return a == Addr{}
}

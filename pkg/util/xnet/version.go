package xnet

import "net/netip"

// Version 是地址族。数值即协议版本号，零值表示无效地址。
type Version uint8

const (
	V0 Version = 0
	V4 Version = 4
	V6 Version = 6
)

// AddrVersion 返回 addr 所属的地址族。IPv4 映射地址（::ffff:a.b.c.d）按 IPv4 归类，
// 但 [ParseUserAddr] 不解映射，这类地址的位数仍是 128，掩码按 128 位校验。
func AddrVersion(addr netip.Addr) Version {
	switch {
	case !addr.IsValid():
		return V0
	case addr.Is4() || addr.Is4In6():
		return V4
	default:
		return V6
	}
}

// Bits 返回该族地址的位数，V0 为 0。
func (v Version) Bits() int {
	switch v {
	case V4:
		return 32
	case V6:
		return 128
	}
	return 0
}

func (v Version) String() string {
	switch v {
	case V4:
		return "IPv4"
	case V6:
		return "IPv6"
	}
	return "unknown"
}

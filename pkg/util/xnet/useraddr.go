package xnet

import (
	"fmt"
	"net/netip"
)

// UserAddr 是用户提供的地址或网络：要么是单个地址，要么是带前缀长度的网络。
//
// 网络形式保留原始地址位，不做隐式截断（"192.168.3.2/16" 仍输出为 "192.168.3.2/16"）。
// 零值无效。
type UserAddr struct {
	addr   netip.Addr
	prefix netip.Prefix
}

// AddressOf 返回单地址形式的 UserAddr。
func AddressOf(addr netip.Addr) UserAddr {
	return UserAddr{addr: addr}
}

// NetworkOf 返回网络形式的 UserAddr。
func NetworkOf(p netip.Prefix) UserAddr {
	return UserAddr{addr: p.Addr(), prefix: p}
}

// ParseUserAddr 解析地址或 CIDR 网络文本。
//
// 先按地址解析，失败后按 CIDR 解析；两者都失败时返回地址解析的错误，
// 它比网络解析的错误更能说明问题。带 zone 的 IPv6 地址被拒绝。
func ParseUserAddr(s string) (UserAddr, error) {
	addr, addrErr := parseAddr(s)
	if addrErr == nil {
		return AddressOf(addr), nil
	}
	if p, err := netip.ParsePrefix(s); err == nil {
		return NetworkOf(p), nil
	}
	return UserAddr{}, addrErr
}

// parseAddr 解析不带 zone 的地址。
func parseAddr(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if addr.Zone() != "" {
		return netip.Addr{}, fmt.Errorf("%w: zone not allowed: %q", ErrInvalidAddress, s)
	}
	return addr, nil
}

// IsValid 报告 u 是否为已初始化的地址或网络。
func (u UserAddr) IsValid() bool {
	return u.addr.IsValid()
}

// IsNetwork 报告 u 是否为网络形式。
func (u UserAddr) IsNetwork() bool {
	return u.prefix.IsValid()
}

// Addr 返回地址部分（网络形式为未截断的地址）。
func (u UserAddr) Addr() netip.Addr {
	return u.addr
}

// Prefix 返回网络形式的前缀；单地址返回全长前缀（/32 或 /128）。
func (u UserAddr) Prefix() netip.Prefix {
	if u.IsNetwork() {
		return u.prefix
	}
	if !u.addr.IsValid() {
		return netip.Prefix{}
	}
	return netip.PrefixFrom(u.addr, u.addr.BitLen())
}

// Version 返回协议版本。
func (u UserAddr) Version() Version {
	return AddrVersion(u.addr)
}

// WithMask 将掩码应用到单地址，得到网络形式。
//
// 掩码未提供时原样返回；u 已经是网络时再提供掩码返回 [ErrAmbiguousMask]。
func (u UserAddr) WithMask(mask Mask) (UserAddr, error) {
	if mask.IsAbsent() {
		return u, nil
	}
	if u.IsNetwork() {
		return UserAddr{}, fmt.Errorf("%w: %s already has a prefix length, got extra mask %q",
			ErrAmbiguousMask, u, mask)
	}
	n, err := mask.PrefixLen(u.addr)
	if err != nil {
		return UserAddr{}, err
	}
	return NetworkOf(netip.PrefixFrom(u.addr, n)), nil
}

// String 返回规范文本：地址如 "10.2.3.1"，网络如 "10.2.3.1/24"。
func (u UserAddr) String() string {
	if u.IsNetwork() {
		return u.prefix.String()
	}
	if !u.addr.IsValid() {
		return ""
	}
	return u.addr.String()
}

// MarshalText 实现 [encoding.TextMarshaler]。
func (u UserAddr) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (u *UserAddr) UnmarshalText(text []byte) error {
	v, err := ParseUserAddr(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

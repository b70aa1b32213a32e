package xnet

import (
	"fmt"
	"net/netip"
)

// 二进制形式的长度。
const (
	binaryV4       = 4
	binaryV4Prefix = 5
	binaryV6       = 16
	binaryV6Prefix = 17
)

// UserAddrFromBinary 从紧凑二进制形式还原地址或网络。
//
//	4 字节  IPv4 地址
//	5 字节  IPv4 地址 + 前缀长度
//	16 字节 IPv6 地址
//	17 字节 IPv6 地址 + 前缀长度
//
// 其他长度返回 [ErrInvalidBinaryLength]；前缀长度越界返回 [ErrInvalidPrefixLen]。
func UserAddrFromBinary(b []byte) (UserAddr, error) {
	switch len(b) {
	case binaryV4:
		return AddressOf(netip.AddrFrom4([4]byte(b))), nil
	case binaryV4Prefix:
		return networkFromBinary(netip.AddrFrom4([4]byte(b[:binaryV4])), b[binaryV4])
	case binaryV6:
		return AddressOf(netip.AddrFrom16([16]byte(b))), nil
	case binaryV6Prefix:
		return networkFromBinary(netip.AddrFrom16([16]byte(b[:binaryV6])), b[binaryV6])
	default:
		return UserAddr{}, fmt.Errorf("%w: got %d bytes, want 4, 5, 16 or 17", ErrInvalidBinaryLength, len(b))
	}
}

func networkFromBinary(addr netip.Addr, bits byte) (UserAddr, error) {
	n, err := checkPrefixLen(int64(bits), addr.BitLen())
	if err != nil {
		return UserAddr{}, err
	}
	return NetworkOf(netip.PrefixFrom(addr, n)), nil
}

// NormalizeBinary 是 [Normalize] 的二进制输入版本。
//
// 带前缀长度的 5/17 字节形式再提供 mask 返回 [ErrAmbiguousMask]；
// 4/16 字节的裸地址必须提供 mask。
func NormalizeBinary(b []byte, mask Mask) (netip.Prefix, error) {
	u, err := UserAddrFromBinary(b)
	if err != nil {
		return netip.Prefix{}, err
	}
	if !u.IsNetwork() && mask.IsAbsent() {
		return netip.Prefix{}, fmt.Errorf("%w: %s", ErrMissingMask, u)
	}
	u, err = u.WithMask(mask)
	if err != nil {
		return netip.Prefix{}, err
	}
	return u.Prefix(), nil
}

// Binary 返回紧凑二进制形式：地址为 4 或 16 字节，网络额外追加 1 字节前缀长度。
//
// IPv4 地址排在同族地址的字节序之前，可直接用于排序和存储。零值返回 nil。
func (u UserAddr) Binary() []byte {
	if !u.IsValid() {
		return nil
	}
	out := u.addr.AsSlice()
	if u.IsNetwork() {
		out = append(out, byte(u.prefix.Bits()))
	}
	return out
}

// MarshalBinary 实现 [encoding.BinaryMarshaler]。
func (u UserAddr) MarshalBinary() ([]byte, error) {
	return u.Binary(), nil
}

// UnmarshalBinary 实现 [encoding.BinaryUnmarshaler]。
func (u *UserAddr) UnmarshalBinary(b []byte) error {
	v, err := UserAddrFromBinary(b)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

package xnet

import (
	"fmt"
	"net/netip"
)

// Normalize 把地址文本和可选掩码合并为一个网络。
//
//   - addr 本身是 CIDR 时直接返回，mask 被忽略
//   - 否则 addr 必须是地址；mask 未提供返回 [ErrMissingMask]
//   - mask 为整数、数字文本或点分掩码，点分掩码必须连续
//
// 返回的网络保留原始地址位，需要时用 [Truncate] 截断。
func Normalize(addr string, mask Mask) (netip.Prefix, error) {
	if p, err := netip.ParsePrefix(addr); err == nil {
		return p, nil
	}
	a, err := parseAddr(addr)
	if err != nil {
		return netip.Prefix{}, err
	}
	if mask.IsAbsent() {
		return netip.Prefix{}, fmt.Errorf("%w: %q is neither CIDR nor paired with a mask", ErrMissingMask, addr)
	}
	n, err := mask.PrefixLen(a)
	if err != nil {
		return netip.Prefix{}, err
	}
	return netip.PrefixFrom(a, n), nil
}

// ResolveUserAddr 解析地址或网络文本，并应用可选掩码。
//
// 与 [Normalize] 不同，未提供掩码的裸地址保持为单地址；
// 已带前缀长度的网络再提供掩码返回 [ErrAmbiguousMask]。
func ResolveUserAddr(s string, mask Mask) (UserAddr, error) {
	u, err := ParseUserAddr(s)
	if err != nil {
		return UserAddr{}, err
	}
	return u.WithMask(mask)
}

// Truncate 清除网络的主机位，幂等。
func Truncate(p netip.Prefix) netip.Prefix {
	return p.Masked()
}

// FormatPrefix 输出网络的规范文本，truncate 为 true 时先截断主机位。
func FormatPrefix(p netip.Prefix, truncate bool) string {
	if truncate {
		p = Truncate(p)
	}
	return p.String()
}

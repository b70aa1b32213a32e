package xnet

import (
	"net/netip"

	"go4.org/netipx"
)

// Contains 报告 candidate 是否完全落在 network 内。
//
// network 先截断到自身前缀。candidate 为地址时判断成员关系；为网络时，
// 其截断后的整个范围都必须在 network 内。协议族不同返回 false，不报错。
func Contains(candidate UserAddr, network netip.Prefix) bool {
	if !candidate.IsValid() || !network.IsValid() {
		return false
	}
	n := Truncate(network)
	if !candidate.IsNetwork() {
		return n.Contains(candidate.addr)
	}
	r := PrefixRange(candidate.prefix)
	return n.Contains(r.From()) && n.Contains(r.To())
}

// PrefixRange 返回网络截断后覆盖的地址范围。
func PrefixRange(p netip.Prefix) netipx.IPRange {
	return netipx.RangeOfPrefix(Truncate(p))
}

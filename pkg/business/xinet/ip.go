package xinet

import (
	"errors"
	"fmt"
	"net/netip"

	"github.com/omeyang/xinet/pkg/util/xnet"
)

// noArg 表示可选参数未出现。
const noArg = -1

// maskAt 读取下标 idx 处的掩码参数。参数缺省或为 NULL 时返回未提供的掩码。
func maskAt(name string, args []Value, idx int) (xnet.Mask, error) {
	if idx < 0 || idx >= len(args) {
		return xnet.Mask{}, nil
	}
	switch v := args[idx]; v.Kind() {
	case KindNull:
		return xnet.Mask{}, nil
	case KindInt:
		return xnet.MaskBits(v.i), nil
	case KindText:
		return xnet.MaskText(v.s), nil
	default:
		return xnet.Mask{}, typeError(name, idx, v)
	}
}

// boolAt 读取布尔参数，整数按非零为真，NULL 与缺省为假。
func boolAt(name string, args []Value, idx int) (bool, error) {
	if idx < 0 || idx >= len(args) {
		return false, nil
	}
	switch v := args[idx]; v.Kind() {
	case KindNull:
		return false, nil
	case KindBool, KindInt:
		return v.i != 0, nil
	default:
		return false, typeError(name, idx, v)
	}
}

// userAddrAt 读取文本或二进制形式的地址/网络，NULL 返回 present=false。
func userAddrAt(name string, args []Value, idx int) (u xnet.UserAddr, present bool, err error) {
	v := args[idx]
	switch v.Kind() {
	case KindNull:
		return xnet.UserAddr{}, false, nil
	case KindText:
		u, err = xnet.ParseUserAddr(v.s)
	case KindBlob:
		u, err = xnet.UserAddrFromBinary(v.b)
	default:
		return xnet.UserAddr{}, false, typeError(name, idx, v)
	}
	if err != nil {
		return xnet.UserAddr{}, false, argError(name, idx, v, err)
	}
	return u, true, nil
}

// encodesPrefix 报告参数本身是否带前缀长度：CIDR 文本或 5/17 字节二进制。
func encodesPrefix(v Value) bool {
	switch v.Kind() {
	case KindText:
		_, err := netip.ParsePrefix(v.s)
		return err == nil
	case KindBlob:
		u, err := xnet.UserAddrFromBinary(v.b)
		return err == nil && u.IsNetwork()
	default:
		return false
	}
}

func isMaskErr(err error) bool {
	return errors.Is(err, xnet.ErrInvalidMask) ||
		errors.Is(err, xnet.ErrNonContiguousMask) ||
		errors.Is(err, xnet.ErrInvalidPrefixLen) ||
		errors.Is(err, xnet.ErrAmbiguousMask)
}

// blame 把地址与掩码合并时的错误归到对应参数：掩码类错误归掩码，其余归地址。
func blame(name string, args []Value, addrIdx, maskIdx int, err error) error {
	if maskIdx >= 0 && maskIdx < len(args) && isMaskErr(err) {
		return argError(name, maskIdx, args[maskIdx], err)
	}
	return argError(name, addrIdx, args[addrIdx], err)
}

func formatUserAddr(u xnet.UserAddr, truncate bool) string {
	if u.IsNetwork() {
		return xnet.FormatPrefix(u.Prefix(), truncate)
	}
	return u.String()
}

func (s *Service) ipFormat(name string, args []Value) (Value, error) {
	maskIdx, truncIdx := noArg, noArg
	switch len(args) {
	case 2:
		// 首参已带前缀长度时第二个整数参数只能是截断标志。
		if k := args[1].Kind(); k == KindBool || (k == KindInt && encodesPrefix(args[0])) {
			truncIdx = 1
		} else {
			maskIdx = 1
		}
	case 3:
		maskIdx, truncIdx = 1, 2
	}
	mask, err := maskAt(name, args, maskIdx)
	if err != nil {
		return Null(), err
	}
	truncate, err := boolAt(name, args, truncIdx)
	if err != nil {
		return Null(), err
	}

	addr := args[0]
	if addr.Kind() == KindText && !mask.IsAbsent() {
		p, err := xnet.Normalize(addr.s, mask)
		if err != nil {
			return Null(), blame(name, args, 0, maskIdx, err)
		}
		return Text(xnet.FormatPrefix(p, truncate)), nil
	}

	u, present, err := userAddrAt(name, args, 0)
	if err != nil || !present {
		return Null(), err
	}
	// 文本带掩码已在上面处理，这里的掩码只会落在二进制形式上。
	if u, err = u.WithMask(mask); err != nil {
		return Null(), blame(name, args, 0, maskIdx, err)
	}
	return Text(formatUserAddr(u, truncate)), nil
}

// networkAt 读取网络参数并与可选掩码合并。文本 CIDR 忽略掩码，
// 带前缀长度的二进制形式再给掩码返回 [xnet.ErrAmbiguousMask]。
func networkAt(name string, args []Value, idx, maskIdx int) (p netip.Prefix, present bool, err error) {
	mask, err := maskAt(name, args, maskIdx)
	if err != nil {
		return netip.Prefix{}, false, err
	}
	switch v := args[idx]; v.Kind() {
	case KindNull:
		return netip.Prefix{}, false, nil
	case KindText:
		p, err = xnet.Normalize(v.s, mask)
	case KindBlob:
		p, err = xnet.NormalizeBinary(v.b, mask)
	default:
		return netip.Prefix{}, false, typeError(name, idx, v)
	}
	if err != nil {
		return netip.Prefix{}, false, blame(name, args, idx, maskIdx, err)
	}
	return p, true, nil
}

func (s *Service) ipContains(name string, args []Value) (Value, error) {
	subject, present, err := userAddrAt(name, args, 0)
	if err != nil || !present {
		return Null(), err
	}
	network, present, err := networkAt(name, args, 1, 2)
	if err != nil || !present {
		return Null(), err
	}
	return Bool(xnet.Contains(subject, network)), nil
}

func (s *Service) ipBlobify(name string, args []Value) (Value, error) {
	mask, err := maskAt(name, args, 1)
	if err != nil {
		return Null(), err
	}
	u, present, err := userAddrAt(name, args, 0)
	if err != nil || !present {
		return Null(), err
	}
	if u, err = u.WithMask(mask); err != nil {
		return Null(), blame(name, args, 0, 1, err)
	}
	return Blob(u.Binary()), nil
}

func (s *Service) inSubnet(name string, args []Value) (Value, error) {
	mask, err := maskAt(name, args, 2)
	if err != nil {
		return Null(), err
	}
	subject, present, err := userAddrAt(name, args, 0)
	if err != nil || !present {
		return Null(), err
	}
	if subject.IsNetwork() {
		return Null(), argError(name, 0, args[0],
			fmt.Errorf("%w: want a single address, got network %s", xnet.ErrInvalidAddress, subject))
	}

	network, present, err := userAddrAt(name, args, 1)
	if err != nil || !present {
		return Null(), err
	}
	if network, err = network.WithMask(mask); err != nil {
		return Null(), blame(name, args, 1, 2, err)
	}
	if !network.IsNetwork() {
		return Null(), argError(name, 1, args[1],
			fmt.Errorf("%w: %s is not a network", xnet.ErrMissingMask, network))
	}
	return Bool(xnet.Contains(subject, network.Prefix())), nil
}

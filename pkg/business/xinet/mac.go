package xinet

import (
	"github.com/omeyang/xinet/pkg/util/xmac"
	"github.com/omeyang/xinet/pkg/util/xoui"
)

// macArg 解析 MAC 参数。NULL 与空串返回 present=false。
func macArg(name string, idx int, v Value) (addr xmac.Addr, present bool, err error) {
	switch v.Kind() {
	case KindNull:
		return xmac.Addr{}, false, nil
	case KindText:
		if v.s == "" {
			return xmac.Addr{}, false, nil
		}
		addr, err := xmac.Parse(v.s)
		if err != nil {
			return xmac.Addr{}, false, argError(name, idx, v, err)
		}
		return addr, true, nil
	default:
		return xmac.Addr{}, false, typeError(name, idx, v)
	}
}

func (s *Service) macFormat(name string, args []Value) (Value, error) {
	spec := xmac.DefaultFormatSpec
	if len(args) == 2 {
		switch v := args[1]; v.Kind() {
		case KindNull:
		case KindText:
			parsed, err := xmac.ParseFormatSpec(v.s)
			if err != nil {
				return Null(), argError(name, 1, v, err)
			}
			spec = parsed
		default:
			return Null(), typeError(name, 1, v)
		}
	}

	mac := args[0]
	switch mac.Kind() {
	case KindNull:
		return Null(), nil
	case KindText:
	default:
		return Null(), typeError(name, 0, mac)
	}
	out, ok, err := spec.Apply(mac.s)
	if err != nil {
		return Null(), argError(name, 0, mac, err)
	}
	if !ok {
		return Null(), nil
	}
	return Text(out), nil
}

// lookup 解析 MAC 并查找厂商，无输入或未命中时 found=false。
func (s *Service) lookup(name string, args []Value) (entry xoui.Entry, found bool, err error) {
	addr, present, err := macArg(name, 0, args[0])
	if err != nil || !present {
		return xoui.Entry{}, false, err
	}
	entry, found = s.search(addr)
	return entry, found, nil
}

// vendorField 取命中条目的某个字段，空串视为 NULL。
func (s *Service) vendorField(name string, args []Value, field func(xoui.Entry) string) (Value, error) {
	entry, found, err := s.lookup(name, args)
	if err != nil || !found {
		return Null(), err
	}
	if f := field(entry); f != "" {
		return Text(f), nil
	}
	return Null(), nil
}

func (s *Service) macPrefix(name string, args []Value) (Value, error) {
	return s.vendorField(name, args, func(e xoui.Entry) string { return e.Prefix.String() })
}

func (s *Service) macManuf(name string, args []Value) (Value, error) {
	return s.vendorField(name, args, func(e xoui.Entry) string { return e.Short })
}

func (s *Service) macManufLong(name string, args []Value) (Value, error) {
	return s.vendorField(name, args, func(e xoui.Entry) string { return e.Long })
}

func (s *Service) macComment(name string, args []Value) (Value, error) {
	return s.vendorField(name, args, func(e xoui.Entry) string { return e.Comment })
}

func macPredicate(name string, args []Value, pred func(xmac.Addr) bool) (Value, error) {
	addr, present, err := macArg(name, 0, args[0])
	if err != nil || !present {
		return Null(), err
	}
	return Bool(pred(addr)), nil
}

func (s *Service) macIsUnicast(name string, args []Value) (Value, error) {
	return macPredicate(name, args, xmac.Addr.IsUnicast)
}

func (s *Service) macIsMulticast(name string, args []Value) (Value, error) {
	return macPredicate(name, args, xmac.Addr.IsMulticast)
}

func (s *Service) macIsUniversal(name string, args []Value) (Value, error) {
	return macPredicate(name, args, xmac.Addr.IsUniversal)
}

func (s *Service) macIsLocal(name string, args []Value) (Value, error) {
	return macPredicate(name, args, xmac.Addr.IsLocal)
}

package xinet

import (
	"cmp"
	"context"
	"slices"
)

type function struct {
	name      string
	operation string
	minArgs   int
	maxArgs   int
	summary   string
	impl      func(s *Service, name string, args []Value) (Value, error)
}

var (
	fnMacFormat      = &function{"MAC_FORMAT", "mac_format", 1, 2, "format a MAC address, optional format specifier", (*Service).macFormat}
	fnMacPrefix      = &function{"MAC_PREFIX", "mac_prefix", 1, 1, "vendor prefix of a MAC address", (*Service).macPrefix}
	fnMacManuf       = &function{"MAC_MANUF", "mac_manuf", 1, 1, "short vendor name", (*Service).macManuf}
	fnMacManufLong   = &function{"MAC_MANUFLONG", "mac_manuf_long", 1, 1, "long vendor name", (*Service).macManufLong}
	fnMacComment     = &function{"MAC_COMMENT", "mac_comment", 1, 1, "vendor comment", (*Service).macComment}
	fnMacIsUnicast   = &function{"MAC_ISUNICAST", "mac_is_unicast", 1, 1, "first octet bit 0 is 0", (*Service).macIsUnicast}
	fnMacIsMulticast = &function{"MAC_ISMULTICAST", "mac_is_multicast", 1, 1, "first octet bit 0 is 1", (*Service).macIsMulticast}
	fnMacIsUniversal = &function{"MAC_ISUNIVERSAL", "mac_is_universal", 1, 1, "first octet bit 1 is 0", (*Service).macIsUniversal}
	fnMacIsLocal     = &function{"MAC_ISLOCAL", "mac_is_local", 1, 1, "first octet bit 1 is 1", (*Service).macIsLocal}
	fnIPFormat       = &function{"IP_FORMAT", "ip_format", 1, 3, "normalize an address or network, optional mask and truncate flag", (*Service).ipFormat}
	fnIPContains     = &function{"IP_CONTAINS", "ip_contains", 2, 3, "address or network inside a network", (*Service).ipContains}
	fnIPBlobify      = &function{"IP_BLOBIFY", "ip_blobify", 1, 2, "compact sortable binary form", (*Service).ipBlobify}
	fnInSubnet       = &function{"INSUBNET", "in_subnet", 2, 3, "address inside cidr, or inside network+mask", (*Service).inSubnet}
)

var catalog = []*function{
	fnMacFormat, fnMacPrefix, fnMacManuf, fnMacManufLong, fnMacComment,
	fnMacIsUnicast, fnMacIsMulticast, fnMacIsUniversal, fnMacIsLocal,
	fnIPFormat, fnIPContains, fnIPBlobify, fnInSubnet,
}

var catalogIndex = func() map[string]*function {
	m := make(map[string]*function, len(catalog))
	for _, fn := range catalog {
		m[fn.name] = fn
	}
	return m
}()

// FuncInfo 描述一个可注册到宿主的函数。
type FuncInfo struct {
	Name    string
	MinArgs int
	MaxArgs int
	Summary string
}

// Functions 返回函数目录，按名称排序。宿主适配层据此按参数个数注册。
func Functions() []FuncInfo {
	out := make([]FuncInfo, 0, len(catalog))
	for _, fn := range catalog {
		out = append(out, FuncInfo{Name: fn.name, MinArgs: fn.minArgs, MaxArgs: fn.maxArgs, Summary: fn.summary})
	}
	slices.SortFunc(out, func(a, b FuncInfo) int { return cmp.Compare(a.Name, b.Name) })
	return out
}

// MacFormat 格式化 MAC 地址（MAC_FORMAT）。
//
// 参数：mac [, spec]。spec 见 xmac.ParseFormatSpec，NULL 或缺省为小写冒号格式。
// mac 为 NULL 返回 NULL；spec 带 '?' 时无效 MAC 返回 NULL。
func (s *Service) MacFormat(ctx context.Context, args ...Value) (Value, error) {
	return s.invoke(ctx, fnMacFormat, args)
}

// MacPrefix 返回最长匹配的厂商前缀文本（MAC_PREFIX），如 "3c:a6:f6" 或
// "8c:1c:da:80:00:00/28"。mac 为 NULL、空串或无匹配时返回 NULL。
func (s *Service) MacPrefix(ctx context.Context, args ...Value) (Value, error) {
	return s.invoke(ctx, fnMacPrefix, args)
}

// MacManuf 返回厂商短名（MAC_MANUF）。
func (s *Service) MacManuf(ctx context.Context, args ...Value) (Value, error) {
	return s.invoke(ctx, fnMacManuf, args)
}

// MacManufLong 返回厂商全名（MAC_MANUFLONG），无全名时返回 NULL。
func (s *Service) MacManufLong(ctx context.Context, args ...Value) (Value, error) {
	return s.invoke(ctx, fnMacManufLong, args)
}

// MacComment 返回厂商注释（MAC_COMMENT），无注释时返回 NULL。
func (s *Service) MacComment(ctx context.Context, args ...Value) (Value, error) {
	return s.invoke(ctx, fnMacComment, args)
}

func (s *Service) MacIsUnicast(ctx context.Context, args ...Value) (Value, error) {
	return s.invoke(ctx, fnMacIsUnicast, args)
}

func (s *Service) MacIsMulticast(ctx context.Context, args ...Value) (Value, error) {
	return s.invoke(ctx, fnMacIsMulticast, args)
}

func (s *Service) MacIsUniversal(ctx context.Context, args ...Value) (Value, error) {
	return s.invoke(ctx, fnMacIsUniversal, args)
}

func (s *Service) MacIsLocal(ctx context.Context, args ...Value) (Value, error) {
	return s.invoke(ctx, fnMacIsLocal, args)
}

// IPFormat 规范化地址或网络（IP_FORMAT）。
//
// 参数：addr [, mask] [, truncate]。两个参数时第二个为 Bool 则视作 truncate，
// 否则视作 mask。addr 为 CIDR 时忽略 mask；不带掩码的地址原样规范化输出。
func (s *Service) IPFormat(ctx context.Context, args ...Value) (Value, error) {
	return s.invoke(ctx, fnIPFormat, args)
}

// IPContains 判断地址或网络是否位于网络内（IP_CONTAINS）。
//
// 参数：subject, network [, mask]。network 为 CIDR 时忽略 mask。
// subject 或 network 为 NULL 返回 NULL；协议族不同返回 false。
func (s *Service) IPContains(ctx context.Context, args ...Value) (Value, error) {
	return s.invoke(ctx, fnIPContains, args)
}

// IPBlobify 返回紧凑二进制形式（IP_BLOBIFY）：4/16 字节地址，网络追加 1 字节前缀长度。
//
// 参数：addr [, mask]。addr 已是网络时再给 mask 为错误。
func (s *Service) IPBlobify(ctx context.Context, args ...Value) (Value, error) {
	return s.invoke(ctx, fnIPBlobify, args)
}

// InSubnet 判断单个地址是否位于子网内（INSUBNET）。
//
// 两个参数时第二个必须是 CIDR；三个参数时为网络地址加掩码，两者不能同时带前缀长度。
func (s *Service) InSubnet(ctx context.Context, args ...Value) (Value, error) {
	return s.invoke(ctx, fnInSubnet, args)
}

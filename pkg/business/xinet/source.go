package xinet

import (
	"github.com/omeyang/xinet/pkg/util/xmac"
	"github.com/omeyang/xinet/pkg/util/xoui"
)

//go:generate mockgen -source=source.go -destination=source_mock_test.go -package=xinet

// VendorSource 按 MAC 地址查找最长匹配的厂商前缀。*xoui.Table 实现此接口。
//
// 实现必须可被并发调用。
type VendorSource interface {
	Search(addr xmac.Addr) (xoui.Entry, bool)
}

var _ VendorSource = (*xoui.Table)(nil)

package xinet

import (
	"context"
	"fmt"
	"strings"

	"github.com/omeyang/xinet/pkg/observability/xlog"
	"github.com/omeyang/xinet/pkg/observability/xmetrics"
	"github.com/omeyang/xinet/pkg/util/xlru"
	"github.com/omeyang/xinet/pkg/util/xmac"
	"github.com/omeyang/xinet/pkg/util/xoui"
)

const componentName = "xinet"

// match 缓存的查找结果，未命中同样缓存。
type match struct {
	entry xoui.Entry
	ok    bool
}

// Service 提供 MAC 与 IP 函数目录，供宿主按名称或方法调用。
//
// Service 只读共享厂商数据源，可被任意多个 goroutine 并发使用。
type Service struct {
	vendors  VendorSource
	cache    *xlru.Cache[xmac.Addr, match]
	logger   xlog.Logger
	observer xmetrics.Observer
}

// New 创建 Service。vendors 为 nil 返回 [ErrNilSource]。
func New(vendors VendorSource, opts ...Option) (*Service, error) {
	if vendors == nil {
		return nil, ErrNilSource
	}
	o := applyOptions(opts)

	s := &Service{
		vendors:  vendors,
		logger:   o.logger.With(xlog.Component(componentName)),
		observer: o.observer,
	}
	if o.cacheSize > 0 {
		cache, err := xlru.New[xmac.Addr, match](xlru.Config{Size: o.cacheSize})
		if err != nil {
			return nil, fmt.Errorf("xinet: create lookup cache: %w", err)
		}
		s.cache = cache
	}
	return s, nil
}

// CacheStats 返回厂商查找缓存的命中统计，缓存关闭时为零值。
func (s *Service) CacheStats() xlru.Stats {
	if s.cache == nil {
		return xlru.Stats{}
	}
	return s.cache.Stats()
}

// Call 按宿主函数名调用，名称见 [Functions]，不区分大小写。
func (s *Service) Call(ctx context.Context, name string, args ...Value) (Value, error) {
	fn, ok := catalogIndex[strings.ToUpper(name)]
	if !ok {
		return Null(), &CallError{Func: name, Arg: -1, Err: ErrUnknownFunction}
	}
	return s.invoke(ctx, fn, args)
}

// invoke 校验参数个数并记录观测。
func (s *Service) invoke(ctx context.Context, fn *function, args []Value) (Value, error) {
	if n := len(args); n < fn.minArgs || n > fn.maxArgs {
		return Null(), arityError(fn.name, n, fn.minArgs, fn.maxArgs)
	}

	ctx, span := xmetrics.Start(ctx, s.observer, xmetrics.SpanOptions{
		Component: componentName,
		Operation: fn.operation,
	})
	v, err := fn.impl(s, fn.name, args)

	result := xmetrics.Result{Err: err}
	if err == nil && v.IsNull() {
		result.Status = xmetrics.StatusNull
	}
	span.End(result)

	if err != nil {
		s.logger.Debug(ctx, "call failed", xlog.Operation(fn.operation), xlog.Err(err))
		return Null(), err
	}
	return v, nil
}

func (s *Service) search(addr xmac.Addr) (xoui.Entry, bool) {
	if s.cache == nil {
		return s.vendors.Search(addr)
	}
	m, _ := s.cache.GetOrLoad(addr, func(a xmac.Addr) (match, error) { //nolint:errcheck // load 不返回错误
		e, ok := s.vendors.Search(a)
		return match{entry: e, ok: ok}, nil
	})
	return m.entry, m.ok
}

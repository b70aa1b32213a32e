// Package xmetrics 提供统一的可观测性接口（metrics + tracing）。
//
// 业务代码只依赖 [Observer] / [Span]；[NewOTelObserver] 是基于 OpenTelemetry
// 的实现，[NoopObserver] 用于未配置观测的场景。
//
//	obs, _ := xmetrics.NewOTelObserver()
//	ctx, span := xmetrics.Start(ctx, obs, xmetrics.SpanOptions{
//		Component: "xinet",
//		Operation: "mac_format",
//	})
//	defer func() { span.End(xmetrics.Result{Err: err}) }()
//
// # 指标命名
//
//   - xinet.operation.total
//   - xinet.operation.duration
//
// 统一属性：component / operation / status（ok、error、null）。
package xmetrics

// Package observability 提供日志、统计与追踪相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog，支持动态级别与 context 属性
//   - xmetrics: 观测接口 Observer，含 OpenTelemetry 实现与进程内计数 Local
//   - xrotate: 日志文件轮转，基于 lumberjack
//
// xlog 与 xmetrics 通过 context 协作：xmetrics 把 trace_id、span_id
// 写入 ctx，xlog 输出时自动带上。
package observability

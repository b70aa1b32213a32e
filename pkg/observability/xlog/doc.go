// Package xlog 基于 log/slog 的结构化日志。
//
// # 创建 Logger
//
// 使用 Builder（遇到第一个配置错误即记录，由 Build 返回）：
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString(cfg.Log.Level).
//		SetFormat("json").
//		SetRotation(xrotate.DefaultConfig("/var/log/xinet/xinet.log")).
//		SetAttrs(xlog.Component("xinetctl")).
//		Build()
//	if err != nil {
//		return err
//	}
//	defer cleanup()
//
// Build 返回 [LoggerWithLevel]，可在运行时 SetLevel。With/WithGroup 派生的
// logger 共享同一级别。
//
// # context 属性
//
// [ContextWithAttrs] 把属性挂在 context 上，默认启用的 [EnrichHandler] 在
// 写出时追加它们。批处理中可借此给一行输入的全部日志带上行号。
//
// # 内部错误
//
// 写出失败不会向调用方返回错误：[ErrorCount] 暴露累计次数，
// [Builder.SetOnError] 可接入告警。
package xlog

package xmetrics

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// OperationCount 是某个 (组件, 操作, 状态) 的累计次数。
type OperationCount struct {
	Component string
	Operation string
	Status    Status
	Count     int64
}

// Local 是进程内的 OTel 观测器，不导出数据，供命令行在退出前汇总。
//
// 跨度由本地 TracerProvider 采样，日志因此带有 trace_id。
type Local struct {
	Observer
	reader *sdkmetric.ManualReader
	mp     *sdkmetric.MeterProvider
	tp     *sdktrace.TracerProvider
}

// NewLocal 创建进程内观测器。opts 中的 provider 选项会被覆盖。
func NewLocal(opts ...Option) (*Local, error) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	tp := sdktrace.NewTracerProvider()

	all := append(slices.Clone(opts), WithMeterProvider(mp), WithTracerProvider(tp))
	obs, err := NewOTelObserver(all...)
	if err != nil {
		return nil, errors.Join(err, mp.Shutdown(context.Background()), tp.Shutdown(context.Background()))
	}
	return &Local{Observer: obs, reader: reader, mp: mp, tp: tp}, nil
}

// Snapshot 返回当前累计的操作次数，按组件、操作、状态排序。
func (l *Local) Snapshot(ctx context.Context) ([]OperationCount, error) {
	var rm metricdata.ResourceMetrics
	if err := l.reader.Collect(ctx, &rm); err != nil {
		return nil, fmt.Errorf("xmetrics: collect: %w", err)
	}

	var out []OperationCount
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != metricOperationTotal {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				out = append(out, OperationCount{
					Component: attrString(dp.Attributes, "component"),
					Operation: attrString(dp.Attributes, "operation"),
					Status:    Status(attrString(dp.Attributes, "status")),
					Count:     dp.Value,
				})
			}
		}
	}
	slices.SortFunc(out, func(a, b OperationCount) int {
		return cmp.Or(
			cmp.Compare(a.Component, b.Component),
			cmp.Compare(a.Operation, b.Operation),
			cmp.Compare(a.Status, b.Status),
		)
	})
	return out, nil
}

// Shutdown 释放 provider。
func (l *Local) Shutdown(ctx context.Context) error {
	return errors.Join(l.mp.Shutdown(ctx), l.tp.Shutdown(ctx))
}

func attrString(set attribute.Set, key string) string {
	v, _ := set.Value(attribute.Key(key))
	return v.AsString()
}

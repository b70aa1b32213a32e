package xlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xinet/pkg/observability/xlog"
	"github.com/omeyang/xinet/pkg/observability/xrotate"
)

func build(t *testing.T, b *xlog.Builder) xlog.LoggerWithLevel {
	t.Helper()
	logger, cleanup, err := b.Build()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, cleanup()) })
	return logger
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := build(t, xlog.New().SetOutput(&buf).SetFormat("json").SetLevel(xlog.LevelWarn))
	ctx := context.Background()

	logger.Debug(ctx, "debug")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "warn", lines[0]["msg"])
	assert.Equal(t, "WARN", lines[0]["level"])
	assert.Equal(t, "error", lines[1]["msg"])

	assert.False(t, logger.Enabled(ctx, xlog.LevelInfo))
	logger.SetLevel(xlog.LevelDebug)
	assert.Equal(t, xlog.LevelDebug, logger.GetLevel())
	assert.True(t, logger.Enabled(ctx, xlog.LevelDebug))
}

func TestLogger_DerivedSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := build(t, xlog.New().SetOutput(&buf).SetFormat("json"))

	child := logger.With(xlog.Component("xoui")).WithGroup("load")
	logger.SetLevel(xlog.LevelError)
	child.Info(context.Background(), "hidden")
	assert.Zero(t, buf.Len())

	logger.SetLevel(xlog.LevelInfo)
	child.Info(context.Background(), "loaded", xlog.Count(3))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "xoui", lines[0][xlog.KeyComponent])
	group, ok := lines[0]["load"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 3, group[xlog.KeyCount], 0)

	assert.Same(t, logger, logger.With())
	assert.Same(t, logger, logger.WithGroup(""))
}

func TestLogger_ContextAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := build(t, xlog.New().SetOutput(&buf).SetFormat("json").
		SetAttrs(slog.String("service", "xinet")))

	ctx := xlog.ContextWithAttrs(context.Background(), slog.Int("line", 7))
	ctx = xlog.ContextWithAttrs(ctx, xlog.Operation("mac_format"))
	logger.Info(ctx, "bad input", xlog.Input("zz"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "xinet", lines[0]["service"])
	assert.InDelta(t, 7, lines[0]["line"], 0)
	assert.Equal(t, "mac_format", lines[0][xlog.KeyOperation])
	assert.Equal(t, "zz", lines[0][xlog.KeyInput])
}

func TestLogger_EnrichDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := build(t, xlog.New().SetOutput(&buf).SetFormat("json").SetEnrich(false))

	ctx := xlog.ContextWithAttrs(context.Background(), slog.Int("line", 7))
	logger.Info(ctx, "msg")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.NotContains(t, lines[0], "line")
}

func TestLogger_NilContext(t *testing.T) {
	var buf bytes.Buffer
	logger := build(t, xlog.New().SetOutput(&buf))

	//nolint:staticcheck // nil context 需安全退化
	logger.Info(nil, "no ctx")
	assert.Contains(t, buf.String(), "no ctx")
}

func TestLogger_AddSource(t *testing.T) {
	var buf bytes.Buffer
	logger := build(t, xlog.New().SetOutput(&buf).SetFormat("json").SetAddSource(true))
	logger.Info(context.Background(), "here")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	src, ok := lines[0][slog.SourceKey].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, src["file"], "xlog_test.go")
}

func TestLogger_ReplaceAttr(t *testing.T) {
	var buf bytes.Buffer
	logger := build(t, xlog.New().SetOutput(&buf).
		SetReplaceAttr(func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		}))
	logger.Info(context.Background(), "msg")
	assert.Equal(t, "level=INFO msg=msg\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestLogger_OnError(t *testing.T) {
	var got []error
	logger := build(t, xlog.New().SetOutput(failWriter{}).
		SetOnError(func(err error) { got = append(got, err) }))

	logger.Info(context.Background(), "a")
	logger.With(xlog.Count(1)).Info(context.Background(), "b")

	require.Len(t, got, 2)
	assert.EqualError(t, got[0], "disk full")
	assert.Equal(t, uint64(2), xlog.ErrorCount(logger))
}

func TestLogger_OnErrorPanic(t *testing.T) {
	logger := build(t, xlog.New().SetOutput(failWriter{}).
		SetOnError(func(error) { panic("boom") }))

	assert.NotPanics(t, func() { logger.Error(context.Background(), "x") })
	// 写出失败一次，回调 panic 一次
	assert.Equal(t, uint64(2), xlog.ErrorCount(logger))
}

func TestBuilder_Errors(t *testing.T) {
	_, _, err := xlog.New().SetFormat("yaml").Build()
	require.ErrorContains(t, err, `unknown format "yaml"`)

	_, _, err = xlog.New().SetLevelString("verbose").SetFormat("json").Build()
	require.ErrorContains(t, err, `unknown level "verbose"`)

	_, _, err = xlog.New().SetRotation(xrotate.Config{}).Build()
	require.ErrorIs(t, err, xrotate.ErrEmptyFilename)
}

func TestBuilder_Rotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "xinet.log")
	logger, cleanup, err := xlog.New().
		SetRotation(xrotate.Config{Filename: path, MaxSizeMB: 1, MaxBackups: 1}).
		SetFormat("json").
		Build()
	require.NoError(t, err)

	logger.Info(context.Background(), "to file")
	require.NoError(t, cleanup())
	require.NoError(t, cleanup())

	assert.FileExists(t, path)
}

func TestDiscard(t *testing.T) {
	logger := xlog.Discard()
	assert.NotPanics(t, func() {
		logger.Error(context.Background(), "dropped", xlog.Err(errors.New("x")))
	})
	assert.Zero(t, xlog.ErrorCount(logger))
}

func TestErrorCount_ForeignLogger(t *testing.T) {
	var l xlog.Logger
	assert.Zero(t, xlog.ErrorCount(l))
}

package xrotate

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// fileRotator 以 lumberjack 实现 [Rotator]。
type fileRotator struct {
	mu     sync.RWMutex
	lj     *lumberjack.Logger
	closed bool
}

// Open 校验配置并返回写入 cfg.Filename 的轮转器。
//
// 文件在首次写入时创建；不存在的父目录在这里以 0750 权限创建，
// 使目录权限问题在启动时暴露。
func Open(cfg Config) (Rotator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	path := filepath.Clean(cfg.Filename)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("xrotate: create log dir: %w", err)
	}
	return &fileRotator{
		lj: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		},
	}, nil
}

func (r *fileRotator) Write(p []byte) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return 0, ErrClosed
	}
	return r.lj.Write(p)
}

func (r *fileRotator) Rotate() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return ErrClosed
	}
	return r.lj.Rotate()
}

// Close 等待进行中的写入完成后关闭文件。
func (r *fileRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	r.closed = true
	return r.lj.Close()
}

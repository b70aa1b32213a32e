package xconf

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	retry "github.com/avast/retry-go/v5"
	"github.com/fsnotify/fsnotify"
)

const (
	// defaultDebounce 默认防抖时间。
	defaultDebounce = 100 * time.Millisecond

	// 文件可能处于写入中途，重载失败时短暂重试。
	defaultAttempts   = 3
	defaultRetryDelay = 50 * time.Millisecond
)

// WatchOption 监视器配置选项。
type WatchOption func(*watchOptions)

type watchOptions struct {
	debounce   time.Duration
	attempts   uint
	retryDelay time.Duration
}

// WithDebounce 设置防抖时间，窗口内的多次变更只触发一次重载。非正值忽略。
func WithDebounce(d time.Duration) WatchOption {
	return func(o *watchOptions) {
		if d > 0 {
			o.debounce = d
		}
	}
}

// WithRetry 设置单次变更的重载尝试次数与间隔。attempts 为 1 表示不重试，
// 为 0 或 delay 为负时忽略。
func WithRetry(attempts uint, delay time.Duration) WatchOption {
	return func(o *watchOptions) {
		if attempts > 0 && delay >= 0 {
			o.attempts = attempts
			o.retryDelay = delay
		}
	}
}

// Watcher 监视单个文件，变更后执行重载函数。
type Watcher struct {
	path     string
	reload   func() error
	notify   func(error)
	watcher  *fsnotify.Watcher
	debounce time.Duration
	retry    []retry.Option
	ctx      context.Context
	cancel   context.CancelFunc
	mu       sync.Mutex
	running  bool
	timer    *time.Timer
}

// WatchFile 创建文件监视器。
//
// path 变更（写入、创建、rename 替换）后经防抖调用 reload，失败时按 [WithRetry] 重试，
// 再把最终结果交给 notify；fsnotify 自身的错误同样交给 notify。
// 监视的是 path 所在目录，编辑器“写临时文件再 rename”的保存方式不会丢事件。
// 返回的 Watcher 需调用 Start 或 StartAsync 开始监视，Stop 停止。
func WatchFile(path string, reload func() error, notify func(error), opts ...WatchOption) (*Watcher, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if reload == nil {
		return nil, errors.New("xconf: nil reload func")
	}
	options := &watchOptions{
		debounce:   defaultDebounce,
		attempts:   defaultAttempts,
		retryDelay: defaultRetryDelay,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("xconf: create watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := fsWatcher.Add(dir); err != nil {
		return nil, errors.Join(
			fmt.Errorf("xconf: watch directory %s: %w", dir, err),
			fsWatcher.Close(),
		)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		path:     path,
		reload:   reload,
		notify:   notify,
		watcher:  fsWatcher,
		debounce: options.debounce,
		retry: []retry.Option{
			retry.Context(ctx),
			retry.Attempts(options.attempts),
			retry.Delay(options.retryDelay),
			retry.DelayType(retry.FixedDelay),
			retry.LastErrorOnly(true),
		},
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// WatchCallback 配置重载回调，err 为重载结果。
type WatchCallback func(cfg Config, err error)

// Watch 监视配置文件，变更后调用 cfg.Reload。
func Watch(cfg Config, callback WatchCallback, opts ...WatchOption) (*Watcher, error) {
	if cfg == nil || cfg.Path() == "" {
		return nil, ErrNotFile
	}
	notify := func(err error) {
		if callback != nil {
			callback(cfg, err)
		}
	}
	return WatchFile(cfg.Path(), cfg.Reload, notify, opts...)
}

// Start 阻塞运行监视循环，直到 Stop。
func (w *Watcher) Start() {
	if w.markRunning() {
		w.run()
	}
}

// StartAsync 在后台 goroutine 运行监视循环。
func (w *Watcher) StartAsync() {
	if w.markRunning() {
		go w.run()
	}
}

func (w *Watcher) markRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running || w.ctx.Err() != nil {
		return false
	}
	w.running = true
	return true
}

// Stop 停止监视，之后不再发起新的重载。可重复调用，在回调中调用也是安全的。
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.ctx.Err() != nil {
		return nil
	}
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.cancel()
	w.running = false
	return w.watcher.Close()
}

func (w *Watcher) run() {
	filename := filepath.Base(w.path)
	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event, filename)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.emit(fmt.Errorf("xconf: watch error: %w", err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event, filename string) {
	if filepath.Base(event.Name) != filename {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.ctx.Err() != nil {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		if w.ctx.Err() != nil {
			return
		}
		w.emit(retry.New(w.retry...).Do(w.reload))
	})
}

func (w *Watcher) emit(err error) {
	if w.notify != nil && w.ctx.Err() == nil {
		w.notify(err)
	}
}

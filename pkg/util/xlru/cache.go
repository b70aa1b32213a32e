package xlru

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// maxSize 缓存最大条目数上限。
const maxSize = 1 << 24 // 16,777,216

// Config 定义缓存配置。
type Config struct {
	// Size 缓存最大条目数，必须大于 0 且不超过 16,777,216。
	Size int
}

// Option 定义缓存可选配置函数类型。
type Option[K comparable, V any] func(*options[K, V])

type options[K comparable, V any] struct {
	onEvicted func(key K, value V)
}

// WithOnEvicted 设置条目被淘汰时的回调函数。
//
// 回调在底层库的互斥锁内同步执行，严禁在回调中调用 Cache 自身的方法，否则会死锁。
func WithOnEvicted[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(o *options[K, V]) {
		o.onEvicted = fn
	}
}

// Stats 是命中统计快照。
type Stats struct {
	Hits   uint64
	Misses uint64
}

// HitRatio 返回命中率，无访问时为 0。
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Cache 是固定容量的 LRU 缓存，缓存的是不可变数据的派生结果，因此不需要过期时间。
//
// 必须通过 [New] 创建。所有方法并发安全，不启动后台 goroutine。
type Cache[K comparable, V any] struct {
	lru    *lru.Cache[K, V]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// New 创建新的 LRU 缓存。
// cfg.Size <= 0 返回 [ErrInvalidSize]，超过上限返回 [ErrSizeExceedsMax]。
func New[K comparable, V any](cfg Config, opts ...Option[K, V]) (*Cache[K, V], error) {
	if cfg.Size <= 0 {
		return nil, ErrInvalidSize
	}
	if cfg.Size > maxSize {
		return nil, ErrSizeExceedsMax
	}

	o := &options[K, V]{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	l, err := lru.NewWithEvict(cfg.Size, o.onEvicted)
	if err != nil {
		return nil, err
	}
	return &Cache[K, V]{lru: l}, nil
}

// Get 获取缓存值并计入命中统计。
func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.lru.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// GetOrLoad 命中时返回缓存值；未命中时调用 load，成功后写入缓存。
//
// 并发未命中同一个键时 load 可能被调用多次，结果以最后一次写入为准。
// load 返回错误时不缓存。
func (c *Cache[K, V]) GetOrLoad(key K, load func(K) (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := load(key)
	if err != nil {
		return v, err
	}
	c.lru.Add(key, v)
	return v, nil
}

// Set 设置缓存值，返回是否触发了淘汰。
func (c *Cache[K, V]) Set(key K, value V) bool {
	return c.lru.Add(key, value)
}

// Delete 删除缓存条目，返回键是否存在。
func (c *Cache[K, V]) Delete(key K) bool {
	return c.lru.Remove(key)
}

// Contains 检查键是否存在，不更新访问顺序，不计入统计。
func (c *Cache[K, V]) Contains(key K) bool {
	return c.lru.Contains(key)
}

// Clear 清空所有条目，统计保留。
func (c *Cache[K, V]) Clear() {
	c.lru.Purge()
}

// Len 返回当前条目数。
func (c *Cache[K, V]) Len() int {
	return c.lru.Len()
}

// Stats 返回命中统计快照。
func (c *Cache[K, V]) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}

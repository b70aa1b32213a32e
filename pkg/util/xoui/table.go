package xoui

import (
	"iter"
	"sort"

	"github.com/omeyang/xinet/pkg/util/xmac"
)

// Table 是按 (前缀值, 长度) 排序的厂商前缀表，支持最长前缀匹配。
//
// Table 构建后不可变，可在多个 goroutine 间共享指针，无需加锁。
// 零值是空表，所有查找均未命中。
type Table struct {
	entries []Entry
}

// Len 返回条目数。
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// All 按排序顺序遍历全部条目。
func (t *Table) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		if t == nil {
			return
		}
		for _, e := range t.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Search 返回包含 addr 的最长前缀条目。
//
// 以 addr 的 /48 前缀为键二分查找：命中则从命中位置开始，否则从插入点前一位开始，
// 向低位逐条回扫。第一个包含键的条目即为最长匹配（同一起始值的更长前缀排在更后）；
// 遇到不包含键的 /24 条目即停止，返回未命中。
//
// 开销为 O(log n + k)，k 为与 addr 同属一个 /24 块的条目数。
func (t *Table) Search(addr xmac.Addr) (Entry, bool) {
	if t == nil || len(t.entries) == 0 {
		return Entry{}, false
	}
	key := PrefixFrom(addr)
	i := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].Prefix.Compare(key) >= 0
	})
	// 未精确命中时从插入点前一位开始；键小于所有条目时 i-1 为 -1，循环不执行
	if i == len(t.entries) || t.entries[i].Prefix != key {
		i--
	}
	for ; i >= 0; i-- {
		e := t.entries[i]
		if e.Prefix.Contains(key) {
			return e, true
		}
		if e.Prefix.bits <= MinBits {
			return Entry{}, false
		}
	}
	return Entry{}, false
}

// Lookup 返回 addr 对应的厂商信息。
func (t *Table) Lookup(addr xmac.Addr) (Vendor, bool) {
	e, ok := t.Search(addr)
	return e.Vendor, ok
}

// SearchPrefix 返回包含 addr 的最长前缀。
func (t *Table) SearchPrefix(addr xmac.Addr) (Prefix, bool) {
	e, ok := t.Search(addr)
	return e.Prefix, ok
}

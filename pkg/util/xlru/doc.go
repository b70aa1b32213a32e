// Package xlru 提供固定容量的泛型 LRU 缓存。
//
// xlru 基于 github.com/hashicorp/golang-lru/v2 封装，额外提供命中统计和
// [Cache.GetOrLoad] 读穿辅助方法，用于缓存对只读数据（如厂商前缀表）的查找结果。
//
// # 核心特性
//
//   - 泛型支持：任意 comparable 键、任意值
//   - LRU 淘汰：缓存满时淘汰最久未访问的条目
//   - 并发安全：底层使用 sync.Mutex
//   - 无后台 goroutine，不需要关闭
//
// # 设计决策
//
// 被缓存的数据源构建后不可变，缓存结果永不过时，因此不提供 TTL。
// 数据源整体替换时应新建 Cache，而不是逐条失效。
//
// # 注意事项
//
//   - Size 是条目数量，不是内存大小
//   - 淘汰回调在锁内执行，严禁在回调中调用 Cache 自身方法
//   - [Cache.Contains] 不计入命中统计
package xlru

// Package util 提供网络标识相关的工具子包。
//
// 子包列表：
//   - xmac: MAC 地址解析与格式化，支持多种书写风格
//   - xoui: OUI 厂商表，按最长前缀匹配 MAC
//   - xnet: IP 与 CIDR 规范化、掩码解析、包含判断与二进制编码
//   - xlru: 带命中统计的泛型 LRU 缓存
//
// 子包不依赖彼此之外的业务代码，可单独使用。
package util

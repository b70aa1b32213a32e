package xoui

import (
	_ "embed"
)

//go:embed data/manuf
var embeddedManuf string

// EmbeddedData 返回内置的 manuf 样本数据。
func EmbeddedData() string {
	return embeddedManuf
}

// LoadEmbedded 由内置样本数据构建一张新表。
//
// 每次调用都重新解析，不缓存全局实例；调用方应在启动时构建一次并传递指针。
func LoadEmbedded(opts ...Option) (*Table, error) {
	return Load(embeddedManuf, opts...)
}

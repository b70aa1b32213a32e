package xoui

// Vendor 是某个前缀对应的厂商信息。空字符串表示缺失。
type Vendor struct {
	// Short 短名称，必填（如 "XyplexTe"）。
	Short string `json:"short"`
	// Long 完整名称（如 "Xyplex"）。
	Long string `json:"long,omitempty"`
	// Comment 注释，已去除首尾 '#' 和空白（如 "terminal servers"）。
	Comment string `json:"comment,omitempty"`
}

// Entry 是表中的一条记录。
type Entry struct {
	Prefix Prefix `json:"prefix"`
	Vendor
}

package xnet

import "errors"

var (
	// ErrInvalidAddress 表示无效的 IP 地址或网络字符串。
	ErrInvalidAddress = errors.New("xnet: invalid IP address")

	// ErrMissingMask 表示裸地址既没有 CIDR 长度也没有提供掩码，无法构成网络。
	ErrMissingMask = errors.New("xnet: missing network mask")

	// ErrInvalidMask 表示掩码文本既不是数字也不是地址，或与地址协议族不一致。
	ErrInvalidMask = errors.New("xnet: invalid network mask")

	// ErrNonContiguousMask 表示掩码不是前缀全 1、后缀全 0 的形式（如 255.0.255.0）。
	ErrNonContiguousMask = errors.New("xnet: non-contiguous network mask")

	// ErrInvalidPrefixLen 表示前缀长度超出 [0, 32]（IPv4）或 [0, 128]（IPv6）。
	ErrInvalidPrefixLen = errors.New("xnet: prefix length out of range")

	// ErrInvalidBinaryLength 表示二进制形式的长度不是 4、5、16 或 17 字节。
	ErrInvalidBinaryLength = errors.New("xnet: invalid binary address length")

	// ErrAmbiguousMask 表示输入已带前缀长度，又额外提供了掩码。
	ErrAmbiguousMask = errors.New("xnet: prefix length specified twice")
)

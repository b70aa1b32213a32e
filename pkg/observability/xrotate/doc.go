// Package xrotate 提供按大小轮转的日志文件，基于 gopkg.in/natefinch/lumberjack.v2。
//
// [Config] 可嵌入应用配置，由 xconf 解码后交给 [Open]：
//
//	cfg := xrotate.DefaultConfig("/var/log/xinetctl.log")
//	cfg.MaxSizeMB = 50
//	r, err := xrotate.Open(cfg)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
// Close 之后的写入返回 [ErrClosed]，不会重新打开文件。
package xrotate

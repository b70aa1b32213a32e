package xrotate

import (
	"errors"
	"fmt"
)

// 默认值与上限。
const (
	DefaultMaxSizeMB  = 100
	DefaultMaxBackups = 7
	DefaultMaxAgeDays = 30

	maxSizeMB  = 10240
	maxBackups = 1024
	maxAgeDays = 3650
)

// Config 描述一个按大小轮转的日志文件，可直接嵌入应用配置：
//
//	type logConfig struct {
//	    Level          string `koanf:"level"`
//	    xrotate.Config `koanf:",squash"`
//	}
type Config struct {
	Filename string `koanf:"file" json:"file"`
	// MaxSizeMB 单个文件上限，1~10240。
	MaxSizeMB int `koanf:"maxsize" json:"maxsize"`
	// MaxBackups 保留的备份数，0 不按数量清理。
	MaxBackups int `koanf:"maxbackups" json:"maxbackups"`
	// MaxAgeDays 备份保留天数，0 不按天数清理。
	MaxAgeDays int  `koanf:"maxage" json:"maxage"`
	Compress   bool `koanf:"compress" json:"compress"`
}

// DefaultConfig 返回写入 filename 的默认配置。
func DefaultConfig(filename string) Config {
	return Config{
		Filename:   filename,
		MaxSizeMB:  DefaultMaxSizeMB,
		MaxBackups: DefaultMaxBackups,
		MaxAgeDays: DefaultMaxAgeDays,
	}
}

// Validate 报告配置中的全部问题。
func (c Config) Validate() error {
	if c.Filename == "" {
		return ErrEmptyFilename
	}
	var errs []error
	if c.MaxSizeMB < 1 || c.MaxSizeMB > maxSizeMB {
		errs = append(errs, fmt.Errorf("%w: maxsize %d not in 1~%d", ErrInvalidConfig, c.MaxSizeMB, maxSizeMB))
	}
	if c.MaxBackups < 0 || c.MaxBackups > maxBackups {
		errs = append(errs, fmt.Errorf("%w: maxbackups %d not in 0~%d", ErrInvalidConfig, c.MaxBackups, maxBackups))
	}
	if c.MaxAgeDays < 0 || c.MaxAgeDays > maxAgeDays {
		errs = append(errs, fmt.Errorf("%w: maxage %d not in 0~%d", ErrInvalidConfig, c.MaxAgeDays, maxAgeDays))
	}
	if c.MaxBackups == 0 && c.MaxAgeDays == 0 {
		errs = append(errs, fmt.Errorf("%w: maxbackups and maxage are both 0, backups would never be removed", ErrInvalidConfig))
	}
	return errors.Join(errs...)
}

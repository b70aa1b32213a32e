package main

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xinet/pkg/business/xinet"
	"github.com/omeyang/xinet/pkg/config/xconf"
	"github.com/omeyang/xinet/pkg/observability/xrotate"
)

// envPrefix 环境变量前缀，XINET_LOG_LEVEL=debug 覆盖 log.level。
const envPrefix = "XINET_"

const defaultChunkSize = 256

// appConfig 是配置文件的结构。优先级：命令行 > 环境变量 > 文件 > 默认值。
//
//	vendor:
//	  path: /usr/share/wireshark/manuf
//	  strict: false
//	cache:
//	  size: 4096
//	log:
//	  level: warn
//	  format: text
//	  file: /var/log/xinetctl.log
//	  maxsize: 100      # MB
//	  maxbackups: 7
//	  maxage: 30        # 天
//	  compress: false
//	batch:
//	  workers: 0        # 0 为 GOMAXPROCS
//	  chunksize: 256
type appConfig struct {
	Vendor xinet.VendorConfig `koanf:"vendor"`
	Cache  cacheConfig        `koanf:"cache"`
	Log    logConfig          `koanf:"log"`
	Batch  batchConfig        `koanf:"batch"`
}

type cacheConfig struct {
	Size int `koanf:"size"`
}

// 键名不含下划线，环境变量中的 '_' 会被当作层级分隔。
type logConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	// 文件与轮转参数：file、maxsize、maxbackups、maxage、compress。
	xrotate.Config `koanf:",squash"`
}

type batchConfig struct {
	Workers   int `koanf:"workers"`
	ChunkSize int `koanf:"chunksize"`
}

func defaultConfig() appConfig {
	return appConfig{
		Cache: cacheConfig{Size: xinet.DefaultCacheSize},
		Log: logConfig{
			Level:  "warn",
			Format: "text",
			Config: xrotate.DefaultConfig(""),
		},
		Batch: batchConfig{ChunkSize: defaultChunkSize},
	}
}

// loadConfig 读取配置文件并叠加环境变量。path 为空时只读环境变量。
func loadConfig(path string) (appConfig, xconf.Config, error) {
	var (
		conf xconf.Config
		err  error
	)
	if path == "" {
		conf, err = xconf.NewFromBytes([]byte("{}"), xconf.FormatYAML, xconf.WithEnvPrefix(envPrefix))
	} else {
		conf, err = xconf.New(path, xconf.WithEnvPrefix(envPrefix))
	}
	if err != nil {
		return appConfig{}, nil, fmt.Errorf("load config: %w", err)
	}
	cfg, err := decodeConfig(conf)
	if err != nil {
		return appConfig{}, nil, err
	}
	return cfg, conf, nil
}

func decodeConfig(conf xconf.Config) (appConfig, error) {
	cfg := defaultConfig()
	if err := conf.Unmarshal("", &cfg); err != nil {
		return appConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// applyFlags 用显式给出的命令行选项覆盖配置。
func applyFlags(cmd *cli.Command, cfg *appConfig) {
	if cmd.IsSet("vendor-file") {
		cfg.Vendor.Path = cmd.String("vendor-file")
	}
	if cmd.IsSet("strict") {
		cfg.Vendor.Strict = cmd.Bool("strict")
	}
	if cmd.IsSet("cache-size") {
		cfg.Cache.Size = cmd.Int("cache-size")
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.Log.Format = cmd.String("log-format")
	}
	if cmd.IsSet("log-file") {
		cfg.Log.Filename = cmd.String("log-file")
	}
}

func (c *appConfig) validate() error {
	var errs []error
	if c.Cache.Size < 0 {
		errs = append(errs, fmt.Errorf("cache.size must be >= 0, got %d", c.Cache.Size))
	}
	if c.Batch.Workers < 0 {
		errs = append(errs, fmt.Errorf("batch.workers must be >= 0, got %d", c.Batch.Workers))
	}
	if c.Batch.ChunkSize <= 0 {
		errs = append(errs, fmt.Errorf("batch.chunksize must be > 0, got %d", c.Batch.ChunkSize))
	}
	return errors.Join(errs...)
}

// workers 返回批处理并发度，未配置时取 GOMAXPROCS。
func (c *batchConfig) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

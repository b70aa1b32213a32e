// xinetctl 在命令行上调用 xinet 的 MAC/IP 函数，也可批量处理标准输入。
//
// 用法:
//
//	xinetctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config       配置文件（YAML/JSON），环境变量 XINET_* 覆盖其中的键
//	    --vendor-file  manuf 格式的厂商文件，缺省使用内置数据
//	    --strict       重复前缀导致加载失败
//	    --cache-size   厂商查找缓存容量，0 关闭
//	    --log-level    debug/info/warn/error（默认 warn）
//	    --log-format   text/json
//	    --log-file     日志写入文件并按大小轮转
//	    --stats        结束时向 stderr 输出调用统计
//
// 命令:
//
//	mac format MAC [SPEC]          格式化 MAC
//	mac vendor MAC...              厂商前缀、名称与注释
//	mac flags MAC                  单播/组播、全局/本地标志
//	ip format ADDR [MASK]          规范化地址或网络（--truncate 截断主机位）
//	ip contains ADDR NET [MASK]    包含判断
//	ip insubnet ADDR NET [MASK]    单地址子网判断
//	ip blob ADDR [MASK]            紧凑二进制形式
//	oui check [FILE]               检查厂商文件
//	oui dump [FILE]                输出厂商表
//	call FUNC [ARG...]             按函数名调用
//	functions                      列出函数
//	batch                          每行一个调用，按输入顺序输出结果
//
// 参数字面量: NULL 为空值，true/false 为布尔，x'0a000001' 为二进制，
// 引号包裹的内容总是文本，其余按文本传递。
//
// 退出码:
//
//	0: 成功
//	1: 调用失败或输入无效
//	2: 参数错误（未知命令、未知函数、参数个数不符等）
//	128+N: 被信号 N 中断
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xinet/pkg/business/xinet"
	"github.com/omeyang/xinet/pkg/lifecycle/xrun"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run 运行 CLI 并把错误映射为退出码。
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, opts ...xrun.Option) int {
	a := newApp(stdin, stdout, stderr)
	cmd := createApp(a)

	err := xrun.Main(ctx, func(ctx context.Context) error {
		return cmd.Run(ctx, args)
	}, opts...)
	return exitCode(stderr, err)
}

func exitCode(stderr io.Writer, err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var sigErr *xrun.SignalError
	if errors.As(err, &sigErr) {
		fmt.Fprintf(stderr, "中断: %v\n", sigErr)
		return sigErr.ExitCode()
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
		return 2
	}
	if errors.Is(err, xinet.ErrArity) || errors.Is(err, xinet.ErrUnknownFunction) {
		fmt.Fprintf(stderr, "参数错误: %v\n", err)
		return 2
	}
	if isCLIUsageError(err) {
		// flag 解析器已输出详情
		return 2
	}
	fmt.Fprintf(stderr, "错误: %v\n", err)
	return 1
}

// createApp 创建 CLI 应用，命令的输入输出都经过 a。
func createApp(a *app) *cli.Command {
	return &cli.Command{
		Name:      "xinetctl",
		Usage:     "MAC 与 IP 地址工具",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Reader:    a.stdin,
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径（.yaml/.yml/.json）",
			},
			&cli.StringFlag{
				Name:  "vendor-file",
				Usage: "manuf 格式的厂商文件，缺省使用内置数据",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "厂商文件中的重复前缀视为错误",
			},
			&cli.IntFlag{
				Name:  "cache-size",
				Usage: "厂商查找缓存容量，0 关闭",
				Value: xinet.DefaultCacheSize,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 debug/info/warn/error",
				Value: "warn",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式 text/json",
				Value: "text",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "日志文件，按大小轮转；缺省写 stderr",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "结束时向 stderr 输出调用统计",
			},
		},
		Before:   a.before,
		After:    a.after,
		Commands: createCommands(a),
		// 退出码统一由 run() 映射，不让 urfave/cli 调用 os.Exit。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(a.stderr, err)
			}
		},
	}
}

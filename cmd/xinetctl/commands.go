package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xinet/pkg/business/xinet"
	"github.com/omeyang/xinet/pkg/util/xoui"
)

// 创建所有子命令。
func createCommands(a *app) []*cli.Command {
	return []*cli.Command{
		createMacCommand(a),
		createIPCommand(a),
		createOUICommand(a),
		createCallCommand(a),
		createFunctionsCommand(a),
		createBatchCommand(a),
	}
}

// requireArgs 检查位置参数个数。
func requireArgs(cmd *cli.Command, minArgs, maxArgs int) error {
	n := cmd.Args().Len()
	if n >= minArgs && (maxArgs < 0 || n <= maxArgs) {
		return nil
	}
	if minArgs == maxArgs {
		return newUsageError(fmt.Sprintf("%s: 需要 %d 个参数，实际 %d 个", cmd.FullName(), minArgs, n))
	}
	return newUsageError(fmt.Sprintf("%s: 参数个数 %d 不符合用法 %s", cmd.FullName(), n, cmd.ArgsUsage))
}

func textArgs(args []string) []xinet.Value {
	values := make([]xinet.Value, len(args))
	for i, s := range args {
		values[i] = xinet.Text(s)
	}
	return values
}

// callAndPrint 调用函数并输出一行结果。
func (a *app) callAndPrint(ctx context.Context, name string, args ...xinet.Value) error {
	v, err := a.call(ctx, name, args...)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, v)
	return nil
}

func createMacCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "mac",
		Usage: "MAC 地址工具",
		Commands: []*cli.Command{
			{
				Name:      "format",
				Usage:     "格式化 MAC 地址",
				ArgsUsage: "MAC [SPEC]",
				Description: `SPEC 为风格名，可带前导标志 '~' 与 '?'：
  hex colon bare hexadecimal dot dash canonical interface-id link-local
风格名全大写时输出大写，例如 "DOT" 输出 8C1C.DA8A.BCDE；
'?' 使无效输入输出 NULL 而不是报错，'~' 使未知风格回退为冒号格式。`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if err := requireArgs(cmd, 1, 2); err != nil {
						return err
					}
					return a.callAndPrint(ctx, "MAC_FORMAT", textArgs(cmd.Args().Slice())...)
				},
			},
			{
				Name:      "vendor",
				Usage:     "查找厂商（前缀、短名、全名、注释）",
				ArgsUsage: "MAC...",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if err := requireArgs(cmd, 1, -1); err != nil {
						return err
					}
					return a.macVendor(ctx, cmd.Args().Slice())
				},
			},
			{
				Name:      "flags",
				Usage:     "首字节标志位",
				ArgsUsage: "MAC",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if err := requireArgs(cmd, 1, 1); err != nil {
						return err
					}
					return a.macFlags(ctx, cmd.Args().First())
				},
			},
		},
	}
}

var vendorFuncs = []string{"MAC_PREFIX", "MAC_MANUF", "MAC_MANUFLONG", "MAC_COMMENT"}

func (a *app) macVendor(ctx context.Context, macs []string) error {
	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	for _, mac := range macs {
		fields := []string{mac}
		for _, fn := range vendorFuncs {
			v, err := a.call(ctx, fn, xinet.Text(mac))
			if err != nil {
				return err
			}
			s := v.String()
			if v.IsNull() {
				s = "-"
			}
			fields = append(fields, s)
		}
		fmt.Fprintln(tw, strings.Join(fields, "\t"))
	}
	return tw.Flush()
}

var flagFuncs = []struct {
	fn    string
	label string
}{
	{"MAC_ISUNICAST", "unicast"},
	{"MAC_ISMULTICAST", "multicast"},
	{"MAC_ISUNIVERSAL", "universal"},
	{"MAC_ISLOCAL", "local"},
}

func (a *app) macFlags(ctx context.Context, mac string) error {
	parts := make([]string, 0, len(flagFuncs))
	for _, f := range flagFuncs {
		v, err := a.call(ctx, f.fn, xinet.Text(mac))
		if err != nil {
			return err
		}
		parts = append(parts, f.label+"="+v.String())
	}
	fmt.Fprintln(a.stdout, strings.Join(parts, " "))
	return nil
}

func createIPCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "ip",
		Usage: "IP 地址与网络工具",
		Description: `MASK 可以是前缀长度（16）、点分掩码（255.255.0.0）
或 IPv6 掩码形式（ffff:ffff::）。CIDR 形式的网络忽略 MASK。`,
		Commands: []*cli.Command{
			{
				Name:      "format",
				Usage:     "规范化地址或网络",
				ArgsUsage: "ADDR [MASK]",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "truncate", Aliases: []string{"t"}, Usage: "清零主机位"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if err := requireArgs(cmd, 1, 2); err != nil {
						return err
					}
					args, err := parseArgs(cmd.Args().Slice())
					if err != nil {
						return err
					}
					if cmd.Bool("truncate") {
						args = append(args, xinet.Bool(true))
					}
					return a.callAndPrint(ctx, "IP_FORMAT", args...)
				},
			},
			ipFuncCommand(a, "contains", "IP_CONTAINS", "地址或网络是否在网络内", "ADDR NETWORK [MASK]", 2, 3),
			ipFuncCommand(a, "insubnet", "INSUBNET", "单地址是否在子网内", "ADDR NETWORK [MASK]", 2, 3),
			ipFuncCommand(a, "blob", "IP_BLOBIFY", "紧凑二进制形式", "ADDR [MASK]", 1, 2),
		},
	}
}

func ipFuncCommand(a *app, name, fn, usage, argsUsage string, minArgs, maxArgs int) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: argsUsage,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := requireArgs(cmd, minArgs, maxArgs); err != nil {
				return err
			}
			args, err := parseArgs(cmd.Args().Slice())
			if err != nil {
				return err
			}
			return a.callAndPrint(ctx, fn, args...)
		},
	}
}

func createOUICommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "oui",
		Usage: "厂商数据工具",
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "检查 manuf 文件，列出重复前缀",
				ArgsUsage: "[FILE]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					if err := requireArgs(cmd, 0, 1); err != nil {
						return err
					}
					path := cmd.Args().First()
					if path == "" {
						path = a.cfg.Vendor.Path
					}
					return a.ouiCheck(path)
				},
			},
			{
				Name:      "dump",
				Usage:     "按前缀顺序输出厂商表",
				ArgsUsage: "[FILE]",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "每行一个 JSON 对象"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if err := requireArgs(cmd, 0, 1); err != nil {
						return err
					}
					vc := a.cfg.Vendor
					if path := cmd.Args().First(); path != "" {
						vc.Path = path
					}
					table, err := xinet.LoadVendors(ctx, vc, xinet.WithLogger(a.logger), xinet.WithObserver(a.observer()))
					if err != nil {
						return err
					}
					return a.ouiDump(table, cmd.Bool("json"))
				},
			},
		},
	}
}

// ouiCheck 加载整个文件并报告所有重复前缀；有重复时退出码为 1。
func (a *app) ouiCheck(path string) error {
	duplicates := 0
	opt := xoui.WithDuplicateHandler(func(err *xoui.LoadError, kept, _ xoui.Entry) {
		duplicates++
		fmt.Fprintf(a.stdout, "%v (kept %s)\n", err, kept.Short)
	})

	var (
		table *xoui.Table
		err   error
	)
	if path == "" {
		table, err = xoui.LoadEmbedded(opt)
	} else {
		var f *os.File
		if f, err = os.Open(path); err != nil {
			return err
		}
		defer f.Close() //nolint:errcheck // 只读文件
		table, err = xoui.LoadReader(f, opt)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "%d entries, %d duplicates\n", table.Len(), duplicates)
	if duplicates > 0 {
		return &exitError{code: 1}
	}
	return nil
}

func (a *app) ouiDump(table *xoui.Table, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(a.stdout)
		for e := range table.All() {
			if err := enc.Encode(e); err != nil {
				return err
			}
		}
		return nil
	}
	for e := range table.All() {
		line := e.Prefix.String() + "\t" + e.Short
		if e.Long != "" {
			line += "\t" + e.Long
		}
		if e.Comment != "" {
			line += "\t# " + e.Comment
		}
		fmt.Fprintln(a.stdout, line)
	}
	return nil
}

func createCallCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:      "call",
		Usage:     "按函数名调用",
		ArgsUsage: "FUNC [ARG...]",
		Description: `参数字面量: NULL 为空值，true/false 为布尔，x'0a000001' 为二进制，
引号包裹的内容总是文本。例如:
  xinetctl call IP_FORMAT 192.168.3.2 16 true
  xinetctl call IP_FORMAT "x'0a000001'"`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := requireArgs(cmd, 1, -1); err != nil {
				return err
			}
			args, err := parseArgs(cmd.Args().Tail())
			if err != nil {
				return err
			}
			return a.callAndPrint(ctx, strings.ToUpper(cmd.Args().First()), args...)
		},
	}
}

func createFunctionsCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "functions",
		Usage: "列出可调用的函数",
		Action: func(_ context.Context, _ *cli.Command) error {
			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			for _, fn := range xinet.Functions() {
				arity := fmt.Sprint(fn.MinArgs)
				if fn.MaxArgs != fn.MinArgs {
					arity = fmt.Sprintf("%d-%d", fn.MinArgs, fn.MaxArgs)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", fn.Name, arity, fn.Summary)
			}
			return tw.Flush()
		},
	}
}

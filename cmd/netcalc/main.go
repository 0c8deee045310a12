// netcalc 是子网属性计算命令行工具。
//
// 由 IP 地址和前缀长度（或点分掩码）计算网络地址、广播地址、
// 可用主机范围和主机数量，支持 IPv4 与 IPv6。
//
// 用法:
//
//	netcalc [选项] <地址> <前缀|掩码>
//
// 选项:
//
//	-j, --json       以 JSON 输出结果
//	-q, --quiet      精简输出（文本模式仅打印网络 CIDR，JSON 模式单行输出）
//	-f, --family     强制地址族 (4 或 6，默认按地址语法推断)
//	-c, --config     配置文件路径 (YAML/JSON)
//	    --log-level  日志级别 (debug/info/warn/error，默认 warn)
//	    --log-file   日志写入轮转文件而非 stderr
//
// 退出码:
//
//	0: 计算成功
//	1: 计算失败（地址/掩码/前缀无效）
//	2: 参数错误（缺少参数、未知 flag 等）
//
// 示例:
//
//	netcalc 192.168.1.10 24
//	netcalc 10.0.0.5 255.255.255.252
//	netcalc --json 2001:db8::1 /64
//	netcalc -c ~/.config/netcalc/config.yaml 10.0.0.1 /31
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args))
}

// usageError 表示参数层面的错误，映射到退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// isCLIUsageError 判断 err 是否为 CLI 框架在 flag 解析阶段产生的错误
// （未知 flag、flag 缺少取值等），这类错误同样按参数错误处理。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "flag provided but not defined") ||
		strings.Contains(msg, "flag needs an argument") ||
		strings.Contains(msg, "invalid value") ||
		strings.HasPrefix(msg, "No help topic for")
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:      "netcalc",
		Usage:     "子网属性计算工具",
		UsageText: "netcalc [选项] <地址> <前缀|掩码>",
		ArgsUsage: "<地址> <前缀|掩码>",
		Version:   fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "以 JSON 输出结果",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "精简输出（文本模式仅打印网络 CIDR，JSON 模式单行输出）",
			},
			&cli.StringFlag{
				Name:    "family",
				Aliases: []string{"f"},
				Usage:   "强制地址族 (4 或 6)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径 (YAML/JSON)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 (debug/info/warn/error)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "日志写入轮转文件而非 stderr",
			},
		},
		Action: cmdCalc,
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run(args []string) int {
	app := createApp()

	if err := app.Run(context.Background(), args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		if _, ok := err.(cli.ExitCoder); ok {
			// ExitErrHandler 已输出错误详情，此处仅设置退出码
			return 2
		}
		if isCLIUsageError(err) {
			// flag 解析器已向 stderr 输出错误详情，此处仅设置退出码
			return 2
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

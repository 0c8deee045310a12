package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/netcalc/pkg/config/xconf"
	"github.com/omeyang/netcalc/pkg/observability/xlog"
	"github.com/omeyang/netcalc/pkg/util/xjson"
	"github.com/omeyang/netcalc/pkg/util/xsubnet"
)

// settings 是配置文件与命令行 flag 合并后的运行设置。
// flag 优先于配置文件。
type settings struct {
	Output string `koanf:"output"` // text 或 json
	Quiet  bool   `koanf:"quiet"`
	Log    struct {
		Level string `koanf:"level"`
		File  string `koanf:"file"`
	} `koanf:"log"`
}

// defaultSettings CLI 工具的缺省设置：文本输出，只记录警告以上日志。
func defaultSettings() settings {
	var s settings
	s.Output = "text"
	s.Log.Level = "warn"
	return s
}

// resolveSettings 加载配置文件（如指定）并应用 flag 覆盖。
func resolveSettings(cmd *cli.Command) (settings, error) {
	s := defaultSettings()

	if path := cmd.String("config"); path != "" {
		cfg, err := xconf.New(path)
		if err != nil {
			return s, err
		}
		if err := cfg.Unmarshal("", &s); err != nil {
			return s, err
		}
	}

	if cmd.Bool("json") {
		s.Output = "json"
	}
	if cmd.Bool("quiet") {
		s.Quiet = true
	}
	if v := cmd.String("log-level"); v != "" {
		s.Log.Level = v
	}
	if v := cmd.String("log-file"); v != "" {
		s.Log.File = v
	}
	return s, nil
}

// buildLogger 按设置构建日志实例。
func buildLogger(s settings) (xlog.LoggerWithLevel, func() error, error) {
	b := xlog.New().SetLevelString(s.Log.Level)
	if s.Log.File != "" {
		b.SetRotation(s.Log.File)
	}
	return b.Build()
}

// parseFamilyFlag 解析 --family 的取值。
func parseFamilyFlag(v string) (xsubnet.Family, error) {
	switch v {
	case "":
		return xsubnet.F0, nil
	case "4":
		return xsubnet.V4, nil
	case "6":
		return xsubnet.V6, nil
	default:
		return xsubnet.F0, &usageError{msg: fmt.Sprintf("无效的地址族 %q（支持 4 或 6）", v)}
	}
}

// compute 执行 解析 → 推导 → 描述 管线。
// famHint 为 F0 时按地址语法推断地址族。
func compute(addrText, prefixText string, famHint xsubnet.Family) (xsubnet.Report, error) {
	addr, err := xsubnet.ParseAddress(addrText, famHint)
	if err != nil {
		return xsubnet.Report{}, err
	}
	fam := xsubnet.AddrFamily(addr)

	prefix, err := xsubnet.ParsePrefix(prefixText, fam)
	if err != nil {
		return xsubnet.Report{}, err
	}

	s, err := xsubnet.Derive(addr, prefix, fam)
	if err != nil {
		return xsubnet.Report{}, err
	}
	return xsubnet.Describe(s), nil
}

// renderReport 将报告写入 w。
// quiet 为 true 时输出精简形式：文本模式仅打印网络 CIDR，
// JSON 模式输出单行紧凑 JSON，便于脚本消费。
func renderReport(w io.Writer, r xsubnet.Report, asJSON, quiet bool) {
	if asJSON {
		if quiet {
			fmt.Fprintln(w, xjson.Compact(r))
			return
		}
		fmt.Fprintln(w, xjson.Pretty(r))
		return
	}
	if quiet {
		fmt.Fprintln(w, r.CIDR)
		return
	}

	lastLabel := "Broadcast Address:"
	if r.Family == "IPv6" {
		// IPv6 无广播语义
		lastLabel = "Last Address:     "
	}

	fmt.Fprintf(w, "CIDR:              %s\n", r.CIDR)
	fmt.Fprintf(w, "Subnet Mask:       %s\n", r.Mask)
	fmt.Fprintf(w, "Network Address:   %s\n", r.Network)
	fmt.Fprintf(w, "%s %s\n", lastLabel, r.BroadcastOrLast)
	fmt.Fprintf(w, "First Usable Host: %s\n", r.FirstUsable)
	fmt.Fprintf(w, "Last Usable Host:  %s\n", r.LastUsable)
	fmt.Fprintf(w, "Usable Hosts:      %s\n", r.UsableHosts)
	fmt.Fprintf(w, "Total Hosts:       %s\n", r.TotalHosts)
}

// cmdCalc 是根命令动作。
func cmdCalc(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) != 2 {
		return &usageError{msg: fmt.Sprintf("需要 2 个参数（地址、前缀或掩码），收到 %d 个", len(args))}
	}

	st, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	logger, cleanup, err := buildLogger(st)
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	fam, err := parseFamilyFlag(cmd.String("family"))
	if err != nil {
		return err
	}

	report, err := compute(args[0], args[1], fam)
	if err != nil {
		logger.Error(ctx, "subnet computation failed",
			slog.String("address", args[0]),
			slog.String("prefix", args[1]),
			xlog.Err(err))
		return err
	}

	logger.Debug(ctx, "subnet computed", slog.String("cidr", report.CIDR))

	out := cmd.Root().Writer
	if out == nil {
		out = os.Stdout
	}
	renderReport(out, report, st.Output == "json", st.Quiet)
	return nil
}

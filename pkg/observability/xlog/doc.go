// Package xlog 提供基于 [log/slog] 的日志构建器。
//
// 面向 netcalc 这类命令行工具：默认输出到 stderr、text 格式、Info 级别，
// 可切换 json 格式，可通过 [Builder.SetRotation] 写入按大小轮转的日志文件
// （基于 [gopkg.in/natefinch/lumberjack.v2]）。
//
// # 快速示例
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("debug").
//		SetFormat("json").
//		Build()
//	if err != nil {
//		// 配置错误
//	}
//	defer cleanup()
//
//	logger.Info(ctx, "computed subnet", slog.String("cidr", "192.168.1.0/24"))
//
// # 设计决策
//
//   - 所有日志方法强制传入 context.Context，方法签名只接受 slog.Attr
//   - [Level] 实现 encoding.TextMarshaler/TextUnmarshaler，可直接出现在配置结构体中
//   - Build() 返回 cleanup 函数统一释放资源（轮转文件句柄）
//   - Handler 写入失败不向调用方扩散，仅累积内部计数（日志定位为尽力而为）
package xlog

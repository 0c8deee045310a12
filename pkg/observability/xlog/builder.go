package xlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"
)

// 日志轮转默认配置。
const (
	// DefaultMaxSizeMB 单个日志文件最大大小（MB）。
	DefaultMaxSizeMB = 100

	// DefaultMaxBackups 保留的备份文件数量。
	DefaultMaxBackups = 3

	// DefaultMaxAgeDays 保留备份的天数。
	DefaultMaxAgeDays = 30
)

// Builder 日志配置构建器。
type Builder struct {
	output    io.Writer
	levelVar  *slog.LevelVar
	format    string
	addSource bool
	rotator   *lumberjack.Logger
	err       error
}

// New 创建配置构建器。
// 默认输出到 stderr，Info 级别，text 格式。
func New() *Builder {
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)

	return &Builder{
		output:   os.Stderr,
		levelVar: levelVar,
		format:   "text",
	}
}

// SetOutput 设置日志输出目标。
func (b *Builder) SetOutput(w io.Writer) *Builder {
	b.output = w
	return b
}

// SetLevel 设置日志级别。
func (b *Builder) SetLevel(level Level) *Builder {
	b.levelVar.Set(slog.Level(level))
	return b
}

// SetLevelString 通过字符串设置日志级别。
func (b *Builder) SetLevelString(s string) *Builder {
	level, err := ParseLevel(s)
	if err != nil {
		b.err = err
		return b
	}
	return b.SetLevel(level)
}

// SetFormat 设置输出格式：text 或 json。
// 空值视为使用默认格式，避免误把"没填"变成配置错误。
func (b *Builder) SetFormat(format string) *Builder {
	normalized := strings.ToLower(strings.TrimSpace(format))
	if normalized == "" {
		b.format = "text"
		return b
	}
	if normalized != "text" && normalized != "json" {
		b.err = fmt.Errorf("xlog: unknown format %q", format)
		return b
	}
	b.format = normalized
	return b
}

// SetAddSource 是否在日志中添加源码位置。
func (b *Builder) SetAddSource(enable bool) *Builder {
	b.addSource = enable
	return b
}

// SetRotation 将输出切换为按大小轮转的日志文件。
// 覆盖之前通过 SetOutput 设置的目标；cleanup 函数负责关闭文件。
func (b *Builder) SetRotation(filename string) *Builder {
	if strings.TrimSpace(filename) == "" {
		b.err = fmt.Errorf("xlog: empty rotation filename")
		return b
	}
	b.rotator = &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    DefaultMaxSizeMB,
		MaxBackups: DefaultMaxBackups,
		MaxAge:     DefaultMaxAgeDays,
	}
	b.output = b.rotator
	return b
}

// Build 构建 Logger 实例。
//
// 返回值：
//   - LoggerWithLevel: 日志实例，支持动态级别控制
//   - func() error: 清理函数，释放轮转文件句柄；无轮转时为空操作
//   - error: 配置错误
func (b *Builder) Build() (LoggerWithLevel, func() error, error) {
	if b.err != nil {
		return nil, nil, b.err
	}

	opts := &slog.HandlerOptions{
		Level:     b.levelVar,
		AddSource: b.addSource,
	}

	var handler slog.Handler
	switch b.format {
	case "json":
		handler = slog.NewJSONHandler(b.output, opts)
	default:
		handler = slog.NewTextHandler(b.output, opts)
	}

	logger := &xlogger{
		handler:    handler,
		levelVar:   b.levelVar,
		addSource:  b.addSource,
		errorCount: new(atomic.Uint64),
	}

	cleanup := func() error { return nil }
	if b.rotator != nil {
		rotator := b.rotator
		cleanup = func() error { return rotator.Close() }
	}
	return logger, cleanup, nil
}

package xlog

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"
)

// Logger 日志接口。
//
// 所有方法都需要 context.Context 参数；方法签名只接受 slog.Attr，
// 保证类型安全，避免隐式 key-value 转换开销。
type Logger interface {
	// Debug 记录 Debug 级别日志。
	Debug(ctx context.Context, msg string, attrs ...slog.Attr)

	// Info 记录 Info 级别日志。
	Info(ctx context.Context, msg string, attrs ...slog.Attr)

	// Warn 记录 Warn 级别日志。
	Warn(ctx context.Context, msg string, attrs ...slog.Attr)

	// Error 记录 Error 级别日志。
	Error(ctx context.Context, msg string, attrs ...slog.Attr)

	// With 返回带额外固定属性的派生 Logger。
	// 派生 logger 共享父级的 LevelVar，动态级别变更同步生效。
	With(attrs ...slog.Attr) Logger
}

// Leveler 动态级别控制接口，与 Logger 分离以保持核心接口最小化。
type Leveler interface {
	// SetLevel 动态设置日志级别，运行时生效。
	SetLevel(level Level)

	// GetLevel 获取当前日志级别。
	GetLevel() Level

	// Enabled 检查指定级别是否启用。
	Enabled(ctx context.Context, level Level) bool
}

// LoggerWithLevel 组合接口：Logger + Leveler。
// Build() 返回此接口，避免业务代码频繁类型断言。
type LoggerWithLevel interface {
	Logger
	Leveler
}

// 编译时接口检查
var _ LoggerWithLevel = (*xlogger)(nil)

// xlogger Logger 接口的实现。
type xlogger struct {
	handler    slog.Handler
	levelVar   *slog.LevelVar
	addSource  bool
	errorCount *atomic.Uint64 // Handler.Handle 失败计数，派生 logger 共享
}

//go:noinline
func (l *xlogger) log(ctx context.Context, level slog.Level, msg string, attrs []slog.Attr) {
	if !l.handler.Enabled(ctx, level) {
		return
	}
	// 仅在启用 AddSource 时才捕获调用者位置，runtime.Callers 有不可忽略的开销
	var pc uintptr
	if l.addSource {
		var pcs [1]uintptr
		// skip=3: Callers(0) → log(1) → Debug/Info/…(2) → 业务代码(3)
		runtime.Callers(3, pcs[:])
		pc = pcs[0]
	}
	r := slog.NewRecord(time.Now(), level, msg, pc)
	r.AddAttrs(attrs...)
	if err := l.handler.Handle(ctx, r); err != nil {
		// 失败不扩散：日志写入错误计入计数，不中断业务调用链
		l.errorCount.Add(1)
	}
}

func (l *xlogger) Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelDebug, msg, attrs)
}

func (l *xlogger) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelInfo, msg, attrs)
}

func (l *xlogger) Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelWarn, msg, attrs)
}

func (l *xlogger) Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelError, msg, attrs)
}

func (l *xlogger) With(attrs ...slog.Attr) Logger {
	if len(attrs) == 0 {
		return l
	}
	return &xlogger{
		handler:    l.handler.WithAttrs(attrs),
		levelVar:   l.levelVar,
		addSource:  l.addSource,
		errorCount: l.errorCount,
	}
}

func (l *xlogger) SetLevel(level Level) {
	l.levelVar.Set(slog.Level(level))
}

func (l *xlogger) GetLevel() Level {
	return Level(l.levelVar.Level())
}

func (l *xlogger) Enabled(ctx context.Context, level Level) bool {
	return l.handler.Enabled(ctx, slog.Level(level))
}

// ErrorCount 返回 Handler 写入失败的累计次数（用于监控与测试）。
func (l *xlogger) ErrorCount() uint64 {
	return l.errorCount.Load()
}

// Err 创建统一 key 为 "error" 的错误属性。
// err 为 nil 时返回空属性（会被 slog 忽略）。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

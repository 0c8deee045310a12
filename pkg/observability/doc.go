// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog 扩展，支持按大小轮转的文件输出
//
// 设计原则：
//   - 强制 context 传递，方法签名只接受 slog.Attr
//   - 日志写入失败不扩散到业务调用链
package observability

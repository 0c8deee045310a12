// Package xjson 提供 JSON 序列化小工具。
//
// 面向日志与命令行输出场景：序列化失败时返回带错误说明的占位字符串
// 而非 error，便于直接内联到输出语句中。
package xjson

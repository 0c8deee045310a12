package xjson

import (
	"encoding/json"
	"fmt"
)

// Pretty 将任意值序列化为两空格缩进的 JSON 字符串。
// 用于命令行与日志输出。序列化失败时返回 "<marshal error: ...>"。
func Pretty(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("<marshal error: %v>", err)
	}
	return string(data)
}

// Compact 将任意值序列化为单行 JSON 字符串。
// 序列化失败时返回 "<marshal error: ...>"。
func Compact(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("<marshal error: %v>", err)
	}
	return string(data)
}

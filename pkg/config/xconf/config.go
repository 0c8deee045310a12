package xconf

import "github.com/knadh/koanf/v2"

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	// FormatYAML YAML 格式。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// Config 定义配置接口。
// 只提供增值功能，基础操作请直接使用 Client() 返回的 koanf 实例。
type Config interface {
	// Client 返回底层的 koanf 实例。
	Client() *koanf.Koanf

	// Unmarshal 将指定路径的配置反序列化到目标结构体。
	// path 为空字符串时反序列化整个配置，标签名为 "koanf"。
	Unmarshal(path string, target any) error

	// Reload 重新加载配置文件（并发安全）。
	// 从字节数据创建的 Config 调用时返回错误。
	Reload() error

	// Path 返回配置文件路径；从字节数据创建时为空字符串。
	Path() string

	// Format 返回配置格式。
	Format() Format
}

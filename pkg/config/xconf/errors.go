package xconf

import "errors"

// 配置处理各阶段的预定义错误，按 定位 → 读取 → 解析 → 绑定 的顺序排列。
// 调用方统一用 [errors.Is] 判断，具体原因通过 %w 链附加。
var (
	// ErrEmptyPath 表示未给出配置文件路径。
	ErrEmptyPath = errors.New("xconf: empty config path")

	// ErrUnsupportedFormat 表示扩展名或指定格式不在支持范围内（YAML/JSON）。
	ErrUnsupportedFormat = errors.New("xconf: unsupported config format")

	// ErrLoadFailed 表示读取配置文件失败（不存在、无权限等）。
	ErrLoadFailed = errors.New("xconf: failed to load config")

	// ErrParseFailed 表示配置内容不是合法的 YAML/JSON。
	ErrParseFailed = errors.New("xconf: failed to parse config")

	// ErrUnmarshalFailed 表示配置无法绑定到目标结构体。
	ErrUnmarshalFailed = errors.New("xconf: failed to unmarshal config")
)

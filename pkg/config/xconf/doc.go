// Package xconf 提供基于 [github.com/knadh/koanf/v2] 的配置加载。
//
// netcalc 的配置面很小（输出格式、日志级别、日志文件），但加载路径与
// 服务端一致：按扩展名识别 YAML/JSON，统一经 rawbytes provider 解析，
// 反序列化到结构体。
//
// # 快速示例
//
//	cfg, err := xconf.New("~/.config/netcalc/config.yaml")
//	if err != nil {
//		// 处理加载失败
//	}
//
//	var settings struct {
//		Output string `koanf:"output"`
//		Log    struct {
//			Level string `koanf:"level"`
//			File  string `koanf:"file"`
//		} `koanf:"log"`
//	}
//	if err := cfg.Unmarshal("", &settings); err != nil {
//		// 处理解析失败
//	}
//
// # 设计决策
//
//   - 只提供增值功能，基础操作直接使用 Client() 返回的 koanf 实例
//   - [NewFromBytes] 允许空数据，得到空配置（Unmarshal 返回零值），
//     与 New 读取空文件的行为一致
//   - 预定义错误变量支持 errors.Is 分流
package xconf

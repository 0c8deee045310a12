// Package xsubnet 提供子网属性计算。
//
// xsubnet 基于 Go 标准库 [net/netip] 和社区库 [go4.org/netipx] 构建，
// 由地址 + 前缀长度（或点分掩码）推导网络地址、广播地址、可用主机范围
// 和主机数量，同时支持 IPv4（32 位）与 IPv6（128 位）。
//
// # 核心功能
//
//   - family.go: 地址族类型 [Family] 及 [DetectFamily] / [AddrFamily] 判断函数
//   - parse.go: [ParseAddress] / [ParsePrefix] 解析与校验（含掩码连续性校验）
//   - subnet.go: [Subnet] 不可变值类型与 [Derive] 构造函数
//   - report.go: [Describe] 生成完整结果记录 [Report]
//   - format.go: [FormatAddress] 规范文本渲染
//
// # 快速示例
//
// 完整计算流程为 解析 → 推导 → 描述 的单向管线：
//
//	addr, _ := xsubnet.ParseAddress("192.168.1.10", xsubnet.F0)
//	fam := xsubnet.AddrFamily(addr)
//	prefix, _ := xsubnet.ParsePrefix("/24", fam)
//	s, _ := xsubnet.Derive(addr, prefix, fam)
//	r := xsubnet.Describe(s)
//	fmt.Println(r.Network)     // 192.168.1.0
//	fmt.Println(r.LastUsable)  // 192.168.1.254
//
// # 设计决策
//
//   - 直接使用 [netip.Addr] 值类型，零分配比较，天然覆盖 32/128 位宽差异
//   - 使用 [netipx.RangeOfPrefix] 推导子网边界，无需自研位运算集合逻辑
//   - 主机数量使用 [math/big]：IPv6 /0 的地址总数为 2^128，超出原生整数宽度
//   - 掩码连续性校验拒绝非法掩码如 "255.0.255.0"
//   - 所有可失败函数返回 error，预定义错误变量支持 errors.Is
//   - [Subnet] 不可变，[Describe] 为纯函数，可从任意多个 goroutine 并发调用
//
// # 边界策略
//
// 可用主机范围遵循网络工程惯例：
//
//   - 常规子网（前缀 ≤ 位宽−2）: 扣除网络地址与广播地址，可用 = 总数 − 2
//   - 点对点（/31、/127，RFC 3021）: 两端地址均可用，不保留广播地址
//   - 主机路由（/32、/128）: 单一地址即网络、广播与唯一可用主机
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xsubnet.ParsePrefix("255.0.255.0", xsubnet.V4)
//	if errors.Is(err, xsubnet.ErrInvalidMask) {
//	    // 非连续掩码
//	}
//
// 错误分类：
//   - [ErrInvalidAddress]: 地址文本畸形（段数错误、分量越界、多个 "::"）
//   - [ErrInvalidMask]: 掩码非连续或前缀/掩码文本无法解析
//   - [ErrPrefixOutOfRange]: 前缀长度为负或超出地址族位宽
//   - [ErrFamilyMismatch]: 地址与前缀/掩码形式的地址族不一致
//
// 所有失败均在推导子网之前发生：无效输入不会产生部分结果。
//
// # IPv6 zone ID 处理
//
// [ParseAddress] 拒绝包含 IPv6 zone ID 的地址（如 "fe80::1%eth0"），
// 返回 [ErrInvalidAddress]。子网算术对 zone 无感知，静默丢弃会让
// 输出看似合法却语义不明。
//
// # IPv4-mapped IPv6 地址处理
//
// IPv4-mapped IPv6 地址（如 "::ffff:192.168.1.1"）统一归一化为纯 IPv4：
// 映射形式的语义版本是 V4，保持输出地址族一致。
package xsubnet

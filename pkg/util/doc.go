// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xsubnet: 子网属性计算，基于 net/netip + go4.org/netipx（解析、推导、描述、格式化）
//   - xjson: JSON 序列化工具，Pretty/Compact 格式化输出
//
// 设计原则：
//   - 纯函数与不可变值类型，无共享可变状态
//   - 所有可失败函数返回 error，预定义错误变量支持 errors.Is
package util

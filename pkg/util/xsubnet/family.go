package xsubnet

import (
	"net/netip"
	"strings"
)

// Family 表示 IP 地址族。
type Family uint8

const (
	// F0 表示无效或未知的地址族。
	F0 Family = 0
	// V4 表示 IPv4（32 位）。
	V4 Family = 4
	// V6 表示 IPv6（128 位）。
	V6 Family = 6
)

// Bits 返回地址族的位宽（IPv4 为 32，IPv6 为 128）。
// 无效地址族返回 0。
func (f Family) Bits() int {
	switch f {
	case V4:
		return 32
	case V6:
		return 128
	default:
		return 0
	}
}

// String 返回地址族的字符串表示。
func (f Family) String() string {
	switch f {
	case V4:
		return "IPv4"
	case V6:
		return "IPv6"
	default:
		return "unknown"
	}
}

// AddrFamily 返回 addr 的地址族（V4 或 V6）。
// IPv4-mapped IPv6 地址视为 V4。
// 无效地址返回 F0。
func AddrFamily(addr netip.Addr) Family {
	if addr.Is4() || addr.Is4In6() {
		return V4
	}
	if addr.IsValid() {
		return V6
	}
	return F0
}

// DetectFamily 从地址字符串的语法特征推断地址族：
// 含 ':' 视为 IPv6（IPv6 语法自身允许内嵌点分段），
// 否则含 '.' 视为 IPv4。
// 两者皆无返回 F0（不做完整语法校验，解析由 [ParseAddress] 负责）。
func DetectFamily(s string) Family {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ":") {
		return V6
	}
	if strings.Contains(s, ".") {
		return V4
	}
	return F0
}

package xsubnet

import "net/netip"

// FormatAddress 将地址渲染为规范文本。
// IPv4 为点分十进制；IPv6 遵循 RFC 5952：小写十六进制，
// 压缩单个最长的连续零段（长度 ≥ 2，并列时取最左）。
// 无效地址返回空字符串。
//
// 与 [ParseAddress] 构成往返：FormatAddress 的输出总能被重新解析为同一地址。
func FormatAddress(addr netip.Addr) string {
	if !addr.IsValid() {
		return ""
	}
	if addr.Is4In6() {
		addr = addr.Unmap()
	}
	return addr.String()
}

package xsubnet

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"net/netip"
	"strconv"
	"strings"
)

// ParseAddress 解析 IP 地址字符串。
// fam 为 V4 或 V6 时强制要求对应地址族，F0 表示按文本自动识别。
//
// 校验由 [netip.ParseAddr] 完成：IPv4 要求 4 个 0–255 的点分八位段，
// IPv6 要求各段为 0–0xFFFF 的十六进制且 "::" 缩写至多出现一次。
// IPv4-mapped IPv6 地址（如 "::ffff:192.168.1.1"）统一归一化为纯 IPv4。
//
// 设计决策: 拒绝包含 IPv6 zone ID 的输入（如 fe80::1%eth0）。
// 子网计算对 zone 无感知，静默丢弃会让输出看似合法却语义不明。
func ParseAddress(text string, fam Family) (netip.Addr, error) {
	s := strings.TrimSpace(text)
	if strings.Contains(s, "%") {
		return netip.Addr{}, fmt.Errorf("%w: IPv6 zone ID is not supported: %s", ErrInvalidAddress, s)
	}

	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if addr.Is4In6() {
		addr = addr.Unmap()
	}

	if fam != F0 && AddrFamily(addr) != fam {
		return netip.Addr{}, fmt.Errorf("%w: %s is not an %s address", ErrFamilyMismatch, s, fam)
	}
	return addr, nil
}

// ParsePrefix 解析前缀长度字符串。支持 3 种形式：
//   - 裸整数: "24"
//   - CIDR 斜线形式: "/24"
//   - 点分十进制掩码: "255.255.255.0"（仅 IPv4）
//
// fam 必须为 V4 或 V6，决定前缀长度的上界（32 或 128）。
//
// 错误分类：
//   - 非连续掩码（如 "255.0.255.0"）或无法解析的掩码/前缀文本 → [ErrInvalidMask]
//   - 整数超出 [0, fam.Bits()] → [ErrPrefixOutOfRange]
//   - IPv6 给出点分掩码，或 fam 无效 → [ErrFamilyMismatch]
func ParsePrefix(text string, fam Family) (int, error) {
	if fam != V4 && fam != V6 {
		return 0, fmt.Errorf("%w: prefix requires a concrete address family", ErrFamilyMismatch)
	}

	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "/")
	if s == "" {
		return 0, fmt.Errorf("%w: empty prefix", ErrInvalidMask)
	}

	if strings.Contains(s, ".") {
		if fam != V4 {
			return 0, fmt.Errorf("%w: dotted-decimal mask is IPv4-only", ErrFamilyMismatch)
		}
		return parseDottedMask(s)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a prefix length or mask", ErrInvalidMask, text)
	}
	if n < 0 || n > fam.Bits() {
		return 0, fmt.Errorf("%w: /%d exceeds %s width of %d bits", ErrPrefixOutOfRange, n, fam, fam.Bits())
	}
	return n, nil
}

// parseDottedMask 解析点分十进制掩码并校验连续性。
// 合法掩码为前缀全 1 后缀全 0（如 255.255.255.0 = /24）。
func parseDottedMask(s string) (int, error) {
	mask, err := netip.ParseAddr(s)
	if err != nil || !mask.Is4() {
		return 0, fmt.Errorf("%w: invalid dotted mask %q", ErrInvalidMask, s)
	}

	b := mask.As4()
	maskUint := binary.BigEndian.Uint32(b[:])

	// 连续性校验：取反后必须形如 000...0111...1。
	inverted := ^maskUint
	if inverted&(inverted+1) != 0 {
		return 0, fmt.Errorf("%w: non-contiguous mask: %s", ErrInvalidMask, s)
	}
	return bits.OnesCount32(maskUint), nil
}

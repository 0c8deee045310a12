package xsubnet

import "errors"

var (
	// ErrInvalidAddress 表示无效的 IP 地址字符串。
	ErrInvalidAddress = errors.New("xsubnet: invalid IP address")

	// ErrInvalidMask 表示无效的掩码或前缀字符串（含非连续掩码）。
	ErrInvalidMask = errors.New("xsubnet: invalid subnet mask")

	// ErrPrefixOutOfRange 表示前缀长度为负或超出地址族位宽。
	ErrPrefixOutOfRange = errors.New("xsubnet: prefix length out of range")

	// ErrFamilyMismatch 表示地址与前缀/掩码的地址族不一致。
	ErrFamilyMismatch = errors.New("xsubnet: address family mismatch")
)

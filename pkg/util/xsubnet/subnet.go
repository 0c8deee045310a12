package xsubnet

import (
	"fmt"
	"math/big"
	"net/netip"

	"go4.org/netipx"
)

// Subnet 表示一个不可变的子网：掩码对齐的网络地址 + 前缀长度 + 地址族。
// 所有派生量（广播地址、可用主机范围、主机数量）按需计算，无内部状态。
// 零值无效，必须经 [Derive] 构造。
type Subnet struct {
	prefix netip.Prefix // 始终为 Masked() 后的规范形式
	family Family
}

// Derive 由地址、前缀长度和地址族构造子网。
// 地址中的主机位被清零（非严格模式，任意子网内地址均可作为输入）。
//
// 输入已经过 [ParseAddress] / [ParsePrefix] 校验时不会失败；
// 直接调用时仍校验 API 误用：
//   - addr 与 fam 地址族不一致 → [ErrFamilyMismatch]
//   - prefix 超出 [0, fam.Bits()] → [ErrPrefixOutOfRange]
func Derive(addr netip.Addr, prefix int, fam Family) (Subnet, error) {
	af := AddrFamily(addr)
	if af == F0 || (fam != F0 && af != fam) {
		return Subnet{}, fmt.Errorf("%w: %s is not an %s address", ErrFamilyMismatch, addr, fam)
	}
	if addr.Is4In6() {
		addr = addr.Unmap()
	}
	if prefix < 0 || prefix > af.Bits() {
		return Subnet{}, fmt.Errorf("%w: /%d exceeds %s width of %d bits", ErrPrefixOutOfRange, prefix, af, af.Bits())
	}
	p, err := addr.Prefix(prefix)
	if err != nil {
		return Subnet{}, fmt.Errorf("%w: %v", ErrPrefixOutOfRange, err)
	}
	return Subnet{prefix: p, family: af}, nil
}

// Family 返回子网的地址族。
func (s Subnet) Family() Family { return s.family }

// PrefixLen 返回前缀长度。
func (s Subnet) PrefixLen() int { return s.prefix.Bits() }

// Network 返回网络地址（主机位全 0）。
func (s Subnet) Network() netip.Addr { return s.prefix.Addr() }

// Broadcast 返回 IPv4 广播地址（主机位全 1）。
// IPv6 无广播语义，返回的是子网内最后一个地址。
func (s Subnet) Broadcast() netip.Addr { return s.Range().To() }

// Range 返回覆盖整个子网的地址范围 [network, broadcast]。
func (s Subnet) Range() netipx.IPRange { return netipx.RangeOfPrefix(s.prefix) }

// Mask 返回子网掩码（前 prefix 位为 1，其余为 0），与子网同地址族。
func (s Subnet) Mask() netip.Addr {
	p := s.prefix.Bits()
	if s.family == V4 {
		var b [4]byte
		fillMask(b[:], p)
		return netip.AddrFrom4(b)
	}
	var b [16]byte
	fillMask(b[:], p)
	return netip.AddrFrom16(b)
}

// fillMask 将 b 的前 p 位置 1。
func fillMask(b []byte, p int) {
	for i := range b {
		switch {
		case p >= 8:
			b[i] = 0xFF
			p -= 8
		case p > 0:
			b[i] = 0xFF << (8 - p)
			p = 0
		}
	}
}

// HostCount 返回子网包含的地址总数 2^(位宽−前缀)。
// IPv6 下可达 2^128，必须使用 big.Int（见 [Subnet.HostCountUint64]）。
func (s Subnet) HostCount() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(s.family.Bits()-s.prefix.Bits()))
}

// HostCountUint64 返回地址总数的 uint64 快速路径。
// 数量超出 uint64（IPv6 前缀 < 64）时返回 (0, false)。
func (s Subnet) HostCountUint64() (uint64, bool) {
	hostBits := s.family.Bits() - s.prefix.Bits()
	if hostBits >= 64 {
		return 0, false
	}
	return 1 << hostBits, true
}

// UsableCount 返回可分配给主机的地址数量：
//   - 前缀 = 位宽（主机路由）: 1
//   - 前缀 = 位宽−1（点对点，RFC 3021）: 2，两端均可用，不保留广播地址
//   - 其余: 总数 − 2（扣除网络地址与广播地址）
func (s Subnet) UsableCount() *big.Int {
	hostBits := s.family.Bits() - s.prefix.Bits()
	switch hostBits {
	case 0:
		return big.NewInt(1)
	case 1:
		return big.NewInt(2)
	}
	total := s.HostCount()
	return total.Sub(total, big.NewInt(2))
}

// FirstUsable 返回第一个可用主机地址。
// 常规子网为 network+1；/31 与 /32（及 IPv6 /127、/128）为网络地址本身。
func (s Subnet) FirstUsable() netip.Addr {
	if s.family.Bits()-s.prefix.Bits() <= 1 {
		return s.Network()
	}
	return s.Network().Next()
}

// LastUsable 返回最后一个可用主机地址。
// 常规子网为 broadcast−1；/31 与 /32（及 IPv6 /127、/128）为最后一个地址本身。
func (s Subnet) LastUsable() netip.Addr {
	if s.family.Bits()-s.prefix.Bits() <= 1 {
		return s.Broadcast()
	}
	return s.Broadcast().Prev()
}

// Contains 报告 addr 是否落在子网内。
func (s Subnet) Contains(addr netip.Addr) bool {
	if addr.Is4In6() {
		addr = addr.Unmap()
	}
	return s.prefix.Contains(addr)
}

// String 返回 CIDR 表示（如 "192.168.1.0/24"）。
func (s Subnet) String() string { return s.prefix.String() }

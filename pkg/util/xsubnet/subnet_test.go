package xsubnet

import (
	"math/big"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name        string
		addr        string
		prefix      int
		wantCIDR    string
		wantNetwork string
		wantLast    string
		wantMask    string
	}{
		{
			name:        "v4 /24 host bits cleared",
			addr:        "192.168.1.10",
			prefix:      24,
			wantCIDR:    "192.168.1.0/24",
			wantNetwork: "192.168.1.0",
			wantLast:    "192.168.1.255",
			wantMask:    "255.255.255.0",
		},
		{
			name:        "v4 /30",
			addr:        "10.0.0.5",
			prefix:      30,
			wantCIDR:    "10.0.0.4/30",
			wantNetwork: "10.0.0.4",
			wantLast:    "10.0.0.7",
			wantMask:    "255.255.255.252",
		},
		{
			name:        "v4 /0",
			addr:        "8.8.8.8",
			prefix:      0,
			wantCIDR:    "0.0.0.0/0",
			wantNetwork: "0.0.0.0",
			wantLast:    "255.255.255.255",
			wantMask:    "0.0.0.0",
		},
		{
			name:        "v6 /64",
			addr:        "2001:db8::1",
			prefix:      64,
			wantCIDR:    "2001:db8::/64",
			wantNetwork: "2001:db8::",
			wantLast:    "2001:db8::ffff:ffff:ffff:ffff",
			wantMask:    "ffff:ffff:ffff:ffff::",
		},
		{
			name:        "v6 /0",
			addr:        "2001:db8::1",
			prefix:      0,
			wantCIDR:    "::/0",
			wantNetwork: "::",
			wantLast:    "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff",
			wantMask:    "::",
		},
		{
			name:        "v6 non-octet-aligned /61",
			addr:        "2001:db8::",
			prefix:      61,
			wantCIDR:    "2001:db8::/61",
			wantNetwork: "2001:db8::",
			wantLast:    "2001:db8:0:7:ffff:ffff:ffff:ffff",
			wantMask:    "ffff:ffff:ffff:fff8::",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := netip.MustParseAddr(tt.addr)
			s, err := Derive(addr, tt.prefix, AddrFamily(addr))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCIDR, s.String())
			assert.Equal(t, tt.wantNetwork, s.Network().String())
			assert.Equal(t, tt.wantLast, s.Broadcast().String())
			assert.Equal(t, tt.wantMask, s.Mask().String())
		})
	}
}

func TestDeriveErrors(t *testing.T) {
	v4 := netip.MustParseAddr("192.168.1.1")
	v6 := netip.MustParseAddr("2001:db8::1")

	_, err := Derive(v4, 33, V4)
	assert.ErrorIs(t, err, ErrPrefixOutOfRange)

	_, err = Derive(v4, -1, V4)
	assert.ErrorIs(t, err, ErrPrefixOutOfRange)

	_, err = Derive(v4, 24, V6)
	assert.ErrorIs(t, err, ErrFamilyMismatch)

	_, err = Derive(v6, 64, V4)
	assert.ErrorIs(t, err, ErrFamilyMismatch)

	_, err = Derive(netip.Addr{}, 0, V4)
	assert.ErrorIs(t, err, ErrFamilyMismatch)
}

// 网络地址必须与掩码对齐：network AND NOT mask == 0。
func TestNetworkMaskAligned(t *testing.T) {
	cases := []struct {
		addr   string
		prefix int
	}{
		{"192.168.1.10", 24},
		{"10.0.0.5", 30},
		{"172.16.255.254", 12},
		{"255.255.255.255", 1},
		{"2001:db8::1", 64},
		{"2001:db8:ffff::1", 37},
		{"::1", 128},
	}

	for _, c := range cases {
		addr := netip.MustParseAddr(c.addr)
		s, err := Derive(addr, c.prefix, AddrFamily(addr))
		require.NoError(t, err)

		network := s.Network().As16()
		mask := s.Mask().As16()
		for i := range network {
			assert.Zerof(t, network[i]&^mask[i],
				"%s/%d: network byte %d has host bits set", c.addr, c.prefix, i)
		}
	}
}

func TestHostCounts(t *testing.T) {
	tests := []struct {
		name       string
		cidr       string
		wantTotal  string
		wantUsable string
	}{
		{"v4 /24", "192.168.1.0/24", "256", "254"},
		{"v4 /30", "10.0.0.4/30", "4", "2"},
		{"v4 /31 point-to-point", "10.0.0.0/31", "2", "2"},
		{"v4 /32 host route", "10.0.0.1/32", "1", "1"},
		{"v4 /0", "0.0.0.0/0", "4294967296", "4294967294"},
		{"v6 /64", "2001:db8::/64", "18446744073709551616", "18446744073709551614"},
		{"v6 /127", "2001:db8::/127", "2", "2"},
		{"v6 /128", "2001:db8::1/128", "1", "1"},
		{"v6 /0", "::/0",
			"340282366920938463463374607431768211456",
			"340282366920938463463374607431768211454"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := netip.MustParsePrefix(tt.cidr)
			s, err := Derive(p.Addr(), p.Bits(), AddrFamily(p.Addr()))
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, s.HostCount().String())
			assert.Equal(t, tt.wantUsable, s.UsableCount().String())
		})
	}
}

func TestHostCountUint64(t *testing.T) {
	s, err := Derive(netip.MustParseAddr("192.168.1.0"), 24, V4)
	require.NoError(t, err)
	n, ok := s.HostCountUint64()
	require.True(t, ok)
	assert.Equal(t, uint64(256), n)

	// IPv6 /63 有 2^65 个地址，超出 uint64
	s, err = Derive(netip.MustParseAddr("2001:db8::"), 63, V6)
	require.NoError(t, err)
	_, ok = s.HostCountUint64()
	assert.False(t, ok)

	// /64 恰为 2^64，同样超出
	s, err = Derive(netip.MustParseAddr("2001:db8::"), 64, V6)
	require.NoError(t, err)
	_, ok = s.HostCountUint64()
	assert.False(t, ok)
}

// 常规子网（前缀 ≤ 位宽−2）的恒等式：
// usable + 2 == total，first == network+1，last == broadcast−1。
func TestUsableRangeIdentities(t *testing.T) {
	cases := []string{
		"192.168.1.0/24",
		"10.0.0.4/30",
		"172.16.0.0/12",
		"0.0.0.0/0",
		"2001:db8::/64",
		"2001:db8::/126",
		"::/0",
	}

	for _, cidr := range cases {
		p := netip.MustParsePrefix(cidr)
		s, err := Derive(p.Addr(), p.Bits(), AddrFamily(p.Addr()))
		require.NoError(t, err)

		sum := new(big.Int).Add(s.UsableCount(), big.NewInt(2))
		assert.Zerof(t, sum.Cmp(s.HostCount()), "%s: usable+2 != total", cidr)
		assert.Equalf(t, s.Network().Next(), s.FirstUsable(), "%s: first != network+1", cidr)
		assert.Equalf(t, s.Broadcast().Prev(), s.LastUsable(), "%s: last != broadcast-1", cidr)
	}
}

func TestPointToPointBothEndpointsUsable(t *testing.T) {
	for _, cidr := range []string{"10.0.0.0/31", "2001:db8::/127"} {
		p := netip.MustParsePrefix(cidr)
		s, err := Derive(p.Addr(), p.Bits(), AddrFamily(p.Addr()))
		require.NoError(t, err)

		assert.Equal(t, s.Network(), s.FirstUsable(), cidr)
		assert.Equal(t, s.Broadcast(), s.LastUsable(), cidr)
		assert.Equal(t, "2", s.UsableCount().String(), cidr)
	}
}

func TestHostRouteSingleAddress(t *testing.T) {
	for _, cidr := range []string{"10.0.0.1/32", "2001:db8::1/128"} {
		p := netip.MustParsePrefix(cidr)
		s, err := Derive(p.Addr(), p.Bits(), AddrFamily(p.Addr()))
		require.NoError(t, err)

		assert.Equal(t, p.Addr(), s.Network(), cidr)
		assert.Equal(t, p.Addr(), s.Broadcast(), cidr)
		assert.Equal(t, p.Addr(), s.FirstUsable(), cidr)
		assert.Equal(t, p.Addr(), s.LastUsable(), cidr)
		assert.Equal(t, "1", s.UsableCount().String(), cidr)
	}
}

func TestSubnetRange(t *testing.T) {
	s, err := Derive(netip.MustParseAddr("192.168.1.10"), 24, V4)
	require.NoError(t, err)

	r := s.Range()
	assert.Equal(t, "192.168.1.0", r.From().String())
	assert.Equal(t, "192.168.1.255", r.To().String())
}

func TestSubnetContains(t *testing.T) {
	s, err := Derive(netip.MustParseAddr("192.168.1.0"), 24, V4)
	require.NoError(t, err)

	assert.True(t, s.Contains(netip.MustParseAddr("192.168.1.0")))
	assert.True(t, s.Contains(netip.MustParseAddr("192.168.1.255")))
	assert.True(t, s.Contains(netip.MustParseAddr("::ffff:192.168.1.7")))
	assert.False(t, s.Contains(netip.MustParseAddr("192.168.2.0")))
	assert.False(t, s.Contains(netip.MustParseAddr("2001:db8::1")))
}

// 地址空间边界：最高地址所在子网的派生不得回绕。
func TestAddressSpaceBoundaries(t *testing.T) {
	s, err := Derive(netip.MustParseAddr("255.255.255.250"), 29, V4)
	require.NoError(t, err)
	assert.Equal(t, "255.255.255.248", s.Network().String())
	assert.Equal(t, "255.255.255.255", s.Broadcast().String())
	assert.Equal(t, "255.255.255.254", s.LastUsable().String())

	s, err = Derive(netip.MustParseAddr("ffff:ffff:ffff:ffff:ffff:ffff:ffff:fffe"), 127, V6)
	require.NoError(t, err)
	assert.Equal(t, "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff", s.LastUsable().String())
}

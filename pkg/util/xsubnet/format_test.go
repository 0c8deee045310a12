package xsubnet

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAddress(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"v4", "192.168.1.1", "192.168.1.1"},
		{"v6 canonical", "2001:db8::1", "2001:db8::1"},
		// RFC 5952: 压缩单个最长的零段连续段
		{"v6 longest zero run", "2001:0:0:1:0:0:0:1", "2001:0:0:1::1"},
		// 并列时压缩最左的
		{"v6 leftmost tie", "2001:db8:0:0:1:0:0:1", "2001:db8::1:0:0:1"},
		// 单个零段不压缩
		{"v6 single zero group", "2001:db8:0:1:1:1:1:1", "2001:db8:0:1:1:1:1:1"},
		{"v6 all zero", "::", "::"},
		{"v6 uppercase folded", "2001:DB8::A", "2001:db8::a"},
		{"v4-mapped unmapped", "::ffff:192.168.1.1", "192.168.1.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := netip.MustParseAddr(tt.input)
			assert.Equal(t, tt.want, FormatAddress(addr))
		})
	}
}

func TestFormatAddressInvalid(t *testing.T) {
	assert.Equal(t, "", FormatAddress(netip.Addr{}))
}

// 往返性质：ParseAddress(FormatAddress(x)) == x。
func TestFormatParseRoundTrip(t *testing.T) {
	cases := []string{
		"0.0.0.0",
		"10.0.0.1",
		"192.168.1.255",
		"255.255.255.255",
		"::",
		"::1",
		"2001:db8::1",
		"fe80::dead:beef",
		"ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff",
	}

	for _, c := range cases {
		addr := netip.MustParseAddr(c)
		restored, err := ParseAddress(FormatAddress(addr), F0)
		require.NoError(t, err, c)
		assert.Equal(t, addr, restored, c)
	}
}

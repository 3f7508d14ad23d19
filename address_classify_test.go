package netaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPAddress_ClassificationPredicates(t *testing.T) {
	tests := []struct {
		addr  string
		check func(IPAddress) bool
	}{
		{"0.0.0.0", IPAddress.IsUnspecified},
		{"::", IPAddress.IsUnspecified},
		{"127.0.0.1", IPAddress.IsLoopback},
		{"::1", IPAddress.IsLoopback},
		{"10.1.2.3", IPAddress.IsPrivate},
		{"192.168.1.1", IPAddress.IsPrivate},
		{"fc00::1", IPAddress.IsPrivate},
		{"169.254.1.1", IPAddress.IsLinkLocalUnicast},
		{"fe80::1", IPAddress.IsLinkLocalUnicast},
		{"224.0.0.1", IPAddress.IsLinkLocalMulticast},
		{"ff02::1", IPAddress.IsLinkLocalMulticast},
		{"224.0.0.5", IPAddress.IsMulticast},
		{"ff00::1", IPAddress.IsMulticast},
		{"240.0.0.1", IPAddress.IsReserved},
		{"192.0.2.1", IPAddress.IsDocumentation},
		{"2001:db8::1", IPAddress.IsDocumentation},
		{"100.64.0.1", IPAddress.IsSharedAddress},
		{"198.18.0.1", IPAddress.IsBenchmark},
		{"2001:2::1", IPAddress.IsBenchmark},
		{"ff01::1", IPAddress.IsInterfaceLocalMulticast},
	}
	for _, tt := range tests {
		a := MustParseIPAddress(tt.addr)
		assert.True(t, tt.check(a), "expected %s to satisfy predicate", tt.addr)
	}
}

func TestIPAddress_IsGlobalUnicastAndRoutable(t *testing.T) {
	pub := MustParseIPAddress("8.8.8.8")
	assert.True(t, pub.IsGlobalUnicast())
	assert.True(t, pub.IsRoutable())

	broadcast := MustParseIPAddress("255.255.255.255")
	assert.False(t, broadcast.IsRoutable())

	loop := MustParseIPAddress("127.0.0.1")
	assert.False(t, loop.IsGlobalUnicast())
	assert.False(t, loop.IsRoutable())
}

func TestIPAddress_ReverseDNSName(t *testing.T) {
	v4 := MustParseIPAddress("192.0.2.1")
	assert.Equal(t, "1.2.0.192.in-addr.arpa", v4.ReverseDNSName())

	v6 := MustParseIPAddress("2001:db8::1")
	got := v6.ReverseDNSName()
	assert.Contains(t, got, "ip6.arpa")
	assert.Equal(t, 32*2+len("ip6.arpa"), len(got))
}

func TestIPAddress_Classify(t *testing.T) {
	a := MustParseIPAddress("127.0.0.1")
	c := a.Classify()
	assert.True(t, c.IsLoopback)
	assert.Equal(t, "loopback", c.String())
}

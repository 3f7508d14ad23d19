package netaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIPNetwork_Basic(t *testing.T) {
	n, err := ParseIPNetwork("10.0.0.1/24")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1/24", n.String())
	assert.Equal(t, "10.0.0.0", n.Network().String())
	assert.Equal(t, "10.0.0.255", n.Broadcast().String())
	assert.Equal(t, "255.255.255.0", n.Netmask().String())
	assert.Equal(t, "0.0.0.255", n.Hostmask().String())
}

func TestParseIPNetwork_VerboseAndMask(t *testing.T) {
	n, err := ParseIPNetwork("10/8")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.0/8", n.String())

	n, err = ParseIPNetwork("192.168.1.0/255.255.255.0")
	require.NoError(t, err)
	assert.Equal(t, 24, n.PrefixLen())

	n, err = ParseIPNetwork("192.168.1.0/0.0.0.255")
	require.NoError(t, err)
	assert.Equal(t, 24, n.PrefixLen())

	_, err = ParseIPNetwork("192.168.1.0/255.0.255.0")
	assert.Error(t, err)
}

func TestParseIPNetwork_NoSlashDefaultsToHost(t *testing.T) {
	n, err := ParseIPNetwork("10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 32, n.PrefixLen())

	n6, err := ParseIPNetwork("::1")
	require.NoError(t, err)
	assert.Equal(t, 128, n6.PrefixLen())
}

func TestNewIPNetwork_NOHOST(t *testing.T) {
	addr := MustParseIPAddress("10.0.0.5")
	n, err := NewIPNetwork(addr, 24, NOHOST)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.0/24", n.String())
}

func TestIPNetwork_ContainsAndSize(t *testing.T) {
	n := MustParseIPNetwork("192.168.0.0/24")
	assert.True(t, n.Contains(MustParseIPAddress("192.168.0.1")))
	assert.False(t, n.Contains(MustParseIPAddress("192.168.1.1")))
	assert.Equal(t, "256", n.Size().String())

	sub := MustParseIPNetwork("192.168.0.0/25")
	assert.True(t, n.ContainsNetwork(sub))
	assert.False(t, sub.ContainsNetwork(n))
}

func TestIPNetwork_Subnet(t *testing.T) {
	n := MustParseIPNetwork("10.0.0.0/24")
	subs, err := n.Subnet(26)
	require.NoError(t, err)
	require.Len(t, subs, 4)
	assert.Equal(t, "10.0.0.0/26", subs[0].String())
	assert.Equal(t, "10.0.0.192/26", subs[3].String())

	_, err = n.Subnet(16)
	assert.Error(t, err)
}

func TestIPNetwork_Supernet(t *testing.T) {
	n := MustParseIPNetwork("10.0.0.0/24")
	supers := n.Supernet(2, 2)
	require.Len(t, supers, 2)
	assert.Equal(t, "10.0.0.0/23", supers[0].String())
	assert.Equal(t, "10.0.0.0/22", supers[1].String())
}

func TestIPNetwork_AddressesAndHosts(t *testing.T) {
	n := MustParseIPNetwork("10.0.0.0/30")
	var all []string
	for a := range n.Addresses() {
		all = append(all, a.String())
	}
	assert.Equal(t, []string{"10.0.0.0", "10.0.0.1", "10.0.0.2", "10.0.0.3"}, all)

	var hosts []string
	for a := range n.Hosts() {
		hosts = append(hosts, a.String())
	}
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, hosts)
}

func TestIPNetwork_HostsIPv6(t *testing.T) {
	n := MustParseIPNetwork("2001:db8::/126")
	var hosts []string
	for a := range n.Hosts() {
		hosts = append(hosts, a.String())
	}
	assert.Equal(t, 3, len(hosts), "IPv6 omits only the all-zeros address")
}

func TestIPNetwork_EarlyStopIteration(t *testing.T) {
	n := MustParseIPNetwork("10.0.0.0/24")
	count := 0
	for range n.Addresses() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

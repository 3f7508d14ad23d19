package netaddr

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPNetwork_NetipPrefixRoundTrip(t *testing.T) {
	n := MustParseIPNetwork("10.0.0.0/24")
	p, err := n.ToNetipPrefix()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.0/24", p.String())

	back, err := NetworkFromNetipPrefix(p)
	require.NoError(t, err)
	assert.Equal(t, n.String(), back.String())
}

func TestNetworkFromNetipPrefix_Invalid(t *testing.T) {
	_, err := NetworkFromNetipPrefix(netip.Prefix{})
	assert.Error(t, err)
}

func TestIPSet_NetipPrefixesRoundTrip(t *testing.T) {
	s := NewIPSet(MustParseIPNetwork("10.0.0.0/25"), MustParseIPNetwork("10.0.0.128/25"))
	prefixes, err := s.ToNetipPrefixes()
	require.NoError(t, err)
	require.Len(t, prefixes, 1)

	back, err := SetFromNetipPrefixes(prefixes)
	require.NoError(t, err)
	assert.True(t, s.Equal(back))
}

func TestIPRange_NetipRangeRoundTrip(t *testing.T) {
	r := MustParseIPRangeHelper(t, "10.0.0.1-10.0.0.10")
	nr, err := r.ToNetipRange()
	require.NoError(t, err)

	back, err := RangeFromNetipRange(nr)
	require.NoError(t, err)
	assert.Equal(t, r.String(), back.String())
}

package netaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEUI_FamilyByDigitCount(t *testing.T) {
	e48, err := ParseEUI("00-1B-77-AA-BB-CC")
	require.NoError(t, err)
	assert.Equal(t, EUI48, e48.Family())

	e64, err := ParseEUI("00-1B-77-FF-FE-AA-BB-CC")
	require.NoError(t, err)
	assert.Equal(t, EUI64, e64.Family())

	_, err = ParseEUI("00-1B-77")
	assert.Error(t, err)
}

func TestEUI_StringCanonical(t *testing.T) {
	e := NewEUI48([6]byte{0x00, 0x1b, 0x77, 0xaa, 0xbb, 0xcc})
	assert.Equal(t, "00-1B-77-AA-BB-CC", e.String())
}

func TestEUI_CompareOrdering(t *testing.T) {
	e48 := NewEUI48([6]byte{})
	e64 := NewEUI64([8]byte{})
	assert.True(t, e48.Less(e64))

	a := NewEUI48([6]byte{0, 0, 0, 0, 0, 1})
	b := NewEUI48([6]byte{0, 0, 0, 0, 0, 2})
	assert.True(t, a.Less(b))
	assert.True(t, a.Equal(a))
}

func TestEUI_NextPrev(t *testing.T) {
	e := NewEUI48([6]byte{0, 0, 0, 0, 0, 0})
	next, err := e.Next()
	require.NoError(t, err)
	assert.Equal(t, "00-00-00-00-00-01", next.String())

	_, err = e.Prev()
	assert.Error(t, err)

	broadcast := Broadcast48()
	_, err = broadcast.Next()
	assert.Error(t, err)
}

func TestEUI_SpecialAddresses(t *testing.T) {
	assert.True(t, Zero48().IsZero())
	assert.True(t, Broadcast48().IsBroadcast())
	assert.True(t, Zero48().IsSpecial())
	assert.False(t, Zero48().IsUsable())

	usable := NewEUI48([6]byte{0x00, 0x1b, 0x77, 1, 2, 3})
	assert.True(t, usable.IsUsable())
}

func TestEUI_UnicastMulticastBits(t *testing.T) {
	unicast := NewEUI48([6]byte{0x00, 0x1b, 0x77, 0, 0, 0})
	assert.True(t, unicast.IsUnicast())
	assert.False(t, unicast.IsMulticast())
	assert.True(t, unicast.IsUniversallyAdministered())

	local := NewEUI48([6]byte{0x02, 0, 0, 0, 0, 0})
	assert.True(t, local.IsLocallyAdministered())

	multi := NewEUI48([6]byte{0x01, 0, 0, 0, 0, 0})
	assert.True(t, multi.IsMulticast())
}

func TestEUI_OUIAndExtension(t *testing.T) {
	e := NewEUI48([6]byte{0x00, 0x1b, 0x77, 0xaa, 0xbb, 0xcc})
	assert.Equal(t, [3]byte{0x00, 0x1b, 0x77}, e.OUI())
	assert.Equal(t, []byte{0xaa, 0xbb, 0xcc}, e.ExtensionIdentifier())
}

func TestEUI_ModifiedEUI64(t *testing.T) {
	e := NewEUI48([6]byte{0x00, 0x1b, 0x77, 0xaa, 0xbb, 0xcc})
	id, err := e.ModifiedEUI64()
	require.NoError(t, err)
	assert.Equal(t, [8]byte{0x02, 0x1b, 0x77, 0xff, 0xfe, 0xaa, 0xbb, 0xcc}, id)
}

func TestEUI_IPv6LinkLocalRoundTrip(t *testing.T) {
	e := NewEUI48([6]byte{0x00, 0x1b, 0x77, 0xaa, 0xbb, 0xcc})
	ll, err := e.IPv6LinkLocal()
	require.NoError(t, err)
	assert.Contains(t, ll.String(), "fe80::")

	back, prefix, err := EUIFromIPv6(ll)
	require.NoError(t, err)
	assert.True(t, back.Equal(e))
	assert.Equal(t, "fe80::", prefix.String())
}

func TestEUI_IPv6_RejectsNonZeroLowBits(t *testing.T) {
	e := NewEUI48([6]byte{0x00, 0x1b, 0x77, 0xaa, 0xbb, 0xcc})
	_, err := e.IPv6(MustParseIPAddress("2001:db8::1"))
	assert.Error(t, err)
}

func TestEUIFromBytes(t *testing.T) {
	e, err := EUIFromBytes([]byte{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, EUI48, e.Family())

	_, err = EUIFromBytes([]byte{0, 1, 2})
	assert.Error(t, err)
}

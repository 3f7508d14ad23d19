package registry

import (
	"testing"

	"github.com/netaddr/netaddr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOUIFromEUI(t *testing.T) {
	e := netaddr.NewEUI48([6]byte{0x00, 0x1B, 0x77, 0x12, 0x34, 0x56})
	o, err := OUIFromEUI(e)
	require.NoError(t, err)
	reg, err := o.Registration(0)
	require.NoError(t, err)
	assert.Equal(t, "Intel Corporate", reg.Org)
}

func TestIsIAB(t *testing.T) {
	iabMAC := netaddr.NewEUI48([6]byte{0x00, 0x50, 0xC2, 0x00, 0x10, 0x00})
	assert.True(t, IsIAB(iabMAC))

	notIAB := netaddr.NewEUI48([6]byte{0x00, 0x1B, 0x77, 0x12, 0x34, 0x56})
	assert.False(t, IsIAB(notIAB))
}

func TestIABFromEUI(t *testing.T) {
	iabMAC := netaddr.NewEUI48([6]byte{0x00, 0x50, 0xC2, 0x00, 0x10, 0x05})
	a, err := IABFromEUI(iabMAC)
	require.NoError(t, err)
	assert.Equal(t, "EXAMPLE NETWORKS LTD", a.Org())
}

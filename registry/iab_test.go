package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIAB_BundledSample(t *testing.T) {
	a, err := ParseIAB("00-50-C2-00-00-00", false)
	require.NoError(t, err)
	assert.Equal(t, "ACME CORPORATION", a.Org())
	assert.Equal(t, []string{"1 MAIN STREET", "SPRINGFIELD", "UNITED STATES"}, a.Address())
}

func TestParseIAB_Modern(t *testing.T) {
	a, err := ParseIAB("40-D8-55-00-20-00", false)
	require.NoError(t, err)
	assert.Equal(t, "MODERN IAB HOLDER INC", a.Org())
}

func TestParseIAB_NotAnIABOUI(t *testing.T) {
	_, err := ParseIAB("00-1B-77-00-00-00", false)
	assert.Error(t, err)
}

func TestParseIAB_StrictRejectsNonZeroExtension(t *testing.T) {
	_, err := ParseIAB("00-50-C2-00-00-01", true)
	assert.Error(t, err)

	_, err = ParseIAB("00-50-C2-00-00-01", false)
	assert.NoError(t, err, "non-strict mode ignores the extension bits")
}

func TestIAB_NotRegistered(t *testing.T) {
	_, err := ParseIAB("00-50-C2-FF-F0-00", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotRegistered))
}

func TestIsIABPrefix(t *testing.T) {
	assert.True(t, IsIABPrefix(0x0050C2001000))
	assert.True(t, IsIABPrefix(0x40D855003000))
	assert.False(t, IsIABPrefix(0x001B77000000))
}

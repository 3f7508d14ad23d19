package netaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIPGlob(t *testing.T) {
	g, err := ParseIPGlob("192.168.1.*")
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.*", g.String())

	g, err = ParseIPGlob("192.168.1-10.*")
	require.NoError(t, err)
	assert.Equal(t, "192.168.1-10.*", g.String())

	_, err = ParseIPGlob("192.168.1")
	assert.Error(t, err)

	_, err = ParseIPGlob("192.168.1-10.5")
	assert.Error(t, err, "a range component must be followed only by stars")
}

func TestIPGlob_ToRangeAndBack(t *testing.T) {
	g := MustParseIPGlob("192.168.1.*")
	r := g.ToRange()
	assert.Equal(t, "192.168.1.0", r.First().String())
	assert.Equal(t, "192.168.1.255", r.Last().String())

	back, err := RangeToGlob(r)
	require.NoError(t, err)
	assert.Equal(t, g.String(), back.String())
}

func TestGlobToRange_FreeFunction(t *testing.T) {
	g := MustParseIPGlob("10.0.0.5")
	r := GlobToRange(g)
	assert.Equal(t, "10.0.0.5", r.First().String())
	assert.Equal(t, "10.0.0.5", r.Last().String())
}

func TestRangeToGlob_NotExpressible(t *testing.T) {
	r := MustParseIPRangeHelper(t, "10.0.0.1-10.0.1.3")
	_, err := RangeToGlob(r)
	assert.Error(t, err)
}

func TestValidGlob(t *testing.T) {
	assert.True(t, ValidGlob("1.2.3.*"))
	assert.False(t, ValidGlob("1.2.3.256"))
}

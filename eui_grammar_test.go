package netaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEUI48_AllGrammars(t *testing.T) {
	want := NewEUI48([6]byte{0x00, 0x1b, 0x77, 0xaa, 0xbb, 0xcc})
	inputs := []string{
		"00-1B-77-AA-BB-CC",
		"00:1b:77:aa:bb:cc",
		"001b.77aa.bbcc",
		"001B77AABBCC",
		"001b77:aabbcc",
	}
	for _, in := range inputs {
		got, err := ParseEUI48(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "input %q", in)
	}
}

func TestEUI_FormatDialects(t *testing.T) {
	e := NewEUI48([6]byte{0x00, 0x1b, 0x77, 0xaa, 0xbb, 0xcc})
	assert.Equal(t, "00-1B-77-AA-BB-CC", e.Format(DialectCanonical))
	assert.Equal(t, "0:1b:77:aa:bb:cc", e.Format(DialectMacUnix))
	assert.Equal(t, "00:1b:77:aa:bb:cc", e.Format(DialectMacUnixExpanded))
	assert.Equal(t, "001b.77aa.bbcc", e.Format(DialectMacCisco))
	assert.Equal(t, "001B77AABBCC", e.Format(DialectMacBare))
	assert.Equal(t, "001b77:aabbcc", e.Format(DialectMacPgsql))
}

func TestEUI_Words(t *testing.T) {
	e := NewEUI48([6]byte{0x00, 0x1b, 0x77, 0xaa, 0xbb, 0xcc})
	words := e.Words()
	require.Len(t, words, 6)
	assert.Equal(t, uint32(0x00), words[0])
	assert.Equal(t, uint32(0xcc), words[5])
}

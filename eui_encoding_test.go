package netaddr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEUI_TextAndJSONRoundTrip(t *testing.T) {
	e := NewEUI48([6]byte{0x00, 0x1b, 0x77, 0xaa, 0xbb, 0xcc})
	text, err := e.MarshalText()
	require.NoError(t, err)

	var out EUI
	require.NoError(t, out.UnmarshalText(text))
	assert.True(t, e.Equal(out))

	data, err := json.Marshal(e)
	require.NoError(t, err)
	var fromJSON EUI
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.True(t, e.Equal(fromJSON))
}

func TestEUI_BinaryRoundTrip(t *testing.T) {
	e := NewEUI64([8]byte{1, 2, 3, 4, 5, 6, 7, 8})
	b, err := e.MarshalBinary()
	require.NoError(t, err)

	var out EUI
	require.NoError(t, out.UnmarshalBinary(b))
	assert.True(t, e.Equal(out))
}

func TestEUI_SQLScan(t *testing.T) {
	e := NewEUI48([6]byte{0, 1, 2, 3, 4, 5})
	var scanned EUI
	require.NoError(t, scanned.Scan(e.String()))
	assert.True(t, scanned.Equal(e))

	require.NoError(t, scanned.Scan(e.Packed()))
	assert.True(t, scanned.Equal(e))

	require.NoError(t, scanned.Scan(nil))
	assert.False(t, scanned.IsValid())
}

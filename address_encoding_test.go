package netaddr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPAddress_TextRoundTrip(t *testing.T) {
	a := MustParseIPAddress("10.0.0.1")
	text, err := a.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", string(text))

	var b IPAddress
	require.NoError(t, b.UnmarshalText(text))
	assert.True(t, a.Equal(b))

	var empty IPAddress
	require.NoError(t, empty.UnmarshalText(nil))
	assert.False(t, empty.IsValid())
}

func TestIPAddress_JSONRoundTrip(t *testing.T) {
	a := MustParseIPAddress("2001:db8::1")
	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, `"2001:db8::1"`, string(data))

	var b IPAddress
	require.NoError(t, json.Unmarshal(data, &b))
	assert.True(t, a.Equal(b))

	var nullAddr IPAddress
	require.NoError(t, nullAddr.UnmarshalJSON([]byte("null")))
	assert.False(t, nullAddr.IsValid())
}

func TestIPAddress_BinaryRoundTrip(t *testing.T) {
	a := MustParseIPAddress("255.0.255.0")
	b, err := a.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{255, 0, 255, 0}, b)

	var out IPAddress
	require.NoError(t, out.UnmarshalBinary(b))
	assert.True(t, a.Equal(out))
}

func TestIPAddress_SQLValueAndScan(t *testing.T) {
	a := MustParseIPAddress("10.1.1.1")
	v, err := a.Value()
	require.NoError(t, err)
	assert.Equal(t, "10.1.1.1", v)

	var invalid IPAddress
	v, err = invalid.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	var scanned IPAddress
	require.NoError(t, scanned.Scan("10.1.1.1"))
	assert.True(t, scanned.Equal(a))

	require.NoError(t, scanned.Scan([]byte{10, 1, 1, 1}))
	assert.True(t, scanned.Equal(a))

	require.NoError(t, scanned.Scan(nil))
	assert.False(t, scanned.IsValid())

	err = scanned.Scan(42)
	assert.Error(t, err)
}

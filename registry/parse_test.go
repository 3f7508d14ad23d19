package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOUI = `
00-CA-FE   (hex)		ACME CORPORATION
00CAFE     (base 16)		ACME CORPORATION
				1 MAIN STREET
				SPRINGFIELD
				UNITED STATES

not-a-hex-line   (hex)		BROKEN RECORD
NOTHEX     (base 16)		BROKEN RECORD

00-1B-77   (hex)		Intel Corporate
001B77     (base 16)		Intel Corporate
				2200 MISSION COLLEGE BLVD.
`

func TestParseOUIText(t *testing.T) {
	index, warnings := parseOUIText(strings.NewReader(sampleOUI), nil)

	require.Contains(t, index, uint32(0x00CAFE))
	entries := index[0x00CAFE]
	require.Len(t, entries, 1)
	assert.Equal(t, "ACME CORPORATION", entries[0].Org)
	assert.Equal(t, []string{"1 MAIN STREET", "SPRINGFIELD", "UNITED STATES"}, entries[0].Address)

	require.Contains(t, index, uint32(0x001B77))
	assert.Equal(t, "Intel Corporate", index[0x001B77][0].Org)

	assert.Equal(t, 1, warnings, "malformed hex prefix line should be skipped and counted")
}

const sampleIAB = `
00-50-C2   (hex)		ACME CORPORATION
000000-000FFF     (base 16)		ACME CORPORATION
				1 MAIN STREET
				SPRINGFIELD
				UNITED STATES

40-D8-55   (hex)		MODERN HOLDER
002000-002FFF     (base 16)		MODERN HOLDER
				500 MODERN AVENUE
`

func TestParseIABText(t *testing.T) {
	index, warnings := parseIABText(strings.NewReader(sampleIAB), nil)
	assert.Zero(t, warnings)

	require.Contains(t, index, uint64(0x050C2000))
	assert.Equal(t, "ACME CORPORATION", index[0x050C2000][0].Org)

	require.Contains(t, index, uint64(0x40D855002))
	assert.Equal(t, "MODERN HOLDER", index[0x40D855002][0].Org)
}

func TestParseOUIText_TabsAndCRLF(t *testing.T) {
	text := "00-00-5E\t  (hex)\t\tICANN\r\n00005E   (base 16)\t\tICANN\r\n\t\t\t4676 ADMIRALTY WAY\r\n"
	index, warnings := parseOUIText(strings.NewReader(text), nil)
	assert.Zero(t, warnings)
	require.Contains(t, index, uint32(0x00005E))
	assert.Equal(t, []string{"4676 ADMIRALTY WAY"}, index[0x00005E][0].Address)
}

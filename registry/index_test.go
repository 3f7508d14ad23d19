package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndex_WithReaderOverride(t *testing.T) {
	oui := strings.NewReader("00-CA-FE   (hex)\t\tACME CORPORATION\r\n00CAFE     (base 16)\t\tACME CORPORATION\r\n")
	iab := strings.NewReader("00-50-C2   (hex)\t\tACME\r\n000000-000FFF     (base 16)\t\tACME\r\n")

	idx, err := buildIndex(WithReader(oui, iab))
	require.NoError(t, err)
	assert.Contains(t, idx.oui, uint32(0x00CAFE))
	assert.Contains(t, idx.iab, uint64(0x050C2000))
}

func TestResolveReaders_MissingDataDir(t *testing.T) {
	cfg := &config{dataDir: "/nonexistent/path/for/registry/test"}
	_, _, err := resolveReaders(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestIndexStats_BundledData(t *testing.T) {
	stats, err := IndexStats()
	require.NoError(t, err)
	assert.Zero(t, stats.OUISkippedLines, "bundled sample data has no malformed lines")
	assert.Zero(t, stats.IABSkippedLines)
}

package zonefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfd3/zonescan/zone"
)

func TestParseFileIndexingPopulatesIndex(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.zone")
	text := "host1.example.com. 300 IN A 192.0.2.1\nhost2.example.com. 300 IN A 192.0.2.2\n"
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	idx := NewIndex()
	res := ParseFileIndexing(Options{}, path, idx)
	require.Equal(t, zone.Success, res)
	assert.EqualValues(t, 2, idx.Len())

	h, ok := idx.Lookup("host1.example.com.")
	require.True(t, ok)
	require.Len(t, h.Records.A, 1)
	assert.Equal(t, "192.0.2.1", h.Records.A[0].Address.String())

	_, ok = idx.Lookup("nonexistent.example.com.")
	assert.False(t, ok)
}

func TestIndexingAcceptForwardsToInner(t *testing.T) {
	idx := NewIndex()
	var forwarded int
	inner := func(ownerStr string, rtype uint16, class uint16, ttl uint32, rdata []byte) int32 {
		forwarded++
		return 0
	}
	accept := idx.IndexingAccept(inner)
	accept("host.example.com.", 1, 1, 300, []byte{192, 0, 2, 1})

	assert.Equal(t, 1, forwarded)
	_, ok := idx.Lookup("host.example.com.")
	assert.True(t, ok)
}

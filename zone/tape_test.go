package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flattenAll drives indexBlock to completion over data, feeding it as a
// single final block; used as the oracle a split-feed run is compared
// against.
func flattenAll(t *testing.T, data []byte) []tapeEntry {
	t.Helper()
	tape, consumed, unterminated := indexBlock(data, 0, true)
	require.False(t, unterminated)
	require.Equal(t, len(data), consumed)
	return tape
}

// feedInTwoParts simulates the refill loop splitting data at cut: the
// first call sees only data[:cut] with final=false, and whatever it
// leaves unconsumed is re-presented (unchanged, per the refill contract)
// alongside the rest of data on the second, final call.
func feedInTwoParts(t *testing.T, data []byte, cut int) []tapeEntry {
	t.Helper()
	var tape []tapeEntry

	first, consumed, unterminated := indexBlock(data[:cut], 0, false)
	require.False(t, unterminated)
	tape = append(tape, first...)

	rest := append(append([]byte{}, data[consumed:cut]...), data[cut:]...)
	second, consumed2, unterminated2 := indexBlock(rest, 0, true)
	require.False(t, unterminated2)
	require.Equal(t, len(rest), consumed2)
	tape = append(tape, second...)

	return tape
}

func entryKinds(tape []tapeEntry) []tokenKind {
	kinds := make([]tokenKind, len(tape))
	for i, e := range tape {
		kinds[i] = e.kind
	}
	return kinds
}

// scenario 7: a block boundary falling inside a run of blanks, immediately
// before a quoted field, must not change the token stream: splitting the
// input anywhere produces the same tape as indexing it whole.
func TestIndexBlockBoundaryBeforeQuotedField(t *testing.T) {
	blanks := ""
	for i := 0; i < 63; i++ {
		blanks += " "
	}
	data := []byte("a.example.com. 1 IN TXT" + blanks + "\"bar\"\nb.example.com. 1 IN A 192.0.2.9\n")

	want := flattenAll(t, data)
	for cut := 1; cut < len(data); cut++ {
		got := feedInTwoParts(t, data, cut)
		assert.Equal(t, entryKinds(want), entryKinds(got), "cut at %d", cut)
	}
}

// a contiguous field split mid-run across the boundary must yield the same
// number of entries, of the same kinds in the same order, as the unsplit parse.
func TestIndexBlockBoundaryMidContiguousField(t *testing.T) {
	data := []byte("host.example.com. 1 IN A 192.0.2.1\n")
	want := flattenAll(t, data)
	for cut := 1; cut < len(data); cut++ {
		got := feedInTwoParts(t, data, cut)
		require.Equal(t, len(want), len(got), "cut at %d", cut)
		for i := range want {
			assert.Equal(t, want[i].kind, got[i].kind, "cut %d entry %d", cut, i)
		}
	}
}

// a quoted string split across the boundary must not be misreported as
// unterminated, and must yield as many entries as the unsplit parse.
func TestIndexBlockBoundaryMidQuotedField(t *testing.T) {
	data := []byte(`a.example.com. 1 IN TXT "hello world this is a longer string"` + "\n")
	want := flattenAll(t, data)
	for cut := 1; cut < len(data); cut++ {
		got := feedInTwoParts(t, data, cut)
		require.Equal(t, len(want), len(got), "cut at %d", cut)
	}
}

// the tape partitions every input byte: EOF aside, each byte belongs to
// exactly one entry's [start,end) range, one LINE_FEED/paren pos, or is
// blank/comment filler consumed between entries.
func TestIndexBlockConsumesAllInputAtEOF(t *testing.T) {
	data := []byte("a.example.com. 1 IN A 192.0.2.1 ; trailing comment\n")
	_, consumed, unterminated := indexBlock(data, 0, true)
	assert.False(t, unterminated)
	assert.Equal(t, len(data), consumed)
}

// an unterminated quoted string at real EOF is reported, not silently
// dropped or force-closed.
func TestIndexBlockUnterminatedQuoteAtEOF(t *testing.T) {
	data := []byte(`a.example.com. 1 IN TXT "never closed` + "\n")
	_, _, unterminated := indexBlock(data, 0, true)
	assert.True(t, unterminated)
}

package zonefile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNameSimple(t *testing.T) {
	wire := []byte{3, 'w', 'w', 'w', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0, 0xAA}
	name, rest, ok := decodeName(wire)
	require.True(t, ok)
	assert.Equal(t, "www.example.com.", name)
	assert.Equal(t, []byte{0xAA}, rest)
}

func TestDecodeNameRoot(t *testing.T) {
	name, rest, ok := decodeName([]byte{0})
	require.True(t, ok)
	assert.Equal(t, ".", name)
	assert.Empty(t, rest)
}

func TestDecodeNameEscapesNonPrintable(t *testing.T) {
	wire := []byte{1, 0x01, 0}
	name, _, ok := decodeName(wire)
	require.True(t, ok)
	assert.Equal(t, `\001.`, name)
}

func TestDecodeNameTruncatedIsNotOK(t *testing.T) {
	_, _, ok := decodeName([]byte{5, 'a', 'b'})
	assert.False(t, ok)
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "IN", classString(1))
	assert.Equal(t, "CH", classString(3))
	assert.Equal(t, "HS", classString(4))
	assert.Equal(t, "NONE", classString(254))
	assert.Equal(t, "ANY", classString(255))
	assert.Equal(t, "CLASS7", classString(7))
}

func TestDecodeCharString(t *testing.T) {
	b := []byte{5, 'h', 'e', 'l', 'l', 'o', 'x'}
	s, rest, ok := decodeCharString(b)
	require.True(t, ok)
	assert.Equal(t, "hello", s)
	assert.Equal(t, []byte{'x'}, rest)
}

func TestDecodeCharStringLengthOverrunsBuffer(t *testing.T) {
	_, _, ok := decodeCharString([]byte{10, 'a', 'b'})
	assert.False(t, ok)
}

func TestDecodeUint16AndUint32(t *testing.T) {
	v16, rest, ok := decodeUint16([]byte{0x01, 0x02, 0xFF})
	require.True(t, ok)
	assert.Equal(t, uint16(0x0102), v16)
	assert.Equal(t, []byte{0xFF}, rest)

	v32, rest, ok := decodeUint32([]byte{0x00, 0x00, 0x01, 0x00, 0xEE})
	require.True(t, ok)
	assert.Equal(t, uint32(256), v32)
	assert.Equal(t, []byte{0xEE}, rest)
}

func TestDecodeIP(t *testing.T) {
	ip, ok := decodeIP([]byte{192, 0, 2, 1}, 4)
	require.True(t, ok)
	assert.Equal(t, "192.0.2.1", ip.String())

	_, ok = decodeIP([]byte{192, 0, 2}, 4)
	assert.False(t, ok)
}

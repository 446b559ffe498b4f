package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNameAbsolute(t *testing.T) {
	n, ok := parseName("host.example.com.", nil)
	require.True(t, ok)
	assert.Equal(t, []byte{4, 'h', 'o', 's', 't', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0}, []byte(n))
}

func TestParseNameRelativeQualifiesWithOrigin(t *testing.T) {
	origin, ok := parseName("example.com.", nil)
	require.True(t, ok)

	n, ok := parseName("www", origin)
	require.True(t, ok)
	assert.Equal(t, append([]byte{3, 'w', 'w', 'w'}, origin...), []byte(n))
}

func TestParseNameAtSignIsOrigin(t *testing.T) {
	origin, _ := parseName("example.com.", nil)
	n, ok := parseName("@", origin)
	require.True(t, ok)
	assert.Equal(t, []byte(origin), []byte(n))
}

func TestParseNameLabelTooLong(t *testing.T) {
	long := ""
	for i := 0; i < 64; i++ {
		long += "a"
	}
	_, ok := parseName(long+".example.com.", nil)
	assert.False(t, ok, "label exceeding 63 octets must be rejected")
}

func TestParseNameEscapedDecimal(t *testing.T) {
	n, ok := parseName(`a\046b.example.com.`, nil)
	require.True(t, ok)
	assert.Equal(t, byte('a'), n[1])
	assert.Equal(t, byte('.'), n[2])
	assert.Equal(t, byte('b'), n[3])
}

func TestParseNameRootIsSingleZeroByte(t *testing.T) {
	n, ok := parseName(".", nil)
	require.True(t, ok)
	assert.Equal(t, []byte{0}, []byte(n))
}

func TestParseNameRejectsDoubledDot(t *testing.T) {
	_, ok := parseName("..", nil)
	assert.False(t, ok, "empty label between two dots must be rejected")
}

func TestParseNameRejectsInteriorEmptyLabel(t *testing.T) {
	_, ok := parseName("foo..bar.", nil)
	assert.False(t, ok, "empty label between foo and bar must be rejected")
}

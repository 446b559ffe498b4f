package zonefile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandGenerateSimpleRange(t *testing.T) {
	out, err := ExpandGenerate("$GENERATE 1-3 host-$ IN A 192.0.2.$\n")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "host-1 IN A 192.0.2.1", lines[0])
	assert.Equal(t, "host-2 IN A 192.0.2.2", lines[1])
	assert.Equal(t, "host-3 IN A 192.0.2.3", lines[2])
}

func TestExpandGenerateDescendingRangeWithStep(t *testing.T) {
	out, err := ExpandGenerate("$GENERATE 10-4/3 host-$ IN A 10.0.0.$\n")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, []string{
		"host-10 IN A 10.0.0.10",
		"host-7 IN A 10.0.0.7",
		"host-4 IN A 10.0.0.4",
	}, lines)
}

func TestExpandGenerateOffsetWidthAndBase(t *testing.T) {
	out, err := ExpandGenerate("$GENERATE 1-1 host-${1,3,d} IN A 192.0.2.${0,0,x}\n")
	require.NoError(t, err)
	assert.Equal(t, "host-002 IN A 192.0.2.1", strings.TrimRight(out, "\n"))
}

func TestExpandGenerateLeavesOtherLinesUntouched(t *testing.T) {
	text := "$ORIGIN example.com.\nhost IN A 192.0.2.1\n"
	out, err := ExpandGenerate(text)
	require.NoError(t, err)
	assert.Equal(t, text, out)
}

func TestExpandGenerateRejectsZeroStep(t *testing.T) {
	_, err := ExpandGenerate("$GENERATE 1-3/0 host-$ IN A 192.0.2.$\n")
	assert.Error(t, err)
}

func TestExpandGenerateRejectsMalformedRange(t *testing.T) {
	_, err := ExpandGenerate("$GENERATE notarange host-$ IN A 192.0.2.$\n")
	assert.Error(t, err)
}

package zonefile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfd3/zonescan/zone"
)

func TestParseStringAccumulatesMultipleOwners(t *testing.T) {
	text := "" +
		"example.com. 3600 IN SOA ns.example.com. admin.example.com. 1 2 3 4 5\n" +
		"www.example.com. 300 IN A 192.0.2.1\n" +
		"www.example.com. 300 IN AAAA 2001:db8::1\n" +
		"mail.example.com. 300 IN MX 10 relay.example.com.\n"

	zd, res := ParseString(Options{}, text)
	require.Equal(t, zone.Success, res)
	require.Len(t, zd.Hosts(), 3)

	apex, ok := zd.Lookup("example.com.")
	require.True(t, ok)
	require.Len(t, apex.Records.SOA, 1)
	assert.Equal(t, "ns.example.com.", apex.Records.SOA[0].PrimaryNS)
	assert.EqualValues(t, 1, apex.Records.SOA[0].Serial)

	www, ok := zd.Lookup("www.example.com.")
	require.True(t, ok)
	require.Len(t, www.Records.A, 1)
	assert.Equal(t, "192.0.2.1", www.Records.A[0].Address.String())
	require.Len(t, www.Records.AAAA, 1)

	mail, ok := zd.Lookup("mail.example.com.")
	require.True(t, ok)
	require.Len(t, mail.Records.MX, 1)
	assert.EqualValues(t, 10, mail.Records.MX[0].Priority)
	assert.Equal(t, "relay.example.com.", mail.Records.MX[0].Mail)
}

func TestParseStringUnknownTypeLandsInGeneric(t *testing.T) {
	text := "host.example.com. 300 IN TYPE61440 \\# 2 CAFE\n"
	zd, res := ParseString(Options{}, text)
	require.Equal(t, zone.Success, res)

	h, ok := zd.Lookup("host.example.com.")
	require.True(t, ok)
	require.Len(t, h.Records.Generic, 1)
	assert.EqualValues(t, 61440, h.Records.Generic[0].Type)
	assert.Equal(t, []byte{0xCA, 0xFE}, h.Records.Generic[0].RData)
}

func TestParseStringTXTConcatenatesSegments(t *testing.T) {
	text := "host.example.com. 300 IN TXT \"a\" \"b\"\n"
	zd, res := ParseString(Options{}, text)
	require.Equal(t, zone.Success, res)

	h, ok := zd.Lookup("host.example.com.")
	require.True(t, ok)
	require.Len(t, h.Records.TXT, 1)
	assert.Equal(t, "ab", h.Records.TXT[0].Text)
}

func TestParseStringMetadataTracksLastTTL(t *testing.T) {
	text := "host.example.com. 100 IN A 192.0.2.1\nhost.example.com. 200 IN A 192.0.2.2\n"
	zd, res := ParseString(Options{}, text)
	require.Equal(t, zone.Success, res)
	assert.EqualValues(t, 200, zd.Metadata.TTL)
}

func TestParseStringSyntaxErrorStopsBeforeNextHost(t *testing.T) {
	text := "host.example.com. 300 IN A not-an-address\nnext.example.com. 300 IN A 192.0.2.1\n"
	zd, res := ParseString(Options{}, text)
	assert.Equal(t, zone.SyntaxError, res)
	assert.Empty(t, zd.Hosts())
}

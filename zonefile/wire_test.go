package zonefile

import (
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRRsConvertsEachDecodedRecord(t *testing.T) {
	text := "host.example.com. 300 IN A 192.0.2.1\nhost.example.com. 300 IN MX 10 relay.example.com.\n"
	zd, _ := ParseString(Options{}, text)

	h, ok := zd.Lookup("host.example.com.")
	require.True(t, ok)

	rrs, err := h.ToRRs()
	require.NoError(t, err)
	require.Len(t, rrs, 2)

	var sawA, sawMX bool
	for _, rr := range rrs {
		switch rr.Header().Rrtype {
		case dns.TypeA:
			sawA = true
		case dns.TypeMX:
			sawMX = true
		}
	}
	assert.True(t, sawA)
	assert.True(t, sawMX)
}

func TestToRRsEmptyHostReturnsNoRecords(t *testing.T) {
	h := &HostRecord{Owner: "empty.example.com."}
	rrs, err := h.ToRRs()
	require.NoError(t, err)
	assert.Empty(t, rrs)
}

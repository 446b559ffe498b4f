package zone

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRR struct {
	owner Name
	rtype Type
	class Class
	ttl   uint32
	rdata []byte
}

func collectingParser(opts Options) (*Parser, *[]recordedRR) {
	var records []recordedRR
	opts.Accept = func(p *Parser, owner Name, rtype Type, class Class, ttl uint32, rdata []byte, userData any) int32 {
		records = append(records, recordedRR{
			owner: append(Name(nil), owner...),
			rtype: rtype,
			class: class,
			ttl:   ttl,
			rdata: append([]byte(nil), rdata...),
		})
		return 0
	}
	return NewParser(opts), &records
}

// scenario 1: host.example.com. 1 IN A 192.0.2.1
func TestParseAAddress(t *testing.T) {
	p, records := collectingParser(Options{})
	res := p.ParseString("host.example.com. 1 IN A 192.0.2.1\n", nil)
	require.Equal(t, Success, res)
	require.Len(t, *records, 1)

	rr := (*records)[0]
	assert.EqualValues(t, 1, rr.rtype)
	assert.EqualValues(t, ClassIN, rr.class)
	assert.EqualValues(t, 1, rr.ttl)
	assert.Equal(t, []byte{0xC0, 0x00, 0x02, 0x01}, rr.rdata)
}

// scenario 2: SOA wire encoding
func TestParseSOAWireForm(t *testing.T) {
	p, records := collectingParser(Options{})
	text := "example.com. 1 IN SOA ns.example.com. noc.example.com. 2022072501 1 2 3 4\n"
	res := p.ParseString(text, nil)
	require.Equal(t, Success, res)
	require.Len(t, *records, 1)

	rr := (*records)[0]
	assert.EqualValues(t, 6, rr.rtype)

	ns, _ := parseName("ns.example.com.", nil)
	noc, _ := parseName("noc.example.com.", nil)
	want := append([]byte{}, ns...)
	want = append(want, noc...)
	want = append(want, 0x78, 0x73, 0x13, 0x95) // 2022072501 big-endian
	want = append(want, 0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 3, 0, 0, 0, 4)
	assert.Equal(t, want, rr.rdata)
}

// scenario 3: AAAA
func TestParseAAAAAddress(t *testing.T) {
	p, records := collectingParser(Options{})
	res := p.ParseString("host.example.com. 1 IN AAAA 2001:DB8::1\n", nil)
	require.Equal(t, Success, res)
	require.Len(t, *records, 1)

	rdata := (*records)[0].rdata
	require.Len(t, rdata, 16)
	assert.Equal(t, []byte{0x20, 0x01}, rdata[:2])
	assert.EqualValues(t, 0x01, rdata[15])
}

// scenario 4: owner label exceeding 63 octets is a syntax error
func TestParseOwnerLabelTooLong(t *testing.T) {
	p, _ := collectingParser(Options{})
	long := ""
	for i := 0; i < 64; i++ {
		long += "0"
	}
	res := p.ParseString(long+".example.com. 1 IN A 192.0.2.1\n", nil)
	assert.Equal(t, SyntaxError, res)
}

// scenario 8: $INCLUDE of a nonexistent file
func TestIncludeNonexistentFile(t *testing.T) {
	var loggedFile string
	var loggedMsg string
	p := NewParser(Options{Log: func(p *Parser, priority Priority, file string, line uint64, message string, userData any) {
		if priority == PriorityError {
			loggedFile = file
			loggedMsg = message
		}
	}})
	res := p.ParseString("$INCLUDE /no/such/file/exists.zone\n", nil)
	assert.Equal(t, NotAFile, res)
	assert.Contains(t, loggedMsg, "no such file")
	assert.NotEmpty(t, loggedFile)
}

// trailing garbage after a parenthesized group's closing paren must report
// the record's starting line, not the physical line the group closed on:
// the deferred line count only applies once the record is accepted.
func TestGroupedRecordTrailingGarbageReportsStartingLine(t *testing.T) {
	var loggedLine uint64
	p := NewParser(Options{Log: func(p *Parser, priority Priority, file string, line uint64, message string, userData any) {
		if priority == PriorityError {
			loggedLine = line
		}
	}})
	text := "a.example.com. 1 IN A (\n192.0.2.1\n) garbage\n"
	res := p.ParseString(text, nil)
	assert.Equal(t, SyntaxError, res)
	assert.EqualValues(t, 1, loggedLine, "error must blame the record's opening line, not the post-group line")
}

// scenario 9: circular $INCLUDE at depth 1
func TestIncludeCircular(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.zone")
	b := filepath.Join(dir, "b.zone")
	require.NoError(t, os.WriteFile(a, []byte("$INCLUDE "+b+"\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("$INCLUDE "+a+"\n"), 0o644))

	p, _ := collectingParser(Options{IncludeLimit: 1})
	res := p.ParseFile(a, nil)
	assert.Equal(t, SemanticError, res)
}

// scenario 10: $TTL inheritance and override
func TestTTLInheritanceAndOverride(t *testing.T) {
	p, records := collectingParser(Options{})
	text := "$TTL 350\nexample.com. IN A 192.0.2.1\nexample.com. 300 IN A 192.0.2.2\n"
	res := p.ParseString(text, nil)
	require.Equal(t, Success, res)
	require.Len(t, *records, 2)
	assert.EqualValues(t, 350, (*records)[0].ttl)
	assert.EqualValues(t, 300, (*records)[1].ttl)
}

// universal invariant: no record is delivered while grouped; EOF mid-group
// is a syntax error.
func TestUnterminatedGroupIsSyntaxError(t *testing.T) {
	p, records := collectingParser(Options{})
	res := p.ParseString("example.com. 1 IN A ( 192.0.2.1\n", nil)
	assert.Equal(t, SyntaxError, res)
	assert.Empty(t, *records)
}

// universal invariant: case-insensitive mnemonic lookup.
func TestTypeMnemonicLookupCaseInsensitive(t *testing.T) {
	for _, s := range []string{"A", "a", "TYPE1"} {
		tp, ok := lookupType(s)
		require.True(t, ok, s)
		assert.EqualValues(t, 1, tp)
	}
}

// owner inheritance across a blank-prefixed continuation line.
func TestOwnerInheritedOnBlankPrefixedLine(t *testing.T) {
	p, records := collectingParser(Options{})
	text := "host.example.com. 1 IN A 192.0.2.1\n        1 IN A 192.0.2.2\n"
	res := p.ParseString(text, nil)
	require.Equal(t, Success, res)
	require.Len(t, *records, 2)
	assert.Equal(t, (*records)[0].owner, (*records)[1].owner)
}

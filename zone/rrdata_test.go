package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// name-only RDATA shape (NS, CNAME, PTR, DNAME).
func TestParseCNAMERdata(t *testing.T) {
	p, records := collectingParser(Options{})
	res := p.ParseString("alias.example.com. 1 IN CNAME target.example.com.\n", nil)
	require.Equal(t, Success, res)
	require.Len(t, *records, 1)

	want, _ := parseName("target.example.com.", nil)
	assert.Equal(t, []byte(want), (*records)[0].rdata)
}

// fixed uint16-preference-plus-name shape (MX, KX, AFSDB).
func TestParseMXRdata(t *testing.T) {
	p, records := collectingParser(Options{})
	res := p.ParseString("example.com. 1 IN MX 10 mail.example.com.\n", nil)
	require.Equal(t, Success, res)
	require.Len(t, *records, 1)

	name, _ := parseName("mail.example.com.", nil)
	want := append([]byte{0, 10}, name...)
	assert.Equal(t, want, (*records)[0].rdata)
}

// variadic character-string shape (TXT): multiple quoted segments
// concatenate, each with its own length prefix.
func TestParseTXTMultipleSegments(t *testing.T) {
	p, records := collectingParser(Options{})
	res := p.ParseString(`example.com. 1 IN TXT "foo" "bar"` + "\n", nil)
	require.Equal(t, Success, res)
	require.Len(t, *records, 1)

	want := append([]byte{3, 'f', 'o', 'o'}, 3, 'b', 'a', 'r')
	assert.Equal(t, want, (*records)[0].rdata)
}

// TXT requires at least one string.
func TestParseTXTRequiresOneSegment(t *testing.T) {
	p, _ := collectingParser(Options{})
	res := p.ParseString("example.com. 1 IN TXT\n", nil)
	assert.Equal(t, SyntaxError, res)
}

// variadic type-list shape folding into a windowed bitmap (NSEC).
func TestParseNSECBitmap(t *testing.T) {
	p, records := collectingParser(Options{})
	res := p.ParseString("host.example.com. 1 IN NSEC next.example.com. A MX RRSIG NSEC\n", nil)
	require.Equal(t, Success, res)
	require.Len(t, *records, 1)

	rdata := (*records)[0].rdata
	next, _ := parseName("next.example.com.", nil)
	require.True(t, len(rdata) > len(next))
	assert.Equal(t, []byte(next), rdata[:len(next)])

	bm := rdata[len(next):]
	require.GreaterOrEqual(t, len(bm), 3)
	assert.EqualValues(t, 0, bm[0]) // window 0
	assert.EqualValues(t, 6, bm[1]) // block length covers bit 47 (NSEC)

	want := newTypeBitmap()
	want.set(1)  // A
	want.set(15) // MX
	want.set(46) // RRSIG
	want.set(47) // NSEC
	assert.Equal(t, want.encode(), bm)
}

// RFC 3597 generic RDATA form used for a type with no dedicated grammar.
func TestParseGenericFallbackForUnknownType(t *testing.T) {
	p, records := collectingParser(Options{})
	res := p.ParseString("host.example.com. 1 IN TYPE61440 \\# 4 DEADBEEF\n", nil)
	require.Equal(t, Success, res)
	require.Len(t, *records, 1)

	rr := (*records)[0]
	assert.EqualValues(t, 61440, rr.rtype)
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, rr.rdata)
}

// the \# escape hatch also overrides a type that DOES have a dedicated
// grammar.
func TestParseGenericFallbackOverridesKnownType(t *testing.T) {
	p, records := collectingParser(Options{})
	res := p.ParseString("host.example.com. 1 IN A \\# 4 C0000201\n", nil)
	require.Equal(t, Success, res)
	require.Len(t, *records, 1)
	assert.Equal(t, []byte{0xC0, 0x00, 0x02, 0x01}, (*records)[0].rdata)
}

// generic RDATA shorter than its declared length is a syntax error.
func TestParseGenericFallbackLengthMismatch(t *testing.T) {
	p, _ := collectingParser(Options{})
	res := p.ParseString("host.example.com. 1 IN TYPE9999 \\# 4 DEAD\n", nil)
	assert.Equal(t, SyntaxError, res)
}

// WKS is restricted to class IN (original_source/src/generic/types.h).
func TestParseWKSRejectsNonINClass(t *testing.T) {
	p, _ := collectingParser(Options{})
	res := p.ParseString("host.example.com. 1 CH WKS 10.0.0.1 6 25 79\n", nil)
	assert.Equal(t, SemanticError, res)
}

func TestParseWKSAcceptsINClass(t *testing.T) {
	p, records := collectingParser(Options{})
	res := p.ParseString("host.example.com. 1 IN WKS 10.0.0.1 6 25 79\n", nil)
	require.Equal(t, Success, res)
	require.Len(t, *records, 1)
}

// DS digest length must match the digest type (RFC 4034 §5.1.4): type 1 is
// SHA-1, 20 octets.
func TestParseDSRejectsWrongDigestLength(t *testing.T) {
	p, _ := collectingParser(Options{})
	res := p.ParseString("example.com. 1 IN DS 12345 8 1 AABBCC\n", nil)
	assert.Equal(t, SemanticError, res)
}

func TestParseDSAcceptsCorrectDigestLength(t *testing.T) {
	p, records := collectingParser(Options{})
	sha1 := "0102030405060708090A0B0C0D0E0F1011121314" // 20 bytes, hex
	res := p.ParseString("example.com. 1 IN DS 12345 8 1 "+sha1+"\n", nil)
	require.Equal(t, Success, res)
	require.Len(t, *records, 1)
}

// ZONEMD digest length must match the hash algorithm (RFC 8976 §5.2): 1 is
// SHA-384, 48 octets.
func TestParseZONEMDRejectsWrongDigestLength(t *testing.T) {
	p, _ := collectingParser(Options{})
	res := p.ParseString("example.com. 1 IN ZONEMD 2022072501 1 1 AABBCC\n", nil)
	assert.Equal(t, SemanticError, res)
}

// SVCB's "mandatory" keys must themselves appear in the same record.
func TestParseSVCBRejectsMandatoryKeyNotPresent(t *testing.T) {
	p, _ := collectingParser(Options{})
	res := p.ParseString("svc.example.com. 1 IN SVCB 1 target.example.com. mandatory=alpn\n", nil)
	assert.Equal(t, SemanticError, res)
}

func TestParseSVCBAcceptsMandatoryKeyPresent(t *testing.T) {
	p, records := collectingParser(Options{})
	res := p.ParseString(`svc.example.com. 1 IN SVCB 1 target.example.com. mandatory=alpn alpn=h2`+"\n", nil)
	require.Equal(t, Success, res)
	require.Len(t, *records, 1)
}

// RFC 9461/9540 SvcParamKeys not present in the original table.
func TestParseSVCBDoHPathAndOHTTP(t *testing.T) {
	p, records := collectingParser(Options{})
	res := p.ParseString("svc.example.com. 1 IN HTTPS 1 target.example.com. dohpath=/dns-query{?dns} ohttp\n", nil)
	require.Equal(t, Success, res)
	require.Len(t, *records, 1)
}

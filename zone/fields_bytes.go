package zone

import (
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
)

// parseCharString encodes a presentation-form <character-string> (RFC 1035
// §3.3) to wire form: a one-byte length prefix followed by the unescaped
// content. Used for TXT segments, HINFO fields, NAPTR strings, and similar.
func parseCharString(raw []byte) ([]byte, bool) {
	text, ok := unescapeText(raw)
	if !ok || len(text) > 255 {
		return nil, false
	}
	out := make([]byte, 0, len(text)+1)
	out = append(out, byte(len(text)))
	out = append(out, text...)
	return out, true
}

// parseHex decodes a base16 field (SSHFP fingerprint, DS digest, NSEC3
// salt continuation, generic RDATA's "\#" form, ...). "-" denotes an empty
// value (used by NSEC3's salt field).
func parseHex(s string) ([]byte, bool) {
	if s == "-" {
		return nil, true
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, false
	}
	return b, true
}

// parseBase64 decodes a base64 field (DNSKEY/RRSIG/TLSA key material and
// similar), tolerating the standard padded alphabet only, as RFC 4034 and
// friends require.
func parseBase64(s string) ([]byte, bool) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, false
	}
	return b, true
}

var base32HexNoPad = base32.HexEncoding.WithPadding(base32.NoPadding)

// parseBase32Hex decodes NSEC3's base32hex-without-padding hashed owner
// name alphabet (RFC 5155 §3.3).
func parseBase32Hex(s string) ([]byte, bool) {
	b, err := base32HexNoPad.DecodeString(s)
	if err != nil {
		return nil, false
	}
	return b, true
}

package zone

import (
	"encoding/binary"
	"strconv"
)

func init() {
	registerRR("DS", parseDSLike, validateDSLike)
	registerRR("CDS", parseDSLike, validateDSLike)
	registerRR("DNSKEY", parseDNSKEYLike)
	registerRR("CDNSKEY", parseDNSKEYLike)
	registerRR("RRSIG", parseRRSIG)
	registerRR("NSEC", parseNSEC)
	registerRR("NSEC3PARAM", parseNSEC3PARAM)
	registerRR("NSEC3", parseNSEC3)
	registerRR("CSYNC", parseCSYNC)
	registerRR("ZONEMD", parseZONEMD, validateZONEMD)
}

// dsDigestLengths gives each DS/CDS digest type's expected digest length in
// octets (RFC 4034 §5.1.4, RFC 8078 §4.5, RFC 5933 §2). Unlisted digest
// types are left unchecked rather than rejected, since IANA can register
// new ones independent of this parser.
var dsDigestLengths = map[byte]int{
	1: 20, // SHA-1
	2: 32, // SHA-256
	3: 32, // GOST R 34.11-94
	4: 48, // SHA-384
}

// validateDSLike implements spec.md §4.6's digest-length check for DS and
// CDS: the digest octets must match the length implied by the digest type.
func validateDSLike(p *Parser, f *File, class Class, rdata []byte) Result {
	if len(rdata) < 4 {
		return p.fail(SemanticError, f, "DS/CDS RDATA too short")
	}
	digType := rdata[3]
	digest := rdata[4:]
	if want, ok := dsDigestLengths[digType]; ok && len(digest) != want {
		return p.fail(SemanticError, f, "DS/CDS digest length %d invalid for digest type %d, want %d", len(digest), digType, want)
	}
	return Success
}

// zonemdDigestLengths gives each ZONEMD hash algorithm's expected digest
// length in octets (RFC 8976 §5.2).
var zonemdDigestLengths = map[byte]int{
	1: 48, // SHA-384
	2: 64, // SHA-512
}

// validateZONEMD implements spec.md §4.6's digest-length check for ZONEMD.
func validateZONEMD(p *Parser, f *File, class Class, rdata []byte) Result {
	if len(rdata) < 6 {
		return p.fail(SemanticError, f, "ZONEMD RDATA too short")
	}
	hashAlgo := rdata[5]
	digest := rdata[6:]
	if want, ok := zonemdDigestLengths[hashAlgo]; ok && len(digest) != want {
		return p.fail(SemanticError, f, "ZONEMD digest length %d invalid for hash algorithm %d, want %d", len(digest), hashAlgo, want)
	}
	return Success
}

// parseDSLike handles DS (RFC 4034 §5.3) and CDS (RFC 7344 §3.1): key
// tag, algorithm, digest type (each uint8/uint16 as noted), then the
// digest as hex to the end of the record.
func parseDSLike(p *Parser, f *File) ([]byte, Result) {
	tagTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	tag, err := strconv.ParseUint(string(tagTok.Text), 10, 16)
	if err != nil {
		return nil, p.fail(SyntaxError, f, "invalid key tag %q", tagTok.Text)
	}

	algo, digType, res := p.readUint8Pair(f)
	if res != Success {
		return nil, res
	}

	digest, res := p.readHexToEndOfLine(f)
	if res != Success {
		return nil, res
	}

	out := binary.BigEndian.AppendUint16(nil, uint16(tag))
	out = append(out, algo, digType)
	out = append(out, digest...)
	return out, Success
}

// parseDNSKEYLike handles DNSKEY (RFC 4034 §2.2) and CDNSKEY (RFC 8078):
// flags (uint16), protocol, algorithm (uint8 each), then base64 key
// material to the end of the record.
func parseDNSKEYLike(p *Parser, f *File) ([]byte, Result) {
	flagsTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	flags, err := strconv.ParseUint(string(flagsTok.Text), 10, 16)
	if err != nil {
		return nil, p.fail(SyntaxError, f, "invalid DNSKEY flags %q", flagsTok.Text)
	}

	protocol, algo, res := p.readUint8Pair(f)
	if res != Success {
		return nil, res
	}

	key, res := p.readBase64ToEndOfLine(f)
	if res != Success {
		return nil, res
	}

	out := binary.BigEndian.AppendUint16(nil, uint16(flags))
	out = append(out, protocol, algo)
	out = append(out, key...)
	return out, Success
}

// parseRRSIG implements RFC 4034 §3.2.
func parseRRSIG(p *Parser, f *File) ([]byte, Result) {
	covTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	covered, ok := lookupType(string(covTok.Text))
	if !ok {
		return nil, p.fail(SyntaxError, f, "invalid RRSIG type covered %q", covTok.Text)
	}

	algo, labels, res := p.readUint8Pair(f)
	if res != Success {
		return nil, res
	}

	origTTL, res := p.readUint32Field(f, "original TTL")
	if res != Success {
		return nil, res
	}

	var expiration, inception uint32
	for _, dst := range []*uint32{&expiration, &inception} {
		tok, res := p.nextFieldToken(f)
		if res != Success {
			return nil, res
		}
		v, ok := parseTimestamp(string(tok.Text))
		if !ok {
			return nil, p.fail(SyntaxError, f, "invalid RRSIG timestamp %q", tok.Text)
		}
		*dst = v
	}

	keyTagTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	keyTag, err := strconv.ParseUint(string(keyTagTok.Text), 10, 16)
	if err != nil {
		return nil, p.fail(SyntaxError, f, "invalid RRSIG key tag %q", keyTagTok.Text)
	}

	signerTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	signer, ok := parseName(string(signerTok.Text), f.origin)
	if !ok {
		return nil, p.fail(SyntaxError, f, "invalid RRSIG signer name %q", signerTok.Text)
	}

	sig, res := p.readBase64ToEndOfLine(f)
	if res != Success {
		return nil, res
	}

	out := binary.BigEndian.AppendUint16(nil, uint16(covered))
	out = append(out, algo, labels)
	out = binary.BigEndian.AppendUint32(out, origTTL)
	out = binary.BigEndian.AppendUint32(out, expiration)
	out = binary.BigEndian.AppendUint32(out, inception)
	out = binary.BigEndian.AppendUint16(out, uint16(keyTag))
	out = append(out, signer...)
	out = append(out, sig...)
	return out, Success
}

// parseNSEC implements RFC 4034 §4.1: a next-owner domain name followed
// by a variadic list of covered type mnemonics, folded into the RFC
// 4034 §4.1.2 windowed bitmap.
func parseNSEC(p *Parser, f *File) ([]byte, Result) {
	nextTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	next, ok := parseName(string(nextTok.Text), f.origin)
	if !ok {
		return nil, p.fail(SyntaxError, f, "invalid NSEC next owner %q", nextTok.Text)
	}

	bm := newTypeBitmap()
	for {
		tok, ok, res := p.readField(f)
		if res != Success {
			return nil, res
		}
		if !ok {
			break
		}
		if !parseTypeBitmapField(bm, string(tok.Text)) {
			return nil, p.fail(SyntaxError, f, "invalid type in NSEC bitmap %q", tok.Text)
		}
	}

	out := append([]byte{}, next...)
	out = append(out, bm.encode()...)
	return out, Success
}

// parseNSEC3PARAM implements RFC 5155 §4.2: hash algorithm, flags
// (uint8 each), iterations (uint16), and salt (hex, or "-" for empty).
func parseNSEC3PARAM(p *Parser, f *File) ([]byte, Result) {
	algo, flags, res := p.readUint8Pair(f)
	if res != Success {
		return nil, res
	}
	iterations, res := p.readUint16Field(f, "iterations")
	if res != Success {
		return nil, res
	}
	saltTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	salt, ok := parseHex(string(saltTok.Text))
	if !ok {
		return nil, p.fail(SyntaxError, f, "invalid NSEC3PARAM salt %q", saltTok.Text)
	}

	out := []byte{algo, flags}
	out = binary.BigEndian.AppendUint16(out, iterations)
	out = append(out, byte(len(salt)))
	out = append(out, salt...)
	return out, Success
}

// parseNSEC3 implements RFC 5155 §3.2: NSEC3PARAM's four fields, then the
// base32hex next-hashed-owner-name and a trailing type bitmap.
func parseNSEC3(p *Parser, f *File) ([]byte, Result) {
	algo, flags, res := p.readUint8Pair(f)
	if res != Success {
		return nil, res
	}
	iterations, res := p.readUint16Field(f, "iterations")
	if res != Success {
		return nil, res
	}
	saltTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	salt, ok := parseHex(string(saltTok.Text))
	if !ok {
		return nil, p.fail(SyntaxError, f, "invalid NSEC3 salt %q", saltTok.Text)
	}

	nextTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	next, ok := parseBase32Hex(string(nextTok.Text))
	if !ok {
		return nil, p.fail(SyntaxError, f, "invalid NSEC3 next hashed owner %q", nextTok.Text)
	}

	bm := newTypeBitmap()
	for {
		tok, ok, res := p.readField(f)
		if res != Success {
			return nil, res
		}
		if !ok {
			break
		}
		if !parseTypeBitmapField(bm, string(tok.Text)) {
			return nil, p.fail(SyntaxError, f, "invalid type in NSEC3 bitmap %q", tok.Text)
		}
	}

	out := []byte{algo, flags}
	out = binary.BigEndian.AppendUint16(out, iterations)
	out = append(out, byte(len(salt)))
	out = append(out, salt...)
	out = append(out, byte(len(next)))
	out = append(out, next...)
	out = append(out, bm.encode()...)
	return out, Success
}

// parseCSYNC implements RFC 7477 §2.1: an SOA serial, a flags field, and
// a trailing type bitmap (same encoding as NSEC's).
func parseCSYNC(p *Parser, f *File) ([]byte, Result) {
	serial, res := p.readUint32Field(f, "serial")
	if res != Success {
		return nil, res
	}
	flags, res := p.readUint16Field(f, "flags")
	if res != Success {
		return nil, res
	}

	bm := newTypeBitmap()
	for {
		tok, ok, res := p.readField(f)
		if res != Success {
			return nil, res
		}
		if !ok {
			break
		}
		if !parseTypeBitmapField(bm, string(tok.Text)) {
			return nil, p.fail(SyntaxError, f, "invalid type in CSYNC bitmap %q", tok.Text)
		}
	}

	out := binary.BigEndian.AppendUint32(nil, serial)
	out = binary.BigEndian.AppendUint16(out, flags)
	out = append(out, bm.encode()...)
	return out, Success
}

// parseZONEMD implements RFC 8976 §2.2: serial (uint32), scheme, hash
// algorithm (uint8 each), then the digest as hex to the end of the line.
func parseZONEMD(p *Parser, f *File) ([]byte, Result) {
	serial, res := p.readUint32Field(f, "serial")
	if res != Success {
		return nil, res
	}
	scheme, hashAlgo, res := p.readUint8Pair(f)
	if res != Success {
		return nil, res
	}
	digest, res := p.readHexToEndOfLine(f)
	if res != Success {
		return nil, res
	}

	out := binary.BigEndian.AppendUint32(nil, serial)
	out = append(out, scheme, hashAlgo)
	out = append(out, digest...)
	return out, Success
}

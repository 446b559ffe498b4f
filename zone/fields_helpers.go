package zone

import "strconv"

// readUint8Pair reads two consecutive small-integer fields, the common
// shape of DS/CDS's (algorithm, digest type), DNSKEY/CDNSKEY's (protocol,
// algorithm), NSEC3/NSEC3PARAM's (hash algorithm, flags) and ZONEMD's
// (scheme, hash algorithm).
func (p *Parser) readUint8Pair(f *File) (byte, byte, Result) {
	aTok, res := p.nextFieldToken(f)
	if res != Success {
		return 0, 0, res
	}
	a, err := strconv.ParseUint(string(aTok.Text), 10, 8)
	if err != nil {
		return 0, 0, p.fail(SyntaxError, f, "invalid integer field %q", aTok.Text)
	}
	bTok, res := p.nextFieldToken(f)
	if res != Success {
		return 0, 0, res
	}
	b, err := strconv.ParseUint(string(bTok.Text), 10, 8)
	if err != nil {
		return 0, 0, p.fail(SyntaxError, f, "invalid integer field %q", bTok.Text)
	}
	return byte(a), byte(b), Success
}

func (p *Parser) readUint16Field(f *File, name string) (uint16, Result) {
	tok, res := p.nextFieldToken(f)
	if res != Success {
		return 0, res
	}
	v, err := strconv.ParseUint(string(tok.Text), 10, 16)
	if err != nil {
		return 0, p.fail(SyntaxError, f, "invalid %s %q", name, tok.Text)
	}
	return uint16(v), Success
}

func (p *Parser) readUint32Field(f *File, name string) (uint32, Result) {
	tok, res := p.nextFieldToken(f)
	if res != Success {
		return 0, res
	}
	v, err := strconv.ParseUint(string(tok.Text), 10, 32)
	if err != nil {
		return 0, p.fail(SyntaxError, f, "invalid %s %q", name, tok.Text)
	}
	return uint32(v), Success
}

// readHexToEndOfLine concatenates every remaining field on the record as
// base16, the shape DS/CDS/ZONEMD digests and SSHFP/TLSA/SMIMEA material
// take when split across multiple fields for readability.
func (p *Parser) readHexToEndOfLine(f *File) ([]byte, Result) {
	var out []byte
	for {
		tok, ok, res := p.readField(f)
		if res != Success {
			return nil, res
		}
		if !ok {
			break
		}
		b, ok := parseHex(string(tok.Text))
		if !ok {
			return nil, p.fail(SyntaxError, f, "invalid hex field %q", tok.Text)
		}
		out = append(out, b...)
	}
	return out, Success
}

// readBase64ToEndOfLine concatenates every remaining field on the record
// as base64, the shape DNSKEY/RRSIG/CDNSKEY key and signature material
// takes when wrapped across multiple fields inside parentheses.
func (p *Parser) readBase64ToEndOfLine(f *File) ([]byte, Result) {
	var out []byte
	for {
		tok, ok, res := p.readField(f)
		if res != Success {
			return nil, res
		}
		if !ok {
			break
		}
		b, ok := parseBase64(string(tok.Text))
		if !ok {
			return nil, p.fail(SyntaxError, f, "invalid base64 field %q", tok.Text)
		}
		out = append(out, b...)
	}
	return out, Success
}

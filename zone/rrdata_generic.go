package zone

import "strconv"

// parseGenericRData parses RFC 3597 §5's generic RDATA form, the fields
// following an already-consumed "\#" token: a declared byte length, then
// that many bytes of base16. Used both as the universal escape hatch for
// any type and as the sole grammar for types this package has no
// dedicated parser for.
func (p *Parser) parseGenericRData(f *File) ([]byte, Result) {
	lenTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	n, err := strconv.ParseUint(string(lenTok.Text), 10, 16)
	if err != nil {
		return nil, p.fail(SyntaxError, f, "invalid generic RDATA length %q", lenTok.Text)
	}

	var out []byte
	for uint64(len(out)) < n {
		tok, ok, res := p.readField(f)
		if res != Success {
			return nil, res
		}
		if !ok {
			return nil, p.fail(SyntaxError, f, "generic RDATA shorter than declared length %d", n)
		}
		b, ok := parseHex(string(tok.Text))
		if !ok {
			return nil, p.fail(SyntaxError, f, "invalid hex in generic RDATA %q", tok.Text)
		}
		out = append(out, b...)
	}
	if uint64(len(out)) != n {
		return nil, p.fail(SyntaxError, f, "generic RDATA longer than declared length %d", n)
	}
	return out, Success
}

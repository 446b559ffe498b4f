package zone

import (
	"encoding/binary"
	"strconv"
)

func init() {
	registerRR("NAPTR", parseNAPTR)
}

// parseNAPTR implements RFC 3403 §4.1: order, preference (uint16 each),
// then flags/services/regexp as <character-string>s, then a replacement
// domain name.
func parseNAPTR(p *Parser, f *File) ([]byte, Result) {
	var out []byte
	for _, field := range []string{"order", "preference"} {
		tok, res := p.nextFieldToken(f)
		if res != Success {
			return nil, res
		}
		v, err := strconv.ParseUint(string(tok.Text), 10, 16)
		if err != nil {
			return nil, p.fail(SyntaxError, f, "invalid NAPTR %s %q", field, tok.Text)
		}
		out = binary.BigEndian.AppendUint16(out, uint16(v))
	}

	for _, field := range []string{"flags", "services", "regexp"} {
		tok, res := p.nextFieldToken(f)
		if res != Success {
			return nil, res
		}
		seg, ok := parseCharString(tok.Text)
		if !ok {
			return nil, p.fail(SyntaxError, f, "invalid NAPTR %s %q", field, tok.Text)
		}
		out = append(out, seg...)
	}

	replTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	repl, ok := parseName(string(replTok.Text), f.origin)
	if !ok {
		return nil, p.fail(SyntaxError, f, "invalid NAPTR replacement %q", replTok.Text)
	}
	out = append(out, repl...)
	return out, Success
}

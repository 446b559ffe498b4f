package zone

import (
	"encoding/binary"
	"strconv"
)

func init() {
	registerRR("SOA", parseSOA)
}

// parseSOA implements RFC 1035 §3.3.13: MNAME, RNAME, then five 32-bit
// integers (serial, refresh, retry, expire, minimum), the latter four
// accepting the same pretty-TTL suffixes $TTL does when enabled.
func parseSOA(p *Parser, f *File) ([]byte, Result) {
	mname, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	mnameWire, ok := parseName(string(mname.Text), f.origin)
	if !ok {
		return nil, p.fail(SyntaxError, f, "invalid SOA MNAME %q", mname.Text)
	}

	rname, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	rnameWire, ok := parseName(string(rname.Text), f.origin)
	if !ok {
		return nil, p.fail(SyntaxError, f, "invalid SOA RNAME %q", rname.Text)
	}

	out := append([]byte{}, mnameWire...)
	out = append(out, rnameWire...)

	serialTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	serial, err := strconv.ParseUint(string(serialTok.Text), 10, 32)
	if err != nil {
		return nil, p.fail(SyntaxError, f, "invalid SOA serial %q", serialTok.Text)
	}
	out = binary.BigEndian.AppendUint32(out, uint32(serial))

	for _, field := range []string{"refresh", "retry", "expire", "minimum"} {
		tok, res := p.nextFieldToken(f)
		if res != Success {
			return nil, res
		}
		v, ok, rangeErr := parseTTL(string(tok.Text), p.opts.PrettyTTLs)
		if !ok {
			return nil, p.fail(SyntaxError, f, "invalid SOA %s %q", field, tok.Text)
		}
		if rangeErr {
			return nil, p.fail(SemanticError, f, "SOA %s %q exceeds 2^31-1", field, tok.Text)
		}
		out = binary.BigEndian.AppendUint32(out, v)
	}

	return out, Success
}

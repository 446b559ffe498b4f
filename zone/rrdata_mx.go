package zone

import (
	"encoding/binary"
	"strconv"
)

func init() {
	registerRR("MX", parsePrefNameRR)
	registerRR("KX", parsePrefNameRR)
	registerRR("AFSDB", parsePrefNameRR)
	registerRR("RP", parseTwoNameRR)
	registerRR("MINFO", parseTwoNameRR)
}

// parsePrefNameRR handles the "uint16 preference/subtype, then one domain
// name" shape shared by MX (RFC 1035 §3.3.9), KX (RFC 2230) and AFSDB
// (RFC 1183 §1).
func parsePrefNameRR(p *Parser, f *File) ([]byte, Result) {
	prefTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	pref, err := strconv.ParseUint(string(prefTok.Text), 10, 16)
	if err != nil {
		return nil, p.fail(SyntaxError, f, "invalid preference %q", prefTok.Text)
	}

	nameTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	nameWire, ok := parseName(string(nameTok.Text), f.origin)
	if !ok {
		return nil, p.fail(SyntaxError, f, "invalid domain name %q", nameTok.Text)
	}

	out := binary.BigEndian.AppendUint16(nil, uint16(pref))
	out = append(out, nameWire...)
	return out, Success
}

// parseTwoNameRR handles RDATA that is exactly two consecutive domain
// names: RP (RFC 1183 §2.2) and MINFO (RFC 1035 §3.3.7).
func parseTwoNameRR(p *Parser, f *File) ([]byte, Result) {
	var out []byte
	for i := 0; i < 2; i++ {
		tok, res := p.nextFieldToken(f)
		if res != Success {
			return nil, res
		}
		n, ok := parseName(string(tok.Text), f.origin)
		if !ok {
			return nil, p.fail(SyntaxError, f, "invalid domain name %q", tok.Text)
		}
		out = append(out, n...)
	}
	return out, Success
}

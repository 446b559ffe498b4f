package zone

import (
	"encoding/binary"
	"strconv"
)

func init() {
	registerRR("SRV", parseSRV)
}

// parseSRV implements RFC 2782: priority, weight, port (each uint16), then
// the target domain name.
func parseSRV(p *Parser, f *File) ([]byte, Result) {
	var nums [3]uint16
	for i, field := range []string{"priority", "weight", "port"} {
		tok, res := p.nextFieldToken(f)
		if res != Success {
			return nil, res
		}
		v, err := strconv.ParseUint(string(tok.Text), 10, 16)
		if err != nil {
			return nil, p.fail(SyntaxError, f, "invalid SRV %s %q", field, tok.Text)
		}
		nums[i] = uint16(v)
	}

	targetTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	target, ok := parseName(string(targetTok.Text), f.origin)
	if !ok {
		return nil, p.fail(SyntaxError, f, "invalid SRV target %q", targetTok.Text)
	}

	var out []byte
	for _, n := range nums {
		out = binary.BigEndian.AppendUint16(out, n)
	}
	out = append(out, target...)
	return out, Success
}

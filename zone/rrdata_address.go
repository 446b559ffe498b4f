package zone

import "strconv"

func init() {
	registerRR("A", parseA)
	registerRR("AAAA", parseAAAA)
	registerRR("WKS", parseWKS)
	restrictClass("WKS", ClassIN)
}

func parseA(p *Parser, f *File) ([]byte, Result) {
	tok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	b, ok := parseIPv4(string(tok.Text))
	if !ok {
		return nil, p.fail(SyntaxError, f, "invalid A address %q", tok.Text)
	}
	return b, Success
}

func parseAAAA(p *Parser, f *File) ([]byte, Result) {
	tok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	b, ok := parseIPv6(string(tok.Text))
	if !ok {
		return nil, p.fail(SyntaxError, f, "invalid AAAA address %q", tok.Text)
	}
	return b, Success
}

// parseWKS handles the legacy WKS record (RFC 1035 §3.4.2): an address, a
// protocol number, and a space-separated list of numeric port numbers
// rendered as a bitmap; service mnemonics are not accepted.
func parseWKS(p *Parser, f *File) ([]byte, Result) {
	addrTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	addr, ok := parseIPv4(string(addrTok.Text))
	if !ok {
		return nil, p.fail(SyntaxError, f, "invalid WKS address %q", addrTok.Text)
	}

	protoTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	proto, err := strconv.ParseUint(string(protoTok.Text), 10, 8)
	if err != nil {
		return nil, p.fail(SyntaxError, f, "invalid WKS protocol %q", protoTok.Text)
	}

	var bitmap []byte
	for {
		tok, ok, res := p.readField(f)
		if res != Success {
			return nil, res
		}
		if !ok {
			break
		}
		port, err := strconv.ParseUint(string(tok.Text), 10, 16)
		if err != nil {
			return nil, p.fail(SyntaxError, f, "invalid WKS service %q", tok.Text)
		}
		byteIdx := port / 8
		for uint64(len(bitmap)) <= byteIdx {
			bitmap = append(bitmap, 0)
		}
		bitmap[byteIdx] |= 1 << (7 - port%8)
	}

	out := append([]byte{}, addr...)
	out = append(out, byte(proto))
	out = append(out, bitmap...)
	return out, Success
}

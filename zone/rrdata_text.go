package zone

func init() {
	registerRR("TXT", parseTXT)
	registerRR("SPF", parseTXT)
	registerRR("HINFO", parseHINFO)
}

// parseTXT encodes one or more <character-string>s (RFC 1035 §3.3.14;
// SPF, RFC 4408 §3.1.1, reuses the same grammar) as their concatenated
// wire form, each prefixed with its own length byte.
func parseTXT(p *Parser, f *File) ([]byte, Result) {
	var out []byte
	first := true
	for {
		tok, ok, res := p.readField(f)
		if res != Success {
			return nil, res
		}
		if !ok {
			if first {
				return nil, p.fail(SyntaxError, f, "TXT record requires at least one string")
			}
			break
		}
		first = false
		seg, ok := parseCharString(tok.Text)
		if !ok {
			return nil, p.fail(SyntaxError, f, "invalid character-string %q", tok.Text)
		}
		out = append(out, seg...)
	}
	return out, Success
}

// parseHINFO encodes the CPU and OS <character-string> pair (RFC 1035
// §3.3.2).
func parseHINFO(p *Parser, f *File) ([]byte, Result) {
	var out []byte
	for _, field := range []string{"CPU", "OS"} {
		tok, res := p.nextFieldToken(f)
		if res != Success {
			return nil, res
		}
		seg, ok := parseCharString(tok.Text)
		if !ok {
			return nil, p.fail(SyntaxError, f, "invalid HINFO %s %q", field, tok.Text)
		}
		out = append(out, seg...)
	}
	return out, Success
}

package zone

func init() {
	registerRR("NS", parseSingleName)
	registerRR("CNAME", parseSingleName)
	registerRR("PTR", parseSingleName)
	registerRR("DNAME", parseSingleName)
}

// parseSingleName handles every RR type whose entire RDATA is one domain
// name (NS, CNAME, PTR, DNAME).
func parseSingleName(p *Parser, f *File) ([]byte, Result) {
	tok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	n, ok := parseName(string(tok.Text), f.origin)
	if !ok {
		return nil, p.fail(SyntaxError, f, "invalid domain name %q", tok.Text)
	}
	return n, Success
}

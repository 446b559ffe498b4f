package zone

import "strconv"

func init() {
	registerRR("CAA", parseCAA)
}

// parseCAA implements RFC 6844 §5.1: a one-byte flags field, a tag
// rendered as a <character-string>, then the value verbatim for the
// remainder of the record (not length-prefixed, unlike every other
// character-string field).
func parseCAA(p *Parser, f *File) ([]byte, Result) {
	flagTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	flag, err := strconv.ParseUint(string(flagTok.Text), 10, 8)
	if err != nil {
		return nil, p.fail(SyntaxError, f, "invalid CAA flags %q", flagTok.Text)
	}

	tagTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	tag, ok := unescapeText(tagTok.Text)
	if !ok || len(tag) > 255 {
		return nil, p.fail(SyntaxError, f, "invalid CAA tag %q", tagTok.Text)
	}

	valueTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	value, ok := unescapeText(valueTok.Text)
	if !ok {
		return nil, p.fail(SyntaxError, f, "invalid CAA value %q", valueTok.Text)
	}

	out := []byte{byte(flag), byte(len(tag))}
	out = append(out, tag...)
	out = append(out, value...)
	return out, Success
}

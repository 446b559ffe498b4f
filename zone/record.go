package zone

// parseRecord implements spec.md §4.4's owner/TTL/class/type recognizer:
// the first field on a "new" line (one that began in column 1) is always
// an owner name; a line continuing a blank-prefixed record inherits the
// previous owner, and the first field instead begins the
// [TTL] [class] type rdata... sequence.
func (p *Parser) parseRecord(first Token, f *File) Result {
	var owner Name
	haveNextField := false
	var tok Token

	if f.lineStartAdjacent {
		n, ok := parseName(string(first.Text), f.origin)
		if !ok {
			return p.fail(SyntaxError, f, "invalid owner name %q", first.Text)
		}
		owner = n
		f.owner = owner
		f.ownerSet = true
	} else {
		if !f.ownerSet {
			return p.fail(SyntaxError, f, "record has no owner and none inherited")
		}
		owner = f.owner
		tok = first
		haveNextField = true
	}

	ttl := f.ttl
	class := f.class
	haveTTL := false
	haveClass := false

	if !haveNextField {
		t, res := p.nextFieldToken(f)
		if res != Success {
			return res
		}
		tok = t
	}

	// up to two of [TTL] [class] may precede the type, in either order,
	// each appearing at most once (RFC 1035 §5.1).
	for i := 0; i < 2; i++ {
		text := string(tok.Text)
		if !haveTTL {
			if v, ok, rangeErr := parseTTL(text, p.opts.PrettyTTLs); ok {
				if rangeErr {
					return p.fail(SemanticError, f, "TTL value %q exceeds 2^31-1", text)
				}
				ttl = v
				haveTTL = true
				t, res := p.nextFieldToken(f)
				if res != Success {
					return res
				}
				tok = t
				continue
			}
		}
		if !haveClass {
			if c, ok := lookupClass(text); ok {
				class = c
				haveClass = true
				t, res := p.nextFieldToken(f)
				if res != Success {
					return res
				}
				tok = t
				continue
			}
		}
		break
	}

	rtype, ok := lookupType(string(tok.Text))
	if !ok {
		return p.fail(SyntaxError, f, "unknown record type %q", tok.Text)
	}
	f.rtype = rtype
	f.typeSet = true
	f.ttl = ttl
	f.class = class

	rdata, res := p.parseRData(f, rtype, class)
	if res != Success {
		return res
	}

	if res := p.consumeRestOfLine(f); res != Success {
		return res
	}

	// the record is accepted: any line count deferred by a parenthesized
	// group (zone/token.go's tokRightParen case) now counts.
	f.line += f.deferredLines
	f.deferredLines = 0

	return p.emit(f, owner, rtype, class, ttl, rdata)
}

// parseRData dispatches to the per-type RDATA parser, or to the RFC 3597
// generic form when the author explicitly wrote the "\#" generic escape; a
// type with no registered parser accepts only the generic form. Once RDATA is
// assembled, either path runs the type's permitted-class check and
// validator (spec.md §4.6), since both apply to the record's semantics
// regardless of which presentation form produced the octets.
func (p *Parser) parseRData(f *File, rtype Type, class Class) ([]byte, Result) {
	desc, hasDesc := rrTable[rtype]

	tok, res := p.peekFieldToken(f)
	generic := res == Success && tok.Kind != tokLineFeed && tok.Kind != tokEOF && string(tok.Text) == "\\#"

	var rdata []byte
	if generic {
		p.nextFieldToken(f) // consume "\#"
		rd, res := p.parseGenericRData(f)
		if res != Success {
			return nil, res
		}
		rdata = rd
	} else {
		if !hasDesc {
			return nil, p.fail(NotImplemented, f, "no RDATA grammar for type %s; use the \\# generic form", typeMnemonic(rtype))
		}
		rd, res := desc.parse(p, f)
		if res != Success {
			return nil, res
		}
		rdata = rd
	}

	if hasDesc {
		if len(desc.classes) > 0 {
			permitted := false
			for _, c := range desc.classes {
				if c == class {
					permitted = true
					break
				}
			}
			if !permitted {
				return nil, p.fail(SemanticError, f, "%s not permitted under class %s", typeMnemonic(rtype), classMnemonic(class))
			}
		}
		if desc.validate != nil {
			if res := desc.validate(p, f, class, rdata); res != Success {
				return nil, res
			}
		}
	}

	return rdata, Success
}

package zone

// rdataParseFunc parses one record's RDATA fields from the token stream,
// up to (but not including) the terminating LINE_FEED/EOF, and returns its
// wire encoding.
type rdataParseFunc func(p *Parser, f *File) ([]byte, Result)

// rdataValidateFunc walks the assembled RDATA octet stream after parsing,
// checking constraints that span more than one field (digest lengths keyed
// off an algorithm octet, cross-field key references, and the like).
type rdataValidateFunc func(p *Parser, f *File, class Class, rdata []byte) Result

type rrDescriptor struct {
	typ Type
	// classes lists the permitted classes for this type; nil means every
	// class is permitted (true of everything but WKS).
	classes  []Class
	parse    rdataParseFunc
	validate rdataValidateFunc
}

// rrTable maps a wire type code to its RDATA grammar. A type with no
// entry can still appear in a zone file, but only in the RFC 3597 generic
// "\# <len> <hex>" form (zone/rrdata_generic.go); parseRData enforces
// that in record.go.
var rrTable = map[Type]rrDescriptor{}

// registerRR registers the RDATA parser for a mnemonic, with an optional
// post-assembly validator (spec.md §4.6's "after RDATA assembly the
// validator walks the octet stream").
func registerRR(name string, parse rdataParseFunc, validate ...rdataValidateFunc) {
	t, ok := typeByName[name]
	if !ok {
		panic("zone: registerRR: unknown mnemonic " + name)
	}
	d := rrDescriptor{typ: t, parse: parse}
	if len(validate) > 0 {
		d.validate = validate[0]
	}
	rrTable[t] = d
}

// restrictClass limits an already-registered type to the given permitted
// classes. WKS is the only type this parser knows that is class-restricted
// (original_source/src/generic/types.h ties it to ZONE_IN); everything else
// stays class-agnostic.
func restrictClass(name string, classes ...Class) {
	t, ok := typeByName[name]
	if !ok {
		panic("zone: restrictClass: unknown mnemonic " + name)
	}
	d := rrTable[t]
	d.classes = classes
	rrTable[t] = d
}

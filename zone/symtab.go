package zone

import (
	"strconv"
	"strings"
)

// mnemonic pairs a presentation-form name with its wire code. The tables
// below are constant: built once at package init into a case-folded map,
// never mutated afterwards, matching spec.md §4.8 and §9's "compile-time
// constant tables (sorted slices of (name, code)) with no mutable state".
type mnemonic struct {
	name string
	code uint16
}

var typeTable = []mnemonic{
	{"A", 1}, {"NS", 2}, {"CNAME", 5}, {"SOA", 6}, {"WKS", 11}, {"PTR", 12},
	{"HINFO", 13}, {"MINFO", 14}, {"MX", 15}, {"TXT", 16}, {"RP", 17},
	{"AFSDB", 18}, {"AAAA", 28}, {"LOC", 29}, {"SRV", 33}, {"NAPTR", 35},
	{"KX", 36}, {"CERT", 37}, {"DNAME", 39}, {"APL", 42}, {"DS", 43},
	{"SSHFP", 44}, {"IPSECKEY", 45}, {"RRSIG", 46}, {"NSEC", 47},
	{"DNSKEY", 48}, {"NSEC3", 50}, {"NSEC3PARAM", 51}, {"TLSA", 52},
	{"SMIMEA", 53}, {"CDS", 59}, {"CDNSKEY", 60}, {"OPENPGPKEY", 61},
	{"CSYNC", 62}, {"ZONEMD", 63}, {"SVCB", 64}, {"HTTPS", 65},
	{"SPF", 99}, {"CAA", 257},
}

var classTable = []mnemonic{
	{"IN", uint16(ClassIN)},
	{"CH", uint16(ClassCH)},
	{"CS", 2},
	{"HS", uint16(ClassHS)},
	{"NONE", uint16(ClassNONE)},
	{"ANY", uint16(ClassANY)},
}

type typeEntry struct {
	name string
	code Type
}

type classEntry struct {
	name string
	code Class
}

var (
	typeByName  map[string]Type
	typeByCode  map[Type]typeEntry
	classByName map[string]Class
	classByCode map[Class]classEntry
)

func init() {
	typeByName = make(map[string]Type, len(typeTable))
	typeByCode = make(map[Type]typeEntry, len(typeTable))
	for _, m := range typeTable {
		t := Type(m.code)
		typeByName[m.name] = t
		typeByCode[t] = typeEntry{name: m.name, code: t}
	}

	classByName = make(map[string]Class, len(classTable))
	classByCode = make(map[Class]classEntry, len(classTable))
	for _, m := range classTable {
		c := Class(m.code)
		classByName[m.name] = c
		classByCode[c] = classEntry{name: m.name, code: c}
	}
}

// lookupType performs a case-insensitive mnemonic lookup, falling back to
// the RFC 3597 TYPE<n> numeric form. ok is false if neither matches.
func lookupType(token string) (Type, bool) {
	upper := strings.ToUpper(token)
	if t, ok := typeByName[upper]; ok {
		return t, true
	}
	if n, ok := parseGenericCode(upper, "TYPE"); ok {
		return Type(n), true
	}
	return 0, false
}

// lookupClass performs a case-insensitive mnemonic lookup, falling back
// to the RFC 3597 CLASS<n> numeric form.
func lookupClass(token string) (Class, bool) {
	upper := strings.ToUpper(token)
	if c, ok := classByName[upper]; ok {
		return c, true
	}
	if n, ok := parseGenericCode(upper, "CLASS"); ok {
		return Class(n), true
	}
	return 0, false
}

func parseGenericCode(upper, prefix string) (uint16, bool) {
	if !strings.HasPrefix(upper, prefix) {
		return 0, false
	}
	digits := upper[len(prefix):]
	if digits == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(digits, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}

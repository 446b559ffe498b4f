package zone

import (
	"encoding/binary"
	"strconv"
	"strings"
)

func init() {
	registerRR("APL", parseAPL)
}

// parseAPL implements RFC 3123 §4: a variadic list of
// "[!]afi:address/prefix" items, each an address family (1=IPv4, 2=IPv6),
// a prefix length, a negation bit, and the minimal-length address prefix.
func parseAPL(p *Parser, f *File) ([]byte, Result) {
	var out []byte
	for {
		tok, ok, res := p.readField(f)
		if res != Success {
			return nil, res
		}
		if !ok {
			break
		}
		item, ok := parseAPLItem(string(tok.Text))
		if !ok {
			return nil, p.fail(SyntaxError, f, "invalid APL item %q", tok.Text)
		}
		out = append(out, item...)
	}
	return out, Success
}

func parseAPLItem(s string) ([]byte, bool) {
	negate := false
	if strings.HasPrefix(s, "!") {
		negate = true
		s = s[1:]
	}
	afiStr, rest, ok := strings.Cut(s, ":")
	if !ok {
		return nil, false
	}
	addrStr, prefixStr, ok := strings.Cut(rest, "/")
	if !ok {
		return nil, false
	}
	afi, err := strconv.ParseUint(afiStr, 10, 16)
	if err != nil {
		return nil, false
	}
	prefix, err := strconv.ParseUint(prefixStr, 10, 8)
	if err != nil {
		return nil, false
	}

	var addr []byte
	switch afi {
	case 1:
		b, ok := parseIPv4(addrStr)
		if !ok || prefix > 32 {
			return nil, false
		}
		addr = b
	case 2:
		b, ok := parseIPv6(addrStr)
		if !ok || prefix > 128 {
			return nil, false
		}
		addr = b
	default:
		return nil, false
	}

	// trim trailing zero bytes: afdlength covers only the significant
	// prefix (RFC 3123 §4's "minimal-length" requirement).
	end := len(addr)
	for end > 0 && addr[end-1] == 0 {
		end--
	}
	addr = addr[:end]

	afdlength := byte(len(addr))
	if negate {
		afdlength |= 0x80
	}

	out := binary.BigEndian.AppendUint16(nil, uint16(afi))
	out = append(out, byte(prefix), afdlength)
	return append(out, addr...), true
}

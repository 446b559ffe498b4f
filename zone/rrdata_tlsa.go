package zone

import (
	"encoding/binary"
	"strconv"
)

func init() {
	registerRR("TLSA", parseTLSALike)
	registerRR("SMIMEA", parseTLSALike)
	registerRR("SSHFP", parseSSHFP)
	registerRR("OPENPGPKEY", parseOPENPGPKEY)
	registerRR("CERT", parseCERT)
	registerRR("IPSECKEY", parseIPSECKEY)
}

// parseTLSALike handles TLSA (RFC 6698 §2.1) and SMIMEA (RFC 8162 §2),
// which share an identical (usage, selector, matching type, hex data)
// shape.
func parseTLSALike(p *Parser, f *File) ([]byte, Result) {
	usage, selector, res := p.readUint8Pair(f)
	if res != Success {
		return nil, res
	}
	matchTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	match, err := strconv.ParseUint(string(matchTok.Text), 10, 8)
	if err != nil {
		return nil, p.fail(SyntaxError, f, "invalid matching type %q", matchTok.Text)
	}
	data, res := p.readHexToEndOfLine(f)
	if res != Success {
		return nil, res
	}
	out := []byte{usage, selector, byte(match)}
	return append(out, data...), Success
}

// parseSSHFP implements RFC 4255 §3.1: algorithm, fingerprint type
// (uint8 each), then the fingerprint as hex.
func parseSSHFP(p *Parser, f *File) ([]byte, Result) {
	algo, fpType, res := p.readUint8Pair(f)
	if res != Success {
		return nil, res
	}
	fp, res := p.readHexToEndOfLine(f)
	if res != Success {
		return nil, res
	}
	return append([]byte{algo, fpType}, fp...), Success
}

// parseOPENPGPKEY implements RFC 7929 §2.3: the RDATA is simply the raw
// OpenPGP transferable public key, base64-encoded, with no leading
// fixed-width fields.
func parseOPENPGPKEY(p *Parser, f *File) ([]byte, Result) {
	return p.readBase64ToEndOfLine(f)
}

// parseCERT implements RFC 4398 §2: certificate type (mnemonic or
// numeric), key tag, algorithm, then base64 certificate data.
func parseCERT(p *Parser, f *File) ([]byte, Result) {
	typeTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	certType, ok := lookupCertType(string(typeTok.Text))
	if !ok {
		return nil, p.fail(SyntaxError, f, "invalid CERT type %q", typeTok.Text)
	}

	keyTag, res := p.readUint16Field(f, "key tag")
	if res != Success {
		return nil, res
	}
	algoTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	algo, err := strconv.ParseUint(string(algoTok.Text), 10, 8)
	if err != nil {
		return nil, p.fail(SyntaxError, f, "invalid CERT algorithm %q", algoTok.Text)
	}
	cert, res := p.readBase64ToEndOfLine(f)
	if res != Success {
		return nil, res
	}

	out := binary.BigEndian.AppendUint16(nil, certType)
	out = binary.BigEndian.AppendUint16(out, keyTag)
	out = append(out, byte(algo))
	return append(out, cert...), Success
}

// lookupCertType resolves a CERT type mnemonic (RFC 4398 §2.1) or its
// generic "TYPE<n>" numeric form.
func lookupCertType(s string) (uint16, bool) {
	switch s {
	case "PKIX":
		return 1, true
	case "SPKI":
		return 2, true
	case "PGP":
		return 3, true
	case "IPKIX":
		return 4, true
	case "ISPKI":
		return 5, true
	case "IPGP":
		return 6, true
	case "ACPKIX":
		return 7, true
	case "IACPKIX":
		return 8, true
	case "URI":
		return 253, true
	case "OID":
		return 254, true
	}
	if n, ok := parseGenericCode(s, "TYPE"); ok {
		return n, true
	}
	return 0, false
}

// parseIPSECKEY implements RFC 4025 §2.1: precedence, gateway type,
// algorithm (uint8 each), then a gateway whose presentation form depends
// on the gateway type (none/IPv4/IPv6/domain name), then the base64
// public key.
func parseIPSECKEY(p *Parser, f *File) ([]byte, Result) {
	precTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	prec, err := strconv.ParseUint(string(precTok.Text), 10, 8)
	if err != nil {
		return nil, p.fail(SyntaxError, f, "invalid IPSECKEY precedence %q", precTok.Text)
	}

	gwType, algo, res := p.readUint8Pair(f)
	if res != Success {
		return nil, res
	}

	gwTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	var gateway []byte
	switch gwType {
	case 0:
		if string(gwTok.Text) != "." {
			return nil, p.fail(SyntaxError, f, "IPSECKEY gateway type 0 requires \".\"")
		}
	case 1:
		b, ok := parseIPv4(string(gwTok.Text))
		if !ok {
			return nil, p.fail(SyntaxError, f, "invalid IPSECKEY IPv4 gateway %q", gwTok.Text)
		}
		gateway = b
	case 2:
		b, ok := parseIPv6(string(gwTok.Text))
		if !ok {
			return nil, p.fail(SyntaxError, f, "invalid IPSECKEY IPv6 gateway %q", gwTok.Text)
		}
		gateway = b
	case 3:
		n, ok := parseName(string(gwTok.Text), f.origin)
		if !ok {
			return nil, p.fail(SyntaxError, f, "invalid IPSECKEY gateway name %q", gwTok.Text)
		}
		gateway = n
	default:
		return nil, p.fail(SyntaxError, f, "invalid IPSECKEY gateway type %d", gwType)
	}

	key, res := p.readBase64ToEndOfLine(f)
	if res != Success {
		return nil, res
	}

	out := []byte{byte(prec), gwType, algo}
	out = append(out, gateway...)
	return append(out, key...), Success
}

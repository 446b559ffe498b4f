package zone

import (
	"encoding/binary"
	"sort"
	"strconv"
	"strings"
)

// well-known SvcParamKeys, RFC 9460 §14.3.2.
const (
	svcParamMandatory     = 0
	svcParamALPN          = 1
	svcParamNoDefaultALPN = 2
	svcParamPort          = 3
	svcParamIPv4Hint      = 4
	svcParamECH           = 5
	svcParamIPv6Hint      = 6
	svcParamDoHPath       = 7
	svcParamOHTTP         = 8
)

// svcParam is one decoded key=value pair awaiting wire encoding, kept
// ordered only incidentally; encoding re-sorts by key unless
// Options.Secondary is set.
type svcParam struct {
	key   uint16
	value []byte
}

// parseSvcParam decodes one SvcParamKey=SvcParamValue token (RFC 9460
// §2.1) into its wire value encoding. Bare keys with no "=value" (e.g.
// "no-default-alpn") are valid and produce a zero-length value.
func parseSvcParam(token string) (svcParam, bool) {
	key, rest, hasValue := strings.Cut(token, "=")
	keyCode, ok := lookupSvcParamKey(key)
	if !ok {
		return svcParam{}, false
	}
	if !hasValue {
		return svcParam{key: keyCode}, true
	}
	value := strings.Trim(rest, "\"")

	switch keyCode {
	case svcParamPort:
		n, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return svcParam{}, false
		}
		buf := make([]byte, 2)
		binary.BigEndian.PutUint16(buf, uint16(n))
		return svcParam{key: keyCode, value: buf}, true

	case svcParamIPv4Hint:
		var out []byte
		for _, addr := range strings.Split(value, ",") {
			b, ok := parseIPv4(addr)
			if !ok {
				return svcParam{}, false
			}
			out = append(out, b...)
		}
		return svcParam{key: keyCode, value: out}, true

	case svcParamIPv6Hint:
		var out []byte
		for _, addr := range strings.Split(value, ",") {
			b, ok := parseIPv6(addr)
			if !ok {
				return svcParam{}, false
			}
			out = append(out, b...)
		}
		return svcParam{key: keyCode, value: out}, true

	case svcParamALPN:
		var out []byte
		for _, id := range strings.Split(value, ",") {
			if id == "" || len(id) > 255 {
				return svcParam{}, false
			}
			out = append(out, byte(len(id)))
			out = append(out, id...)
		}
		return svcParam{key: keyCode, value: out}, true

	case svcParamECH:
		b, ok := parseBase64(value)
		if !ok {
			return svcParam{}, false
		}
		return svcParam{key: keyCode, value: b}, true

	case svcParamDoHPath:
		// RFC 9461 §5: a URI Template, carried as opaque text.
		b, ok := unescapeText([]byte(value))
		if !ok {
			return svcParam{}, false
		}
		return svcParam{key: keyCode, value: b}, true

	case svcParamOHTTP:
		// RFC 9540 §3: a presence flag only, never a value.
		return svcParam{}, false

	case svcParamMandatory:
		var out []byte
		for _, k := range strings.Split(value, ",") {
			kc, ok := lookupSvcParamKey(k)
			if !ok {
				return svcParam{}, false
			}
			buf := make([]byte, 2)
			binary.BigEndian.PutUint16(buf, kc)
			out = append(out, buf...)
		}
		return svcParam{key: keyCode, value: out}, true

	default:
		// opaque value, stored verbatim
		return svcParam{key: keyCode, value: []byte(value)}, true
	}
}

// lookupSvcParamKey resolves a SvcParamKey mnemonic or the generic
// "keyNNNNN" numeric form (RFC 9460 §2.1).
func lookupSvcParamKey(s string) (uint16, bool) {
	switch strings.ToLower(s) {
	case "mandatory":
		return svcParamMandatory, true
	case "alpn":
		return svcParamALPN, true
	case "no-default-alpn":
		return svcParamNoDefaultALPN, true
	case "port":
		return svcParamPort, true
	case "ipv4hint":
		return svcParamIPv4Hint, true
	case "ech":
		return svcParamECH, true
	case "ipv6hint":
		return svcParamIPv6Hint, true
	case "dohpath":
		return svcParamDoHPath, true
	case "ohttp":
		return svcParamOHTTP, true
	}
	if n, ok := parseGenericCode(strings.ToLower(s), "key"); ok {
		return n, true
	}
	return 0, false
}

// validateMandatorySvcParams implements RFC 9460 §8's requirement that
// every key listed in a "mandatory" SvcParam also appear, separately, among
// the record's other SvcParams.
func validateMandatorySvcParams(params []svcParam) bool {
	present := make(map[uint16]bool, len(params))
	for _, p := range params {
		present[p.key] = true
	}
	for _, p := range params {
		if p.key != svcParamMandatory {
			continue
		}
		for i := 0; i+1 < len(p.value); i += 2 {
			if !present[binary.BigEndian.Uint16(p.value[i:i+2])] {
				return false
			}
		}
	}
	return true
}

// encodeSvcParams renders the accumulated params to wire form, sorted by
// ascending key as RFC 9460 §2.1 requires ("non-primary" zone transfer
// agents, i.e. Options.Secondary, may relax this and leave author order in
// place, matching RFC 9460 §2.1's operator latitude for secondaries).
func encodeSvcParams(params []svcParam, secondary bool) ([]byte, bool) {
	if !secondary {
		sort.SliceStable(params, func(i, j int) bool { return params[i].key < params[j].key })
		for i := 1; i < len(params); i++ {
			if params[i].key == params[i-1].key {
				return nil, false // duplicate key, RFC 9460 §2.2
			}
		}
	}
	var out []byte
	for _, p := range params {
		buf := make([]byte, 4)
		binary.BigEndian.PutUint16(buf[0:2], p.key)
		binary.BigEndian.PutUint16(buf[2:4], uint16(len(p.value)))
		out = append(out, buf...)
		out = append(out, p.value...)
	}
	return out, true
}

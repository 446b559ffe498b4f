package zonefile

import (
	"github.com/wfd3/zonescan/zone"
)

// the subset of RR type codes this package decodes into a dedicated
// struct; everything else lands in DNSRecords.Generic. Matches the
// teacher's thirteen supported types (zoneparser/records.go).
const (
	typeA      = 1
	typeNS     = 2
	typeCNAME  = 5
	typeSOA    = 6
	typePTR    = 12
	typeHINFO  = 13
	typeMX     = 15
	typeTXT    = 16
	typeAAAA   = 28
	typeSRV    = 33
	typeNAPTR  = 35
	typeSPF    = 99
	typeCAA    = 257
)

// Options wraps a zone.Options; its Accept, if set, is called after each
// record has been accumulated. ParseFile and ParseString run the core
// parser and return the decoded zone.
type Options struct {
	zone.Options
}

// ParseString parses text and accumulates it into a ZoneData.
func ParseString(opts Options, text string) (*ZoneData, zone.Result) {
	zd := &ZoneData{Metadata: ZoneMetadata{Origin: opts.Origin.String(), TTL: opts.DefaultTTL}}
	o := opts.Options
	o.Accept = zd.accept(o.Accept)
	p := zone.NewParser(o)
	res := p.ParseString(text, nil)
	return zd, res
}

// ParseFile parses path and accumulates it into a ZoneData.
func ParseFile(opts Options, path string) (*ZoneData, zone.Result) {
	zd := &ZoneData{Metadata: ZoneMetadata{Origin: opts.Origin.String(), TTL: opts.DefaultTTL}}
	o := opts.Options
	o.Accept = zd.accept(o.Accept)
	p := zone.NewParser(o)
	res := p.ParseFile(path, nil)
	return zd, res
}

// accept returns an AcceptFunc that decodes each record into zd before
// forwarding to inner (which may be nil).
func (zd *ZoneData) accept(inner zone.AcceptFunc) zone.AcceptFunc {
	return func(p *zone.Parser, owner zone.Name, rtype zone.Type, class zone.Class, ttl uint32, rdata []byte, userData any) int32 {
		zd.Metadata.TTL = ttl
		ownerStr, _, _ := decodeName(owner)
		h := zd.host(ownerStr)
		rr := ResourceRecord{TTL: ttl, Class: classString(uint16(class))}
		h.decodeInto(uint16(rtype), rr, rdata)

		if inner != nil {
			return inner(p, owner, rtype, class, ttl, rdata, userData)
		}
		return 0
	}
}

func (h *HostRecord) decodeInto(rtype uint16, rr ResourceRecord, rdata []byte) {
	switch rtype {
	case typeA:
		if ip, ok := decodeIP(rdata, 4); ok {
			h.Records.A = append(h.Records.A, ARecord{rr, ip})
			return
		}
	case typeAAAA:
		if ip, ok := decodeIP(rdata, 16); ok {
			h.Records.AAAA = append(h.Records.AAAA, AAAARecord{rr, ip})
			return
		}
	case typeCNAME:
		if name, _, ok := decodeName(rdata); ok {
			h.Records.CNAME = append(h.Records.CNAME, CNAMERecord{rr, name})
			return
		}
	case typeNS:
		if name, _, ok := decodeName(rdata); ok {
			h.Records.NS = append(h.Records.NS, NSRecord{rr, name})
			return
		}
	case typePTR:
		if name, _, ok := decodeName(rdata); ok {
			h.Records.PTR = append(h.Records.PTR, PTRRecord{rr, name})
			return
		}
	case typeMX:
		if pref, rest, ok := decodeUint16(rdata); ok {
			if name, _, ok := decodeName(rest); ok {
				h.Records.MX = append(h.Records.MX, MXRecord{rr, pref, name})
				return
			}
		}
	case typeTXT, typeSPF:
		var text string
		b := rdata
		for len(b) > 0 {
			var seg string
			var ok bool
			seg, b, ok = decodeCharString(b)
			if !ok {
				break
			}
			text += seg
		}
		if rtype == typeTXT {
			h.Records.TXT = append(h.Records.TXT, TXTRecord{rr, text})
		} else {
			h.Records.SPF = append(h.Records.SPF, SPFRecord{rr, text})
		}
		return
	case typeHINFO:
		if cpu, rest, ok := decodeCharString(rdata); ok {
			if os, _, ok := decodeCharString(rest); ok {
				h.Records.HINFO = append(h.Records.HINFO, HINFORecord{rr, cpu, os})
				return
			}
		}
	case typeSOA:
		if mname, rest, ok := decodeName(rdata); ok {
			if rname, rest, ok := decodeName(rest); ok {
				var serial, refresh, retry, expire, min uint32
				var ok2 bool
				if serial, rest, ok2 = decodeUint32(rest); ok2 {
					if refresh, rest, ok2 = decodeUint32(rest); ok2 {
						if retry, rest, ok2 = decodeUint32(rest); ok2 {
							if expire, rest, ok2 = decodeUint32(rest); ok2 {
								if min, _, ok2 = decodeUint32(rest); ok2 {
									h.Records.SOA = append(h.Records.SOA, SOARecord{
										rr, mname, rname, serial, refresh, retry, expire, min,
									})
									return
								}
							}
						}
					}
				}
			}
		}
	case typeSRV:
		if pri, rest, ok := decodeUint16(rdata); ok {
			if weight, rest, ok := decodeUint16(rest); ok {
				if port, rest, ok := decodeUint16(rest); ok {
					if target, _, ok := decodeName(rest); ok {
						h.Records.SRV = append(h.Records.SRV, SRVRecord{rr, pri, weight, port, target})
						return
					}
				}
			}
		}
	case typeNAPTR:
		if order, rest, ok := decodeUint16(rdata); ok {
			if pref, rest, ok := decodeUint16(rest); ok {
				if flags, rest, ok := decodeCharString(rest); ok {
					if svc, rest, ok := decodeCharString(rest); ok {
						if re, rest, ok := decodeCharString(rest); ok {
							if repl, _, ok := decodeName(rest); ok {
								h.Records.NAPTR = append(h.Records.NAPTR, NAPTRRecord{rr, order, pref, flags, svc, re, repl})
								return
							}
						}
					}
				}
			}
		}
	case typeCAA:
		if len(rdata) >= 1 {
			flags := rdata[0]
			if tag, rest, ok := decodeCharString(rdata[1:]); ok {
				h.Records.CAA = append(h.Records.CAA, CAARecord{rr, flags, tag, string(rest)})
				return
			}
		}
	}

	h.Records.Generic = append(h.Records.Generic, GenericRecord{rr, rtype, append([]byte(nil), rdata...)})
}

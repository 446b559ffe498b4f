// Package zonefile is a convenience layer over the zone package: it
// accumulates a parsed zone into an in-memory, queryable model, expands
// the BIND $GENERATE extension the core tokenizer correctly rejects, and
// adapts parsed records to other ecosystem shapes (miekg/dns, a TOML
// config file, a concurrent owner index).
package zonefile

import "net"

// ResourceRecord is the TTL/class common to every decoded record.
type ResourceRecord struct {
	TTL   uint32
	Class string
}

// ARecord is a decoded A record.
type ARecord struct {
	ResourceRecord
	Address net.IP
}

// AAAARecord is a decoded AAAA record.
type AAAARecord struct {
	ResourceRecord
	Address net.IP
}

// CNAMERecord is a decoded CNAME record.
type CNAMERecord struct {
	ResourceRecord
	Target string
}

// MXRecord is a decoded MX record.
type MXRecord struct {
	ResourceRecord
	Priority uint16
	Mail     string
}

// TXTRecord is a decoded TXT record.
type TXTRecord struct {
	ResourceRecord
	Text string
}

// NSRecord is a decoded NS record.
type NSRecord struct {
	ResourceRecord
	NameServer string
}

// SOARecord is a decoded SOA record.
type SOARecord struct {
	ResourceRecord
	PrimaryNS  string
	Email      string
	Serial     uint32
	Refresh    uint32
	Retry      uint32
	Expire     uint32
	MinimumTTL uint32
}

// PTRRecord is a decoded PTR record.
type PTRRecord struct {
	ResourceRecord
	Pointer string
}

// SRVRecord is a decoded SRV record.
type SRVRecord struct {
	ResourceRecord
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   string
}

// CAARecord is a decoded CAA record.
type CAARecord struct {
	ResourceRecord
	Flags uint8
	Tag   string
	Value string
}

// HINFORecord is a decoded HINFO record.
type HINFORecord struct {
	ResourceRecord
	CPU string
	OS  string
}

// NAPTRRecord is a decoded NAPTR record.
type NAPTRRecord struct {
	ResourceRecord
	Order       uint16
	Preference  uint16
	Flags       string
	Service     string
	Regexp      string
	Replacement string
}

// SPFRecord is a decoded SPF record (RDATA shares TXT's grammar).
type SPFRecord struct {
	ResourceRecord
	Text string
}

// GenericRecord holds any record of a type not decoded above: its raw
// wire RDATA, for callers that want it untouched. ToRRs in
// zonefile/wire.go does not convert these records.
type GenericRecord struct {
	ResourceRecord
	Type  uint16
	RData []byte
}

// DNSRecords holds every decoded record for one owner name, plus any
// types this package doesn't decode to a dedicated struct.
type DNSRecords struct {
	A       []ARecord
	AAAA    []AAAARecord
	CNAME   []CNAMERecord
	MX      []MXRecord
	TXT     []TXTRecord
	NS      []NSRecord
	SOA     []SOARecord
	PTR     []PTRRecord
	SRV     []SRVRecord
	CAA     []CAARecord
	HINFO   []HINFORecord
	NAPTR   []NAPTRRecord
	SPF     []SPFRecord
	Generic []GenericRecord
}

// HostRecord holds every record seen for one owner name.
type HostRecord struct {
	Owner   string
	Records DNSRecords
}

// ZoneMetadata holds the origin the parse started with (Options.Origin;
// $ORIGIN directives do not update it) and the TTL of the last accepted
// record (Options.DefaultTTL if none), mirroring the teacher's
// zoneparser.ZoneMetadata.
type ZoneMetadata struct {
	Origin string
	TTL    uint32
}

// ZoneData is a parsed zone keyed by owner name in first-seen order.
type ZoneData struct {
	Metadata ZoneMetadata
	owners   []string
	hosts    map[string]*HostRecord
}

// Hosts returns the zone's HostRecords in first-seen order.
func (z *ZoneData) Hosts() []*HostRecord {
	out := make([]*HostRecord, 0, len(z.owners))
	for _, o := range z.owners {
		out = append(out, z.hosts[o])
	}
	return out
}

// Lookup returns the HostRecord for owner, if any.
func (z *ZoneData) Lookup(owner string) (*HostRecord, bool) {
	h, ok := z.hosts[owner]
	return h, ok
}

func (z *ZoneData) host(owner string) *HostRecord {
	if z.hosts == nil {
		z.hosts = make(map[string]*HostRecord)
	}
	h, ok := z.hosts[owner]
	if !ok {
		h = &HostRecord{Owner: owner}
		z.hosts[owner] = h
		z.owners = append(z.owners, owner)
	}
	return h
}

package zonefile

import (
	"fmt"

	"github.com/miekg/dns"
)

// ToRRs renders every record decoded for h into github.com/miekg/dns.RR
// values, for hosts that already depend on that ecosystem (handing
// records to a resolver or authoritative server built on it, a common
// integration seam named in the retrieved pack's vooon-zoneomatic repo).
// Each record is rendered back to one presentation-format line and
// handed to dns.NewRR, rather than hand-assembling dns.RR structs per
// type — the safer, ecosystem-idiomatic conversion path since dns.RR's
// concrete types number in the dozens and the package already owns a
// battle-tested parser for exactly this text.
func (h *HostRecord) ToRRs() ([]dns.RR, error) {
	var rrs []dns.RR
	for _, line := range h.presentationLines() {
		rr, err := dns.NewRR(line)
		if err != nil {
			return nil, fmt.Errorf("converting %q to dns.RR: %w", line, err)
		}
		if rr != nil {
			rrs = append(rrs, rr)
		}
	}
	return rrs, nil
}

func (h *HostRecord) presentationLines() []string {
	var lines []string
	owner := h.Owner

	for _, r := range h.Records.A {
		lines = append(lines, fmt.Sprintf("%s %d %s A %s", owner, r.TTL, r.Class, r.Address))
	}
	for _, r := range h.Records.AAAA {
		lines = append(lines, fmt.Sprintf("%s %d %s AAAA %s", owner, r.TTL, r.Class, r.Address))
	}
	for _, r := range h.Records.CNAME {
		lines = append(lines, fmt.Sprintf("%s %d %s CNAME %s", owner, r.TTL, r.Class, r.Target))
	}
	for _, r := range h.Records.NS {
		lines = append(lines, fmt.Sprintf("%s %d %s NS %s", owner, r.TTL, r.Class, r.NameServer))
	}
	for _, r := range h.Records.PTR {
		lines = append(lines, fmt.Sprintf("%s %d %s PTR %s", owner, r.TTL, r.Class, r.Pointer))
	}
	for _, r := range h.Records.MX {
		lines = append(lines, fmt.Sprintf("%s %d %s MX %d %s", owner, r.TTL, r.Class, r.Priority, r.Mail))
	}
	for _, r := range h.Records.TXT {
		lines = append(lines, fmt.Sprintf("%s %d %s TXT %q", owner, r.TTL, r.Class, r.Text))
	}
	for _, r := range h.Records.SPF {
		lines = append(lines, fmt.Sprintf("%s %d %s SPF %q", owner, r.TTL, r.Class, r.Text))
	}
	for _, r := range h.Records.HINFO {
		lines = append(lines, fmt.Sprintf("%s %d %s HINFO %q %q", owner, r.TTL, r.Class, r.CPU, r.OS))
	}
	for _, r := range h.Records.SOA {
		lines = append(lines, fmt.Sprintf("%s %d %s SOA %s %s %d %d %d %d %d",
			owner, r.TTL, r.Class, r.PrimaryNS, r.Email, r.Serial, r.Refresh, r.Retry, r.Expire, r.MinimumTTL))
	}
	for _, r := range h.Records.SRV {
		lines = append(lines, fmt.Sprintf("%s %d %s SRV %d %d %d %s", owner, r.TTL, r.Class, r.Priority, r.Weight, r.Port, r.Target))
	}
	for _, r := range h.Records.NAPTR {
		lines = append(lines, fmt.Sprintf("%s %d %s NAPTR %d %d %q %q %q %s",
			owner, r.TTL, r.Class, r.Order, r.Preference, r.Flags, r.Service, r.Regexp, r.Replacement))
	}
	for _, r := range h.Records.CAA {
		lines = append(lines, fmt.Sprintf("%s %d %s CAA %d %s %q", owner, r.TTL, r.Class, r.Flags, r.Tag, r.Value))
	}

	return lines
}

// Command zonekea extracts Kea DHCP reservations from TXT records in a
// DNS zone file.
//
// It looks for TXT records prefixed "kea:" followed by comma-separated
// key-value pairs (key and value separated by a space), e.g.:
//
//	host1  IN  A    10.1.2.3
//	host1  IN  TXT  "kea: hw-address aa:bb:cc:dd:ee:ff, client-classes [guest]"
//
// Supported keys are hw-address and client-classes; anything else is a
// fatal error, matching the teacher's mkkea3.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/wfd3/zonescan/zonefile"
)

const keaPrefix = "kea:"

var supportedKeaKeys = map[string]bool{
	"hw-address":     true,
	"client-classes": true,
}

// reservation is one Kea DHCP reservation extracted from a zone.
type reservation struct {
	Hostname string            `json:"hostname"`
	Address  string            `json:"ip-address"`
	Extra    map[string]string `json:"-"`
}

// MarshalJSON flattens Extra's keys alongside hostname/ip-address, so a
// client-classes list renders as a JSON array rather than a quoted string.
func (r reservation) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"hostname":   r.Hostname,
		"ip-address": r.Address,
	}
	for k, v := range r.Extra {
		if k == "client-classes" {
			out[k] = splitBracketList(v)
			continue
		}
		out[k] = v
	}
	return json.Marshal(out)
}

func splitBracketList(bracketed string) []string {
	trimmed := strings.TrimSpace(bracketed)
	trimmed = strings.TrimPrefix(trimmed, "[")
	trimmed = strings.TrimSuffix(trimmed, "]")
	var out []string
	for _, part := range strings.Split(trimmed, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func unescapeTXT(s string) string {
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\\`, `\`)
	return s
}

// splitOutsideBrackets splits s on commas that aren't nested inside a
// [...] list, so "hw-address aa:bb, client-classes [a, b]" keeps the
// bracketed list intact as one field.
func splitOutsideBrackets(s string) []string {
	var result []string
	level := 0
	start := 0
	for i, r := range s {
		switch r {
		case '[':
			level++
		case ']':
			if level > 0 {
				level--
			}
		case ',':
			if level == 0 {
				if part := strings.TrimSpace(s[start:i]); part != "" {
					result = append(result, part)
				}
				start = i + 1
			}
		}
	}
	if start < len(s) {
		if part := strings.TrimSpace(s[start:]); part != "" {
			result = append(result, part)
		}
	}
	return result
}

func parseKeaTXT(txt string) (map[string]string, bool, error) {
	if !strings.HasPrefix(txt, keaPrefix) {
		return nil, false, nil
	}
	txt = strings.TrimSpace(strings.TrimPrefix(txt, keaPrefix))

	data := make(map[string]string)
	for _, pair := range splitOutsideBrackets(txt) {
		kv := strings.SplitN(pair, " ", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		value := strings.TrimSpace(kv[1])
		if !supportedKeaKeys[key] {
			return nil, false, fmt.Errorf("unknown kea directive %q", key)
		}
		data[key] = value
	}
	return data, len(data) > 0, nil
}

func extractReservations(zd *zonefile.ZoneData, network *net.IPNet) ([]reservation, error) {
	var out []reservation
	for _, h := range zd.Hosts() {
		var addr string
		for _, a := range h.Records.A {
			ip := a.Address.String()
			if network != nil && !network.Contains(a.Address) {
				continue
			}
			addr = ip
			break
		}
		if addr == "" {
			continue
		}

		for _, txt := range h.Records.TXT {
			data, ok, err := parseKeaTXT(unescapeTXT(txt.Text))
			if err != nil {
				return nil, fmt.Errorf("%s: %w", h.Owner, err)
			}
			if !ok {
				continue
			}
			out = append(out, reservation{Hostname: strings.TrimSuffix(h.Owner, "."), Address: addr, Extra: data})
		}
	}
	return out, nil
}

func sortReservations(rs []reservation, by string) {
	switch by {
	case "hostname":
		sort.Slice(rs, func(i, j int) bool { return rs[i].Hostname < rs[j].Hostname })
	case "ip":
		sort.Slice(rs, func(i, j int) bool {
			return bytes.Compare(net.ParseIP(rs[i].Address), net.ParseIP(rs[j].Address)) < 0
		})
	case "mac":
		sort.Slice(rs, func(i, j int) bool {
			return normalizeMAC(rs[i].Extra["hw-address"]) < normalizeMAC(rs[j].Extra["hw-address"])
		})
	}
}

func normalizeMAC(mac string) string {
	r := strings.NewReplacer(":", "", "-", "", ".", "", " ", "")
	return strings.ToLower(r.Replace(mac))
}

func run(c *cli.Context) error {
	args := c.Args().Slice()
	if len(args) < 1 {
		return cli.Exit("zonekea: at least one zone file is required", 1)
	}

	var network *net.IPNet
	if cidr := c.String("network"); cidr != "" {
		_, n, err := net.ParseCIDR(cidr)
		if err != nil {
			return cli.Exit(fmt.Sprintf("zonekea: invalid network %q: %v", cidr, err), 1)
		}
		network = n
	}

	opts := zonefile.Options{}
	opts.PrettyTTLs = true

	var all []reservation
	for _, path := range args {
		zd, res := zonefile.ParseFile(opts, path)
		if res != 0 {
			return cli.Exit(fmt.Sprintf("zonekea: parsing %s: %s", path, res), 1)
		}
		rs, err := extractReservations(zd, network)
		if err != nil {
			return cli.Exit(fmt.Sprintf("zonekea: %s: %v", path, err), 1)
		}
		all = append(all, rs...)
	}

	sortBy := ""
	switch {
	case c.Bool("sort-hostname"):
		sortBy = "hostname"
	case c.Bool("sort-ip"):
		sortBy = "ip"
	case c.Bool("sort-mac"):
		sortBy = "mac"
	}
	sortReservations(all, sortBy)

	if len(all) == 0 {
		fmt.Fprintln(os.Stderr, "zonekea: no kea records found")
		if c.Bool("stop-if-empty") {
			return cli.Exit("", 1)
		}
	}

	out := os.Stdout
	if path := c.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return cli.Exit(fmt.Sprintf("zonekea: creating %s: %v", path, err), 1)
		}
		defer f.Close()
		out = f
	}

	for i, r := range all {
		b, err := json.MarshalIndent(r, "", "    ")
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s", b)
		if i < len(all)-1 {
			fmt.Fprint(out, ",")
		}
		fmt.Fprintln(out)
	}
	return nil
}

func main() {
	app := &cli.App{
		Name:      "zonekea",
		Usage:     "extract Kea DHCP reservations from DNS zone files",
		ArgsUsage: "<zone file> [<zone file> ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write output here instead of stdout"},
			&cli.BoolFlag{Name: "stop-if-empty", Aliases: []string{"s"}, Usage: "exit non-zero if no reservations are found"},
			&cli.BoolFlag{Name: "sort-hostname", Aliases: []string{"H"}, Usage: "sort output by hostname"},
			&cli.BoolFlag{Name: "sort-ip", Aliases: []string{"I"}, Usage: "sort output by IP address"},
			&cli.BoolFlag{Name: "sort-mac", Aliases: []string{"M"}, Usage: "sort output by MAC address"},
			&cli.StringFlag{Name: "network", Aliases: []string{"n"}, Usage: "limit output to this CIDR network"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

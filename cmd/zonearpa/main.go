// Command zonearpa generates a reverse (in-addr.arpa) zone file from one
// or more forward zone files, deriving PTR records from every A record
// and carrying the forward zone's SOA and NS records across.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/wfd3/zonescan/zonefile"
)

// reverseZone accumulates the pieces of the generated reverse zone as
// the forward zones are parsed.
type reverseZone struct {
	origin      string
	ttlLine     string
	soa         *zonefile.SOARecord
	nameservers []string
	ptrs        []string
}

func (rz *reverseZone) addNS(ns string) {
	for _, v := range rz.nameservers {
		if v == ns {
			return
		}
	}
	rz.nameservers = append(rz.nameservers, ns)
}

func lastOctet(addr string) (string, bool) {
	parts := strings.Split(addr, ".")
	if len(parts) != 4 {
		return "", false
	}
	return parts[3], true
}

func (rz *reverseZone) absorb(zd *zonefile.ZoneData) {
	if zd.Metadata.TTL != 0 && rz.ttlLine == "" {
		rz.ttlLine = fmt.Sprintf("$TTL %d", zd.Metadata.TTL)
	}

	for _, h := range zd.Hosts() {
		if rz.soa == nil && len(h.Records.SOA) > 0 {
			soa := h.Records.SOA[0]
			rz.soa = &soa
		}
		for _, ns := range h.Records.NS {
			rz.addNS(ns.NameServer)
		}
		for _, a := range h.Records.A {
			octet, ok := lastOctet(a.Address.String())
			if !ok {
				continue
			}
			rz.ptrs = append(rz.ptrs, fmt.Sprintf("%s\t\tIN\tPTR\t\t%s", octet, h.Owner))
		}
	}
}

func (rz *reverseZone) soaBlock() string {
	if rz.soa == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "@\tIN\tSOA\t%s\t%s (\n", rz.soa.PrimaryNS, rz.soa.Email)
	fmt.Fprintf(&b, "\t\t\t\t%d\t ; Serial\n", rz.soa.Serial)
	fmt.Fprintf(&b, "\t\t\t\t%d\t\t ; Refresh\n", rz.soa.Refresh)
	fmt.Fprintf(&b, "\t\t\t\t%d\t\t ; Retry\n", rz.soa.Retry)
	fmt.Fprintf(&b, "\t\t\t\t%d\t\t ; Expire\n", rz.soa.Expire)
	fmt.Fprintf(&b, "\t\t\t\t%d )\t\t ; Minimum\n", rz.soa.MinimumTTL)
	for _, ns := range rz.nameservers {
		fmt.Fprintf(&b, "\t\tIN\tNS\t%s\n", ns)
	}
	return b.String()
}

func (rz *reverseZone) write(out *os.File, inputs []string) {
	host, err := os.Hostname()
	if err != nil {
		host = "<unknown>"
	}

	sep := strings.Repeat(";", 77)
	fmt.Fprintln(out, sep)
	fmt.Fprintf(out, "; Reverse zone file for domain %q\n", rz.origin)
	fmt.Fprintf(out, ";\n; DO NOT EDIT THIS FILE; it is generated\n;\n")
	fmt.Fprintf(out, "; Generated %s from:\n", time.Now().Format(time.UnixDate))
	for _, in := range inputs {
		abs, _ := filepath.Abs(in)
		fmt.Fprintf(out, ";  %s:%s\n", host, abs)
	}
	fmt.Fprintln(out, sep)

	if rz.ttlLine != "" {
		fmt.Fprintln(out, rz.ttlLine)
	}
	fmt.Fprint(out, rz.soaBlock())
	fmt.Fprintf(out, "\n$ORIGIN %s\n\n", rz.origin)
	for _, ptr := range rz.ptrs {
		fmt.Fprintln(out, ptr)
	}
}

func run(c *cli.Context) error {
	args := c.Args().Slice()
	if len(args) < 2 {
		return cli.Exit("zonearpa: usage: zonearpa <reverse_domain> <zone file> [<zone file> ...]", 1)
	}

	rz := &reverseZone{origin: args[0]}
	inputs := args[1:]

	opts := zonefile.Options{}
	opts.PrettyTTLs = true

	for _, path := range inputs {
		zd, res := zonefile.ParseFile(opts, path)
		if res != 0 {
			return cli.Exit(fmt.Sprintf("zonearpa: parsing %s: %s", path, res), 1)
		}
		rz.absorb(zd)
	}

	out := os.Stdout
	if path := c.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return cli.Exit(fmt.Sprintf("zonearpa: creating %s: %v", path, err), 1)
		}
		defer f.Close()
		out = f
	}

	rz.write(out, inputs)
	return nil
}

func main() {
	app := &cli.App{
		Name:      "zonearpa",
		Usage:     "generate a reverse zone file from one or more forward zone files",
		ArgsUsage: "<reverse_domain> <zone file> [<zone file> ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write output here instead of stdout"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

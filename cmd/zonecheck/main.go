// Command zonecheck parses a zone file and prints a summary of every
// record it accumulates, or the diagnostics the parser logged if the
// zone is malformed.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/wfd3/zonescan/zone"
	"github.com/wfd3/zonescan/zonefile"
)

func logDiagnostics(p *zone.Parser, priority zone.Priority, file string, line uint64, message string, userData any) {
	fmt.Fprintf(os.Stderr, "%s: %s:%d: %s\n", priority, file, line, message)
}

func summarize(zd *zonefile.ZoneData) {
	fmt.Printf("$ORIGIN %s\n$TTL %d\n\n", zd.Metadata.Origin, zd.Metadata.TTL)

	for _, h := range zd.Hosts() {
		for _, r := range h.Records.A {
			fmt.Printf("%s\t%d\t%s\tA\t%s\n", h.Owner, r.TTL, r.Class, r.Address)
		}
		for _, r := range h.Records.AAAA {
			fmt.Printf("%s\t%d\t%s\tAAAA\t%s\n", h.Owner, r.TTL, r.Class, r.Address)
		}
		for _, r := range h.Records.CNAME {
			fmt.Printf("%s\t%d\t%s\tCNAME\t%s\n", h.Owner, r.TTL, r.Class, r.Target)
		}
		for _, r := range h.Records.NS {
			fmt.Printf("%s\t%d\t%s\tNS\t%s\n", h.Owner, r.TTL, r.Class, r.NameServer)
		}
		for _, r := range h.Records.SOA {
			fmt.Printf("%s\t%d\t%s\tSOA\t%s %s %d %d %d %d %d\n",
				h.Owner, r.TTL, r.Class, r.PrimaryNS, r.Email, r.Serial, r.Refresh, r.Retry, r.Expire, r.MinimumTTL)
		}
		for _, r := range h.Records.MX {
			fmt.Printf("%s\t%d\t%s\tMX\t%d %s\n", h.Owner, r.TTL, r.Class, r.Priority, r.Mail)
		}
		for _, r := range h.Records.TXT {
			fmt.Printf("%s\t%d\t%s\tTXT\t%q\n", h.Owner, r.TTL, r.Class, r.Text)
		}
		for _, r := range h.Records.PTR {
			fmt.Printf("%s\t%d\t%s\tPTR\t%s\n", h.Owner, r.TTL, r.Class, r.Pointer)
		}
		for _, r := range h.Records.SRV {
			fmt.Printf("%s\t%d\t%s\tSRV\t%d %d %d %s\n", h.Owner, r.TTL, r.Class, r.Priority, r.Weight, r.Port, r.Target)
		}
		for _, r := range h.Records.CAA {
			fmt.Printf("%s\t%d\t%s\tCAA\t%d %s %q\n", h.Owner, r.TTL, r.Class, r.Flags, r.Tag, r.Value)
		}
		for _, r := range h.Records.HINFO {
			fmt.Printf("%s\t%d\t%s\tHINFO\t%q %q\n", h.Owner, r.TTL, r.Class, r.CPU, r.OS)
		}
		for _, r := range h.Records.NAPTR {
			fmt.Printf("%s\t%d\t%s\tNAPTR\t%d %d %q %q %q %s\n",
				h.Owner, r.TTL, r.Class, r.Order, r.Preference, r.Flags, r.Service, r.Regexp, r.Replacement)
		}
		for _, r := range h.Records.Generic {
			fmt.Printf("%s\t%d\t%s\tTYPE%d\t\\# %d %x\n", h.Owner, r.TTL, r.Class, r.Type, len(r.RData), r.RData)
		}
	}
}

func run(c *cli.Context) error {
	args := c.Args().Slice()
	if len(args) != 1 {
		return cli.Exit("zonecheck: usage: zonecheck [options] <zone file>", 1)
	}

	opts := zonefile.Options{}
	opts.PrettyTTLs = c.Bool("pretty-ttls")
	opts.Secondary = c.Bool("secondary")
	opts.NoIncludes = c.Bool("no-includes")
	opts.IncludeLimit = uint32(c.Int("include-limit"))
	opts.Log = logDiagnostics

	if cfgPath := c.String("config"); cfgPath != "" {
		cfg, err := zonefile.LoadConfig(cfgPath)
		if err != nil {
			return cli.Exit(fmt.Sprintf("zonecheck: %v", err), 1)
		}
		opts.DefaultTTL = cfg.DefaultTTL
		opts.NoIncludes = cfg.NoIncludes
		opts.IncludeLimit = cfg.IncludeLimit
		opts.PrettyTTLs = cfg.PrettyTTLs
		opts.Secondary = cfg.Secondary
	}

	zd, res := zonefile.ParseFile(opts, args[0])
	if res != 0 {
		return cli.Exit(fmt.Sprintf("zonecheck: %s: %s", args[0], res), 1)
	}

	fmt.Printf("parsed %s: %d owners\n\n", args[0], len(zd.Hosts()))
	summarize(zd)
	return nil
}

func main() {
	app := &cli.App{
		Name:      "zonecheck",
		Usage:     "parse a zone file and print a summary of its records",
		ArgsUsage: "<zone file>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "load parser defaults from a TOML config file"},
			&cli.BoolFlag{Name: "pretty-ttls", Usage: "accept \"1h\", \"2d\" style TTLs"},
			&cli.BoolFlag{Name: "secondary", Usage: "relax RFC 9460 ascending-order checks, as a secondary server would"},
			&cli.BoolFlag{Name: "no-includes", Usage: "reject $INCLUDE directives"},
			&cli.IntFlag{Name: "include-limit", Usage: "maximum $INCLUDE nesting depth (0 = unlimited)"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

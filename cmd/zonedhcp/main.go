// Command zonedhcp emits $GENERATE directives covering a DHCP address
// range, splitting the range at Class C network boundaries and skipping
// the reserved .0 and .255 addresses in each one.
package main

import (
	"bytes"
	"fmt"
	"net"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
)

const (
	classCMask   = 0xFFFFFF00
	lastOctet    = 0xFF
)

func ipToUint32(ip net.IP) uint32 {
	ip = ip.To4()
	return uint32(ip[0])<<24 | uint32(ip[1])<<16 | uint32(ip[2])<<8 | uint32(ip[3])
}

func uint32ToIP(v uint32) net.IP {
	return net.IPv4(byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

var domainRE = regexp.MustCompile(`^(?i:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?)(\.[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?)*(\.)?$`)

func isValidDomain(d string) bool {
	return len(d) <= 253 && domainRE.MatchString(d)
}

func fieldWidth(max int) int {
	if max == 0 {
		return 1
	}
	return len(strconv.Itoa(max))
}

func fqdn(host, domain string) string {
	if strings.HasSuffix(host, ".") {
		return host
	}
	if domain == "" {
		return host
	}
	out := host + "." + domain
	if !strings.HasSuffix(out, ".") {
		out += "."
	}
	return out
}

func hostPattern(host, domain string, offset, width int) string {
	return fqdn(fmt.Sprintf("%s-${%d,%d,d}", host, offset, width), domain)
}

func hostName(host string, width, offset int) string {
	return fmt.Sprintf("%s-%0*d", host, width, offset)
}

// octetNetwork is one Class C slice of the requested range.
type octetNetwork struct {
	base       uint32
	startOctet int
	endOctet   int
	hostStart  int
}

func validHostCount(start, end int) int {
	n := 0
	for o := start; o <= end; o++ {
		if o != 0 && o != 255 {
			n++
		}
	}
	return n
}

func networksInRange(start, end uint32, hostStart int) []octetNetwork {
	var nets []octetNetwork
	cur := start
	offset := hostStart
	for cur <= end {
		base := cur & classCMask
		startOctet := int(cur & lastOctet)
		networkEnd := base | 255
		if networkEnd > end {
			networkEnd = end
		}
		endOctet := int(networkEnd & lastOctet)

		if n := validHostCount(startOctet, endOctet); n > 0 {
			nets = append(nets, octetNetwork{base, startOctet, endOctet, offset})
			offset += n
		}
		cur = ((base >> 8) + 1) << 8
	}
	return nets
}

func generateForNetwork(n octetNetwork, host, origin string, width int, comments bool, mx string, mxPri uint) []string {
	var lines []string
	base := uint32ToIP(n.base)
	octets := strings.Split(base.String(), ".")
	ipPattern := fmt.Sprintf("%s.%s.%s.$", octets[0], octets[1], octets[2])

	validHosts := validHostCount(n.startOctet, n.endOctet)
	if comments && validHosts > 0 {
		startIP := fmt.Sprintf("%s.%s.%s.%d", octets[0], octets[1], octets[2], n.startOctet)
		endIP := fmt.Sprintf("%s.%s.%s.%d", octets[0], octets[1], octets[2], n.endOctet)
		lines = append(lines, fmt.Sprintf("\n; %s-%s => %s to %s, %d hosts",
			startIP, endIP, hostName(host, width, n.hostStart), hostName(host, width, n.hostStart+validHosts-1), validHosts))
	}

	offset := n.hostStart
	octet := n.startOctet
	for octet <= n.endOctet {
		if octet == 0 || octet == 255 {
			octet++
			continue
		}
		rangeStart := octet
		for octet <= n.endOctet && octet != 0 && octet != 255 {
			octet++
		}
		rangeEnd := octet - 1

		lines = append(lines, fmt.Sprintf("$GENERATE %d-%d %s IN A %s",
			rangeStart, rangeEnd, hostPattern(host, origin, offset, width), ipPattern))
		if mx != "" {
			lines = append(lines, fmt.Sprintf("$GENERATE %d-%d %s IN MX \"%d %s\"",
				rangeStart, rangeEnd, hostPattern(host, origin, offset, width), mxPri, fqdn(mx, origin)))
		}
		offset += rangeEnd - rangeStart + 1
	}
	return lines
}

func generateStatements(startIP, endIP string, hostStart int, host, origin string, comments bool, mx string, mxPri uint) ([]string, error) {
	start := net.ParseIP(startIP)
	end := net.ParseIP(endIP)
	if start == nil || start.To4() == nil {
		return nil, fmt.Errorf("invalid start IP %q", startIP)
	}
	if end == nil || end.To4() == nil {
		return nil, fmt.Errorf("invalid end IP %q", endIP)
	}
	if bytes.Compare(start.To4(), end.To4()) > 0 {
		return nil, fmt.Errorf("start IP must be <= end IP")
	}
	startU, endU := ipToUint32(start), ipToUint32(end)

	total := 0
	for ip := startU; ip <= endU; ip++ {
		o := int(ip & lastOctet)
		if o != 0 && o != 255 {
			total++
		}
	}
	if total == 0 {
		return nil, fmt.Errorf("no valid host addresses in range %s to %s", startIP, endIP)
	}
	width := fieldWidth(hostStart + total - 1)

	var lines []string
	if comments {
		lines = append(lines, fmt.Sprintf("; Creating $GENERATE directives for addresses %s through %s\n; %d hosts total, starting from host %d",
			startIP, endIP, total, hostStart))
	}
	for _, n := range networksInRange(startU, endU, hostStart) {
		lines = append(lines, generateForNetwork(n, host, origin, width, comments, mx, mxPri)...)
	}
	return lines, nil
}

func run(c *cli.Context) error {
	args := c.Args().Slice()
	if len(args) != 2 {
		return cli.Exit("zonedhcp: usage: zonedhcp [options] <start_ip> <end_ip>", 1)
	}

	origin := c.String("origin")
	if origin != "" && !isValidDomain(origin) {
		return cli.Exit(fmt.Sprintf("zonedhcp: invalid origin %q", origin), 1)
	}
	if c.String("hostname") == "" {
		return cli.Exit("zonedhcp: hostname cannot be empty", 1)
	}
	if c.Int("hoststart") < 0 {
		return cli.Exit("zonedhcp: hoststart cannot be negative", 1)
	}

	lines, err := generateStatements(args[0], args[1], c.Int("hoststart"), c.String("hostname"), origin,
		c.Bool("comments"), c.String("mx"), uint(c.Int("mx-priority")))
	if err != nil {
		return cli.Exit(fmt.Sprintf("zonedhcp: %v", err), 1)
	}

	out := os.Stdout
	if path := c.String("output"); path != "" {
		f, ferr := os.Create(path)
		if ferr != nil {
			return cli.Exit(fmt.Sprintf("zonedhcp: creating %s: %v", path, ferr), 1)
		}
		defer f.Close()
		out = f
	}
	for _, l := range lines {
		fmt.Fprintln(out, l)
	}
	return nil
}

func main() {
	app := &cli.App{
		Name:      "zonedhcp",
		Usage:     "emit $GENERATE directives for a DHCP host address range",
		ArgsUsage: "<start_ip> <end_ip>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "hoststart", Usage: "starting host number"},
			&cli.StringFlag{Name: "hostname", Value: "dhcp", Usage: "hostname prefix"},
			&cli.StringFlag{Name: "origin", Usage: "DNS domain to append to generated hostnames"},
			&cli.BoolFlag{Name: "comments", Usage: "add a comment for each generated range"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write output here instead of stdout"},
			&cli.StringFlag{Name: "mx", Usage: "add an MX record pointing at this host"},
			&cli.IntFlag{Name: "mx-priority", Usage: "MX priority"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

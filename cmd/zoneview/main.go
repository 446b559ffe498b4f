// Command zoneview is an interactive terminal browser for a parsed zone
// file: a tree of owner names on the left, the records for whichever
// owner is selected on the right.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/urfave/cli/v2"

	"github.com/wfd3/zonescan/zonefile"
)

type browser struct {
	app    *tview.Application
	tree   *tview.TreeView
	detail *tview.TextView
	status *tview.TextView
	zd     *zonefile.ZoneData
}

func newBrowser(zd *zonefile.ZoneData) *browser {
	b := &browser{app: tview.NewApplication(), zd: zd}

	root := tview.NewTreeNode(zd.Metadata.Origin).SetColor(tcell.ColorYellow)
	b.tree = tview.NewTreeView().SetRoot(root).SetCurrentNode(root)
	b.tree.SetBorder(true).SetTitle(fmt.Sprintf(" %s ", zd.Metadata.Origin))

	hosts := zd.Hosts()
	owners := make([]string, 0, len(hosts))
	for _, h := range hosts {
		owners = append(owners, h.Owner)
	}
	sort.Strings(owners)
	for _, owner := range owners {
		node := tview.NewTreeNode(owner).SetReference(owner).SetSelectable(true)
		root.AddChild(node)
	}

	b.detail = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	b.detail.SetBorder(true).SetTitle(" records ")

	b.status = tview.NewTextView().SetDynamicColors(true).
		SetText(fmt.Sprintf("[yellow]%d owners[white] | arrows/tab navigate, q quits", len(owners)))

	b.tree.SetChangedFunc(func(node *tview.TreeNode) {
		owner, ok := node.GetReference().(string)
		if !ok {
			b.detail.SetText("")
			return
		}
		b.detail.SetText(renderHost(zd, owner))
	})

	if len(owners) > 0 {
		b.detail.SetText(renderHost(zd, owners[0]))
	}

	layout := tview.NewFlex().
		AddItem(b.tree, 0, 1, true).
		AddItem(b.detail, 0, 2, false)

	main := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(layout, 0, 1, true).
		AddItem(b.status, 1, 0, false)

	b.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'q', 'Q':
			b.app.Stop()
			return nil
		}
		return event
	})

	b.app.SetRoot(main, true).SetFocus(b.tree)
	return b
}

func renderHost(zd *zonefile.ZoneData, owner string) string {
	h, ok := zd.Lookup(owner)
	if !ok {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "[yellow]%s[white]\n\n", h.Owner)
	for _, r := range h.Records.A {
		fmt.Fprintf(&b, "A\t%s\t%d\t%s\n", r.Address, r.TTL, r.Class)
	}
	for _, r := range h.Records.AAAA {
		fmt.Fprintf(&b, "AAAA\t%s\t%d\t%s\n", r.Address, r.TTL, r.Class)
	}
	for _, r := range h.Records.CNAME {
		fmt.Fprintf(&b, "CNAME\t%s\t%d\t%s\n", r.Target, r.TTL, r.Class)
	}
	for _, r := range h.Records.NS {
		fmt.Fprintf(&b, "NS\t%s\t%d\t%s\n", r.NameServer, r.TTL, r.Class)
	}
	for _, r := range h.Records.MX {
		fmt.Fprintf(&b, "MX\t%d %s\t%d\t%s\n", r.Priority, r.Mail, r.TTL, r.Class)
	}
	for _, r := range h.Records.TXT {
		fmt.Fprintf(&b, "TXT\t%q\t%d\t%s\n", r.Text, r.TTL, r.Class)
	}
	for _, r := range h.Records.SOA {
		fmt.Fprintf(&b, "SOA\t%s %s %d %d %d %d %d\t%d\t%s\n",
			r.PrimaryNS, r.Email, r.Serial, r.Refresh, r.Retry, r.Expire, r.MinimumTTL, r.TTL, r.Class)
	}
	for _, r := range h.Records.PTR {
		fmt.Fprintf(&b, "PTR\t%s\t%d\t%s\n", r.Pointer, r.TTL, r.Class)
	}
	for _, r := range h.Records.SRV {
		fmt.Fprintf(&b, "SRV\t%d %d %d %s\t%d\t%s\n", r.Priority, r.Weight, r.Port, r.Target, r.TTL, r.Class)
	}
	for _, r := range h.Records.CAA {
		fmt.Fprintf(&b, "CAA\t%d %s %q\t%d\t%s\n", r.Flags, r.Tag, r.Value, r.TTL, r.Class)
	}
	for _, r := range h.Records.HINFO {
		fmt.Fprintf(&b, "HINFO\t%q %q\t%d\t%s\n", r.CPU, r.OS, r.TTL, r.Class)
	}
	for _, r := range h.Records.NAPTR {
		fmt.Fprintf(&b, "NAPTR\t%d %d %q %q %q %s\t%d\t%s\n",
			r.Order, r.Preference, r.Flags, r.Service, r.Regexp, r.Replacement, r.TTL, r.Class)
	}
	for _, r := range h.Records.Generic {
		fmt.Fprintf(&b, "TYPE%d\t\\# %d %x\t%d\t%s\n", r.Type, len(r.RData), r.RData, r.TTL, r.Class)
	}
	return b.String()
}

func run(c *cli.Context) error {
	args := c.Args().Slice()
	if len(args) != 1 {
		return cli.Exit("zoneview: usage: zoneview <zone file>", 1)
	}

	opts := zonefile.Options{}
	opts.PrettyTTLs = true

	zd, res := zonefile.ParseFile(opts, args[0])
	if res != 0 {
		return cli.Exit(fmt.Sprintf("zoneview: %s: %s", args[0], res), 1)
	}

	return newBrowser(zd).app.Run()
}

func main() {
	app := &cli.App{
		Name:      "zoneview",
		Usage:     "browse a parsed zone file interactively",
		ArgsUsage: "<zone file>",
		Action:    run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

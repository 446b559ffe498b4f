package zonefile

import (
	"github.com/alphadose/haxmap"
	"github.com/wfd3/zonescan/zone"
)

// indexInitialSize mirrors the order-of-magnitude sizing
// ChristianF88-cidrx preallocates its haxmap with — small zones won't
// grow the table, large ones amortize rehashing.
const indexInitialSize = 1 << 16

// Index is a concurrency-safe owner name -> *HostRecord map, built
// incrementally from a zone.AcceptFunc as records stream in. Unlike
// ZoneData (which is only safe to read after the parse finishes), Index
// can be queried by other goroutines while a large zone is still being
// parsed.
type Index struct {
	m *haxmap.Map[string, *HostRecord]
}

// NewIndex constructs an empty Index.
func NewIndex() *Index {
	return &Index{m: haxmap.New[string, *HostRecord](indexInitialSize)}
}

// Lookup returns the HostRecord for owner, if one has been indexed yet.
func (idx *Index) Lookup(owner string) (*HostRecord, bool) {
	return idx.m.Get(owner)
}

// Len reports how many distinct owners have been indexed so far.
func (idx *Index) Len() uintptr {
	return idx.m.Len()
}

// IndexingAccept wraps inner with logic that merges each accepted
// record into idx before forwarding the call, the way ZoneData.accept
// merges into an in-memory ZoneData. Intended for a host that wants to
// query records concurrently with a long-running parse, e.g. a server
// streaming a multi-million-line zone.
func (idx *Index) IndexingAccept(inner AcceptLike) AcceptLike {
	return func(ownerStr string, rtype uint16, class uint16, ttl uint32, rdata []byte) int32 {
		// copy-on-write: readers may hold the previously stored pointer
		h := &HostRecord{Owner: ownerStr}
		if old, ok := idx.m.Get(ownerStr); ok {
			cp := *old
			h = &cp
		}
		rr := ResourceRecord{TTL: ttl, Class: classString(class)}
		h.decodeInto(rtype, rr, rdata)
		idx.m.Set(ownerStr, h)

		if inner != nil {
			return inner(ownerStr, rtype, class, ttl, rdata)
		}
		return 0
	}
}

// AcceptLike is a simplified, already-decoded accept signature used by
// Index, decoupled from zone.Parser/zone.Name so Index has no import
// cycle back onto the core package's callback shape.
type AcceptLike func(ownerStr string, rtype uint16, class uint16, ttl uint32, rdata []byte) int32

// ParseFileIndexing parses path, merging every accepted record into idx
// as it is delivered rather than waiting for the whole parse to finish.
func ParseFileIndexing(opts Options, path string, idx *Index) zone.Result {
	accept := idx.IndexingAccept(nil)
	o := opts.Options
	o.Accept = func(p *zone.Parser, owner zone.Name, rtype zone.Type, class zone.Class, ttl uint32, rdata []byte, userData any) int32 {
		ownerStr, _, _ := decodeName(owner)
		return accept(ownerStr, uint16(rtype), uint16(class), ttl, rdata)
	}
	return zone.NewParser(o).ParseFile(path, nil)
}

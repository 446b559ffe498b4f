package zone

import (
	"io"
	"os"
)

// defaultBufferSize is the initial read-buffer capacity; it grows in
// fixed increments up to maxBufferSize on demand (spec.md §4.3).
const (
	defaultBufferSize = 64 * 1024
	maxBufferSize     = 16 * 1024 * 1024
	bufferGrowStep    = 64 * 1024
)

// File is the spec's "Input File": one entry in the $INCLUDE stack. It
// owns its own read buffer, indexer cross-block state, and the
// owner/origin/class/ttl/type inherited by records that omit them.
type File struct {
	includer *File // weak back-reference, used only for circularity checks

	path string // resolved, absolute
	name string // as written on the $INCLUDE line, for diagnostics

	owner    Name
	ownerSet bool
	origin   Name
	class    Class
	ttl      uint32
	rtype    Type
	typeSet  bool

	line          uint64
	deferredLines uint64
	grouped       bool

	// lineStartAdjacent reports whether the token about to be read began
	// in column 1 (no leading blank) — the signal spec.md §4.4's owner
	// recognizer uses to decide whether to parse a new owner or inherit
	// the previous one. True at file start; recomputed after every
	// LINE_FEED token (zone/token.go).
	lineStartAdjacent bool

	reader io.Reader
	closer io.Closer
	buf    []byte
	start  int // next unconsumed byte
	end    int // end of valid data
	eof    bool

	// tape produced by the most recent indexBlock call, drained one
	// entry at a time by the token stream (zone/token.go).
	tapeQueue []tapeEntry
	tapePos   int
}

// Depth reports how many files deep this file is in the include stack
// (0 for the top-level file).
func (f *File) Depth() int {
	d := 0
	for p := f.includer; p != nil; p = p.includer {
		d++
	}
	return d
}

// Line returns the current 1-based line number within this file.
func (f *File) Line() uint64 { return f.line }

// Path returns the resolved path of this file ("<string>" for in-memory
// input).
func (f *File) Path() string { return f.path }

func newFileFromReader(path string, r io.Reader, closer io.Closer, origin Name, class Class, ttl uint32) *File {
	return &File{
		path:   path,
		reader: r,
		closer: closer,
		origin: append(Name(nil), origin...),
		class:  class,
		ttl:    ttl,
		line:   1,
		lineStartAdjacent: true,
		buf:    make([]byte, 0, defaultBufferSize),
	}
}

func openFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &File{
		path:   path,
		reader: fh,
		closer: fh,
		line:   1,
		lineStartAdjacent: true,
		buf:    make([]byte, 0, defaultBufferSize),
	}, nil
}

func (f *File) close() {
	if f.closer != nil {
		f.closer.Close()
		f.closer = nil
	}
}

// circular reports whether path already appears in the include chain
// started by f (inclusive of f itself), per spec.md §4.3's circular-
// reference walk.
func (f *File) circular(path string) bool {
	for p := f; p != nil; p = p.includer {
		if p.path == path {
			return true
		}
	}
	return false
}

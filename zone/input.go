package zone

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

// refill compacts consumed bytes out of f.buf and reads more from the
// underlying reader, matching spec.md §4.3's refill(file): shuffle
// trailing bytes to the front, read up to capacity, grow on exhaustion.
func (f *File) refill() Result {
	if f.eof {
		return Success
	}

	// compact: drop everything before f.start
	if f.start > 0 {
		n := copy(f.buf, f.buf[f.start:f.end])
		f.buf = f.buf[:n]
		f.end = n
		f.start = 0
	}

	for {
		free := cap(f.buf) - len(f.buf)
		if free == 0 {
			if cap(f.buf) >= maxBufferSize {
				return OutOfMemory
			}
			newCap := cap(f.buf) + bufferGrowStep
			if newCap > maxBufferSize {
				newCap = maxBufferSize
			}
			grown := make([]byte, len(f.buf), newCap)
			copy(grown, f.buf)
			f.buf = grown
			free = cap(f.buf) - len(f.buf)
		}

		n, err := f.reader.Read(f.buf[len(f.buf) : len(f.buf)+free])
		if n > 0 {
			f.buf = f.buf[:len(f.buf)+n]
			f.end = len(f.buf)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				f.eof = true
				return Success
			}
			return ReadError
		}
		if n > 0 {
			return Success
		}
		// n == 0, err == nil: reader asked us to try again
	}
}

// openInclude resolves path relative to the process working directory
// (spec.md §9's documented, normative choice — "relative to the process
// working directory", not relative to the includer), walks the include
// chain for circular references, and enforces the configured include
// depth limit.
func (p *Parser) openInclude(path string) (*File, Result, string) {
	resolved := path
	if !filepath.IsAbs(resolved) {
		cwd, err := os.Getwd()
		if err == nil {
			resolved = filepath.Join(cwd, resolved)
		}
	}

	if p.current().circular(resolved) {
		return nil, SemanticError, "circular $INCLUDE: nested too deeply"
	}

	depth := p.current().Depth() + 1
	if p.opts.IncludeLimit > 0 && uint32(depth) > p.opts.IncludeLimit {
		return nil, SemanticError, "include nested too deeply"
	}

	fh, err := os.Open(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NotAFile, "no such file: " + resolved
		}
		return nil, NotAFile, err.Error()
	}

	nf := &File{
		path:   resolved,
		name:   path,
		reader: fh,
		closer: fh,
		line:   1,
		lineStartAdjacent: true,
		buf:    make([]byte, 0, defaultBufferSize),
	}
	return nf, Success, ""
}

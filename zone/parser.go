package zone

import (
	"fmt"
	"io"
	"strings"
)

// AcceptFunc receives one fully parsed resource record. rdata is the wire
// encoding of the record's RDATA only (no owner/type/class/ttl/rdlength
// prefix). The return value mirrors the C source's buffer-pool-index
// protocol: a non-negative value tells the parser which scratch buffer to
// recycle for the next record, and a negative value aborts the parse with
// that value as the returned Result.
type AcceptFunc func(p *Parser, owner Name, rtype Type, class Class, ttl uint32, rdata []byte, userData any) int32

// LogFunc receives diagnostic messages as the parse progresses. Called for
// both hard errors (PriorityError, right before the parse call returns a
// non-Success Result) and informational notices (PriorityInfo, e.g. an
// $INCLUDE being entered).
type LogFunc func(p *Parser, priority Priority, file string, line uint64, message string, userData any)

// Options configures a Parser. The zero value is usable: class defaults to
// IN, TTL to 0 (a zone lacking both $TTL and an SOA minimum must supply
// one), origin to the root.
type Options struct {
	Origin       Name
	DefaultTTL   uint32
	DefaultClass Class
	NoIncludes   bool
	IncludeLimit uint32 // 0 = unlimited
	PrettyTTLs   bool   // accept "1h", "2d" etc. in addition to bare seconds
	Secondary    bool   // relax the ascending-order checks RFC 9460 §2.1 requires of primaries
	Accept       AcceptFunc
	Log          LogFunc
}

// Parser holds all state for one zone parse: the include stack and the
// options it was constructed with.
// A Parser is not safe for concurrent use (spec.md §5: one parse, one
// goroutine, no shared mutable state escapes it).
type Parser struct {
	opts Options

	files []*File

	userData any

	// pushback holds one token read ahead of the dispatcher (used to
	// look past $INCLUDE's path argument for an optional origin
	// argument); nextToken drains it before pulling a fresh tape entry.
	pushback *Token
}

// NewParser constructs a Parser ready to run exactly one of ParseFile,
// ParseString or ParseReader.
func NewParser(opts Options) *Parser {
	if opts.DefaultClass == 0 {
		opts.DefaultClass = ClassIN
	}
	if opts.Origin == nil {
		opts.Origin = Name{0}
	}
	return &Parser{opts: opts}
}

func (p *Parser) current() *File { return p.files[len(p.files)-1] }

// fail records a diagnostic via the configured LogFunc (if any) and returns
// code, so call sites can write "return Token{}, p.fail(...)".
func (p *Parser) fail(code Result, f *File, format string, args ...any) Result {
	msg := fmt.Sprintf(format, args...)
	if p.opts.Log != nil {
		line := f.Line()
		path := ""
		if f != nil {
			path = f.Path()
		}
		p.opts.Log(p, PriorityError, path, line, msg, p.userData)
	}
	return code
}

func (p *Parser) info(f *File, format string, args ...any) {
	if p.opts.Log == nil {
		return
	}
	p.opts.Log(p, PriorityInfo, f.Path(), f.Line(), fmt.Sprintf(format, args...), p.userData)
}

// ParseFile opens path and parses it as a zone file, following $INCLUDE
// directives unless Options.NoIncludes is set.
func (p *Parser) ParseFile(path string, userData any) Result {
	f, err := openFile(path)
	if err != nil {
		return p.fail(NotAFile, &File{path: path, line: 1}, "%s", err.Error())
	}
	f.origin = append(Name(nil), p.opts.Origin...)
	f.class = p.opts.DefaultClass
	f.ttl = p.opts.DefaultTTL
	f.lineStartAdjacent = true
	return p.run(f, userData)
}

// ParseString parses text held entirely in memory, as if it were a file
// named "<string>" for diagnostic purposes.
func (p *Parser) ParseString(text string, userData any) Result {
	f := newFileFromReader("<string>", strings.NewReader(text), nil, p.opts.Origin, p.opts.DefaultClass, p.opts.DefaultTTL)
	return p.run(f, userData)
}

// ParseReader parses an arbitrary io.Reader, as if it were a file named
// name for diagnostic purposes. The reader is not closed.
func (p *Parser) ParseReader(name string, r io.Reader, userData any) Result {
	f := newFileFromReader(name, r, nil, p.opts.Origin, p.opts.DefaultClass, p.opts.DefaultTTL)
	return p.run(f, userData)
}

func (p *Parser) run(f *File, userData any) Result {
	p.userData = userData
	p.files = []*File{f}
	defer p.closeAll()

	for {
		res := p.parseLine()
		if res == errDone {
			return Success
		}
		if res != Success {
			return res
		}
	}
}

func (p *Parser) closeAll() {
	for _, f := range p.files {
		f.close()
	}
}

// errDone is an internal sentinel distinguishing "clean end of top-level
// input" from any real Result; it never escapes this package.
const errDone Result = 1

// parseLine consumes exactly one directive or one record (including any
// number of blank/comment-only lines beforehand), or reports errDone once
// the top-level file is exhausted.
func (p *Parser) parseLine() Result {
	tok, res := p.nextToken()
	if res != Success {
		return res
	}
	if tok.Kind == tokEOF {
		return errDone
	}
	if tok.Kind == tokLineFeed {
		return Success // blank line
	}

	f := p.current()

	if tok.Kind == tokContiguous && len(tok.Text) > 0 && tok.Text[0] == '$' {
		return p.parseDirective(tok, f)
	}

	return p.parseRecord(tok, f)
}

// parseDirective handles $TTL, $ORIGIN and $INCLUDE. Any other
// "$"-prefixed token is a syntax error (spec.md §4.5: the directive set is
// exhaustive).
func (p *Parser) parseDirective(tok Token, f *File) Result {
	name := strings.ToUpper(string(tok.Text))
	switch name {
	case "$TTL":
		arg, res := p.nextFieldToken(f)
		if res != Success {
			return res
		}
		ttl, ok, rangeErr := parseTTL(string(arg.Text), p.opts.PrettyTTLs)
		if !ok {
			return p.fail(SyntaxError, f, "invalid $TTL value %q", arg.Text)
		}
		if rangeErr {
			return p.fail(SemanticError, f, "$TTL value %q exceeds 2^31-1", arg.Text)
		}
		f.ttl = ttl
		return p.consumeRestOfLine(f)

	case "$ORIGIN":
		arg, res := p.nextFieldToken(f)
		if res != Success {
			return res
		}
		n, ok := parseName(string(arg.Text), f.origin)
		if !ok {
			return p.fail(SyntaxError, f, "invalid $ORIGIN domain name %q", arg.Text)
		}
		f.origin = n
		return p.consumeRestOfLine(f)

	case "$INCLUDE":
		if p.opts.NoIncludes {
			return p.fail(NotPermitted, f, "$INCLUDE is disabled")
		}
		arg, res := p.nextFieldToken(f)
		if res != Success {
			return res
		}
		path := string(arg.Text)

		// optional second argument: origin for the included file
		includeOrigin := append(Name(nil), f.origin...)
		next, res := p.peekFieldToken(f)
		if res == Success && next.Kind != tokLineFeed && next.Kind != tokEOF {
			if n, ok := parseName(string(next.Text), f.origin); ok {
				includeOrigin = n
				p.nextFieldToken(f) // consume it
			}
		}
		if res := p.consumeRestOfLine(f); res != Success {
			return res
		}

		nf, openRes, msg := p.openInclude(path)
		if openRes != Success {
			return p.fail(openRes, f, "%s", msg)
		}
		nf.includer = f
		nf.origin = includeOrigin
		nf.class = f.class
		nf.ttl = f.ttl
		nf.lineStartAdjacent = true
		p.info(f, "entering included file %s", nf.Path())
		p.files = append(p.files, nf)
		return Success

	default:
		return p.fail(SyntaxError, f, "unknown directive %s", tok.Text)
	}
}

// consumeRestOfLine reads and discards tokens up to (and including) the
// terminating LINE_FEED, erroring if anything but blank fields remain.
func (p *Parser) consumeRestOfLine(f *File) Result {
	for {
		tok, res := p.nextToken()
		if res != Success {
			return res
		}
		switch tok.Kind {
		case tokLineFeed, tokEOF:
			return Success
		default:
			return p.fail(SyntaxError, f, "unexpected trailing data %q", tok.Text)
		}
	}
}

// nextFieldToken reads the next token and errors if it is a line terminator
// where a field was expected.
func (p *Parser) nextFieldToken(f *File) (Token, Result) {
	tok, res := p.nextToken()
	if res != Success {
		return tok, res
	}
	if tok.Kind == tokLineFeed || tok.Kind == tokEOF {
		return tok, p.fail(SyntaxError, f, "unexpected end of line")
	}
	return tok, Success
}

// readField reads the next token if it is a field (CONTIGUOUS or QUOTED);
// if a LINE_FEED or EOF is reached instead, it is pushed back and ok is
// false. RDATA parsers use this to consume a variable-length tail of
// fields (TXT segments, NSEC's type list, SVCB params, ...).
func (p *Parser) readField(f *File) (Token, bool, Result) {
	tok, res := p.nextToken()
	if res != Success {
		return tok, false, res
	}
	if tok.Kind == tokLineFeed || tok.Kind == tokEOF {
		p.pushback = &tok
		return tok, false, Success
	}
	return tok, true, Success
}

// peekFieldToken reads one token and immediately pushes it back, so the
// following nextToken call (by this or any other method) observes it
// again. Used to look one field ahead without committing to consuming it.
func (p *Parser) peekFieldToken(f *File) (Token, Result) {
	tok, res := p.nextToken()
	p.pushback = &tok
	return tok, res
}

// Package parser implements the second parse pass (§4.5-§4.7): given one
// declaration group's layout-annotated tokens plus the fixity tables the
// first pass collected, build the group's Declaration, Pratt-parsing
// expressions and types along the way.
package parser

import (
	"fmt"

	"wisp/internal/ast"
	"wisp/internal/diag"
	"wisp/internal/source"
	"wisp/internal/token"
)

// Cursor is parser state over one declaration group's token slice. It
// reads token text directly out of the source bytes (the lexer does not
// carry text on the token itself), mirroring the reference parser's own
// self.source[begin..end] idiom.
type Cursor struct {
	fs   *source.FileSet
	toks []token.Token
	pos  int

	strings *source.Strings
	in      *ast.Interners

	valueFixity ast.FixityTable
	typeFixity  ast.FixityTable

	reporter diag.Reporter
}

// New creates a Cursor over toks, sharing in/strings/the fixity tables
// with every other group parsed from the same file.
func New(fs *source.FileSet, in *ast.Interners, strings *source.Strings, valueFixity, typeFixity ast.FixityTable, toks []token.Token, r diag.Reporter) *Cursor {
	return &Cursor{
		fs:          fs,
		toks:        toks,
		strings:     strings,
		in:          in,
		valueFixity: valueFixity,
		typeFixity:  typeFixity,
		reporter:    r,
	}
}

func (c *Cursor) peek() token.Token {
	if c.pos >= len(c.toks) {
		return token.Token{Kind: token.UnknownEndOfFile}
	}
	return c.toks[c.pos]
}

func (c *Cursor) at(k token.Kind) bool { return c.peek().Kind == k }

func (c *Cursor) advance() token.Token {
	t := c.peek()
	if c.pos < len(c.toks) {
		c.pos++
	}
	return t
}

// expect consumes the next token if it has kind k, reporting an
// UnexpectedToken diagnostic naming what (a human-readable description of
// the expected production) otherwise.
func (c *Cursor) expect(k token.Kind, what string) (token.Token, bool) {
	t := c.peek()
	if t.Kind != k {
		c.errorUnexpected(t, what)
		return t, false
	}
	return c.advance(), true
}

// lexErrorDiagnostic maps a lexical-error token kind to the specific
// §7 diagnostic code and message it stands for. The lexer itself never
// reports (it has no Reporter); these surface only once the parser
// meets the token it produced.
func lexErrorDiagnostic(t token.Token) (diag.Code, string, bool) {
	switch t.Kind {
	case token.UnknownUnfinishedComment:
		return diag.UnterminatedComment, "block comment runs to end of file without a closing marker", true
	case token.UnknownUnfinishedFloat:
		return diag.UnfinishedFloat, "float literal is missing digits after the decimal point", true
	default:
		return 0, "", false
	}
}

// errorUnexpected reports t's specific lexical-error diagnostic if it is
// one of the UnknownUnfinished* token kinds, or a generic UnexpectedToken
// naming what otherwise.
func (c *Cursor) errorUnexpected(t token.Token, what string) {
	if code, msg, ok := lexErrorDiagnostic(t); ok {
		c.errorf(code, t.Span, "%s", msg)
		return
	}
	c.errorf(diag.UnexpectedToken, t.Span, "expected %s, found %s", what, t.Kind)
}

// text slices sp directly out of the owning file's content.
func (c *Cursor) text(sp source.Span) string {
	content := c.fs.Get(sp.File).Content
	return string(content[sp.Start:sp.End])
}

func (c *Cursor) intern(sp source.Span) source.StringID {
	return c.strings.Intern(c.text(sp))
}

// lastSpan returns the span of the most recently consumed token, used to
// build a covering span for a just-finished production.
func (c *Cursor) lastSpan() source.Span {
	if c.pos == 0 {
		return c.peek().Span
	}
	return c.toks[c.pos-1].Span
}

func (c *Cursor) errorf(code diag.Code, sp source.Span, format string, args ...any) {
	if c.reporter == nil {
		return
	}
	c.reporter.Report(diag.NewError(code, sp, fmt.Sprintf(format, args...)))
}

// snapshot/restore back the attempt combinator's bounded backtracking
// (§5): only the token index is saved, never arena or interner state, per
// "attempt restores only the token cursor, not allocations".
func (c *Cursor) snapshot() int { return c.pos }
func (c *Cursor) restore(p int) { c.pos = p }

// attempt runs fn with diagnostics suppressed; if fn reports ok == false,
// the cursor position is restored and nothing fn reported survives. Used
// sparingly, per §5, only where two alternatives are locally
// indistinguishable without lookahead past a bounded point (e.g.
// disambiguating a do-statement bind from a discard).
func attempt[T any](c *Cursor, fn func() (T, bool)) (T, bool) {
	mark := c.snapshot()
	saved := c.reporter
	c.reporter = nil
	v, ok := fn()
	c.reporter = saved
	if !ok {
		c.restore(mark)
	}
	return v, ok
}

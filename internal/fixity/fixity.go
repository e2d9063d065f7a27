// Package fixity implements the first parse pass (§4.4): for every
// declaration group whose first non-trivia token is infixl/infixr, parse
//
//	(infixl | infixr) <Int:0..=9> [type]? <identifier> as <operator>
//
// and install the result into the value or type fixity table, keyed by
// the operator's spelling.
package fixity

import (
	"strconv"

	"wisp/internal/ast"
	"wisp/internal/diag"
	"wisp/internal/source"
	"wisp/internal/token"
)

// IsFixityGroup reports whether group opens with infixl/infixr and
// therefore belongs to the first pass rather than the declaration
// parser.
func IsFixityGroup(group []token.Token) bool {
	if len(group) == 0 {
		return false
	}
	return group[0].Kind == token.KwInfixl || group[0].Kind == token.KwInfixr
}

// cursor walks one fixity declaration's token slice, reading identifier
// and operator text directly out of the source bytes (the lexer does not
// intern token text itself — only the parser's own targets get interned,
// via strings.Intern below), mirroring how the reference parser reads
// self.source[begin..end] rather than carrying text on the token.
type cursor struct {
	fs   *source.FileSet
	toks []token.Token
	pos  int
}

func (c *cursor) peek() token.Token {
	if c.pos >= len(c.toks) {
		return token.Token{Kind: token.UnknownEndOfFile}
	}
	return c.toks[c.pos]
}

func (c *cursor) take() token.Token {
	t := c.peek()
	if c.pos < len(c.toks) {
		c.pos++
	}
	return t
}

func (c *cursor) text(sp source.Span) string {
	content := c.fs.Get(sp.File).Content
	return string(content[sp.Start:sp.End])
}

// Parse parses a single fixity declaration group. On success it returns
// the operator spelling and the fixity entry to install under it. On
// failure it returns a diagnostic describing the first unsatisfied
// production.
func Parse(fs *source.FileSet, strings *source.Strings, group []token.Token) (operator string, entry ast.FixityEntry, errDiag *diag.Diagnostic) {
	c := &cursor{fs: fs, toks: group}

	head := c.take()
	var assoc ast.Associativity
	switch head.Kind {
	case token.KwInfixl:
		assoc = ast.AssocLeft
	case token.KwInfixr:
		assoc = ast.AssocRight
	default:
		d := diag.NewError(diag.UnexpectedToken, head.Span, "expected infixl or infixr")
		return "", ast.FixityEntry{}, &d
	}

	digit := c.take()
	if digit.Kind != token.DigitInt {
		d := diag.NewError(diag.UnexpectedToken, digit.Span, "expected a binding-power digit")
		return "", ast.FixityEntry{}, &d
	}
	power64, err := strconv.ParseUint(c.text(digit.Span), 10, 8)
	if err != nil || power64 > 9 {
		d := diag.NewError(diag.MalformedDigit, digit.Span, "binding power must be an integer 0..=9")
		return "", ast.FixityEntry{}, &d
	}

	domain := ast.FixityValue
	next := c.peek()
	if next.Kind == token.IdentLower && c.text(next.Span) == "type" {
		c.take()
		domain = ast.FixityType
	}

	ident := c.take()
	if ident.Kind != token.IdentLower {
		d := diag.NewError(diag.UnexpectedToken, ident.Span, "expected the fixity target identifier")
		return "", ast.FixityEntry{}, &d
	}
	target := strings.Intern(c.text(ident.Span))

	as := c.take()
	if as.Kind != token.KwAs {
		d := diag.NewError(diag.UnexpectedToken, as.Span, "expected 'as'")
		return "", ast.FixityEntry{}, &d
	}

	op := c.take()
	if !op.Kind.IsOperator() {
		d := diag.NewError(diag.UnexpectedToken, op.Span, "expected an operator")
		return "", ast.FixityEntry{}, &d
	}

	return c.text(op.Span), ast.FixityEntry{
		Assoc:  assoc,
		Power:  uint8(power64),
		Domain: domain,
		Target: target,
	}, nil
}

// Collect runs Parse over every fixity group in groups, installing
// results into the returned value/type tables. A duplicate operator
// within the same domain is reported but does not stop collection: per
// §4.4, the later definition wins.
func Collect(fs *source.FileSet, strings *source.Strings, groups [][]token.Token, r diag.Reporter) (value, typ ast.FixityTable) {
	value = make(ast.FixityTable)
	typ = make(ast.FixityTable)

	for _, g := range groups {
		if !IsFixityGroup(g) {
			continue
		}
		op, entry, errDiag := Parse(fs, strings, g)
		if errDiag != nil {
			if r != nil {
				r.Report(*errDiag)
			}
			continue
		}

		table := value
		if entry.Domain == ast.FixityType {
			table = typ
		}
		if _, dup := table[op]; dup && r != nil {
			r.Report(diag.NewError(diag.DuplicateFixity, g[0].Span,
				"duplicate fixity declaration for operator "+op))
		}
		table[op] = entry
	}
	return value, typ
}

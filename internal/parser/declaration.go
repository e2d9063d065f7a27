package parser

import (
	"wisp/internal/ast"
	"wisp/internal/diag"
	"wisp/internal/source"
	"wisp/internal/token"
)

// Declaration dispatches on the group's first token (§4.5): a lowercase
// identifier starts a value declaration or a value-domain type signature;
// an uppercase identifier starts a type-domain type signature, or a
// data/type-family/class head whose body this parser swallows without
// interpreting.
func (c *Cursor) Declaration() (*ast.Declaration, bool) {
	head := c.peek()
	switch head.Kind {
	case token.IdentLower:
		return c.lowerDeclaration()
	case token.IdentUpper:
		return c.upperDeclaration()
	default:
		c.errorUnexpected(head, "a declaration")
		return nil, false
	}
}

func (c *Cursor) lowerDeclaration() (*ast.Declaration, bool) {
	nameTok := c.advance()
	name := c.intern(nameTok.Span)

	if c.at(token.OpColon) {
		c.advance()
		typ, ok := c.parseType(0)
		if !ok {
			return nil, false
		}
		span := nameTok.Span.Cover(c.lastSpan())
		return c.in.NewDecl(ast.TypeSignatureDecl(span, ast.DomainValue, name, typ)), true
	}

	var params ast.LesserPatternList
	for c.atLesserPatternStart() {
		lp, ok := c.lesserPattern()
		if !ok {
			return nil, false
		}
		params = append(params, lp)
	}
	if _, ok := c.expect(token.OpEqual, "'='"); !ok {
		return nil, false
	}
	body, ok := c.parseExpr(0)
	if !ok {
		return nil, false
	}
	span := nameTok.Span.Cover(c.lastSpan())
	return c.in.NewDecl(ast.ValueDecl(span, name, &params, body)), true
}

func (c *Cursor) upperDeclaration() (*ast.Declaration, bool) {
	nameTok := c.advance()
	name := c.intern(nameTok.Span)

	switch {
	case c.at(token.OpColon):
		c.advance()
		typ, ok := c.parseType(0)
		if !ok {
			return nil, false
		}
		span := nameTok.Span.Cover(c.lastSpan())
		return c.in.NewDecl(ast.TypeSignatureDecl(span, ast.DomainType, name, typ)), true

	case c.at(token.OpQuestion) || c.at(token.OpBang) || c.at(token.OpPipe):
		c.advance()
		c.skipIndentedBlock()
		span := nameTok.Span.Cover(c.lastSpan())
		return c.in.NewDecl(ast.UnsupportedDecl(span, name)), true

	default:
		t := c.peek()
		if code, msg, ok := lexErrorDiagnostic(t); ok {
			c.errorf(code, t.Span, "%s", msg)
			return nil, false
		}
		c.errorf(diag.UnexpectedToken, t.Span, "expected ':' or a data/class marker after %s", c.text(nameTok.Span))
		return nil, false
	}
}

// skipIndentedBlock consumes a balanced Begin..End run if one immediately
// follows, tracking nesting depth so an interior block doesn't terminate
// the skip early. A no-op if the next token isn't a Begin.
func (c *Cursor) skipIndentedBlock() {
	if !c.at(token.LayoutBegin) {
		return
	}
	c.advance()
	depth := 1
	for depth > 0 {
		t := c.advance()
		switch t.Kind {
		case token.LayoutBegin:
			depth++
		case token.LayoutEnd:
			depth--
		case token.UnknownEndOfFile:
			return
		}
	}
}

func (c *Cursor) atLesserPatternStart() bool {
	return c.at(token.IdentLower) || c.at(token.OpUnderscore)
}

func (c *Cursor) lesserPattern() (ast.LesserPattern, bool) {
	t := c.peek()
	switch t.Kind {
	case token.IdentLower:
		c.advance()
		return ast.LesserPattern{Tag: ast.LesserIdent, Name: c.intern(t.Span)}, true
	case token.OpUnderscore:
		c.advance()
		return ast.LesserPattern{Tag: ast.LesserWildcard}, true
	default:
		c.errorUnexpected(t, "an identifier or '_'")
		return ast.LesserPattern{}, false
	}
}

// lesserPatternName returns the binder name a lesser pattern contributes
// to a curried lambda: its identifier, or the interned literal "_" for a
// wildcard (the AST's Lambda node takes a bare name, not a pattern).
func (c *Cursor) lesserPatternName(p ast.LesserPattern) source.StringID {
	if p.Tag == ast.LesserWildcard {
		return c.strings.Intern("_")
	}
	return p.Name
}

package parser

import (
	"wisp/internal/ast"
	"wisp/internal/diag"
	"wisp/internal/token"
)

// isTypeBoundary mirrors isExprBoundary for the type grammar: a narrower
// set, since types never nest inside do/case/if bodies the way
// expressions do.
func isTypeBoundary(k token.Kind) bool {
	switch k {
	case token.LayoutSeparator, token.LayoutEnd, token.CloseParen, token.UnknownEndOfFile:
		return true
	default:
		return false
	}
}

func isTypeAtomStart(k token.Kind) bool {
	switch k {
	case token.IdentLower, token.IdentUpper, token.OpenParen:
		return true
	default:
		return false
	}
}

// parseType is the type-domain twin of parseExpr (§4.6): structurally
// identical Pratt loop, but driven by the type fixity table, with "->"
// defaulting to right-associative binding power 0 when the source
// declares no overriding fixity for it (§9 Open Question 1).
func (c *Cursor) parseType(min uint8) (*ast.Type, bool) {
	left, ok := c.typeAtom()
	if !ok {
		return nil, false
	}
	for {
		t := c.peek()
		if isTypeBoundary(t.Kind) {
			return left, true
		}
		if t.Kind != token.OpArrowRight && t.Kind != token.OpSource {
			if !isTypeAtomStart(t.Kind) {
				return left, true
			}
			arg, ok := c.typeAtom()
			if !ok {
				return nil, false
			}
			span := left.Ann.Span.Cover(arg.Ann.Span)
			left = c.in.InternType(ast.FromSource(span), ast.Application(ast.TypeApp, left, arg))
			continue
		}

		op := c.text(t.Span)
		entry, known := c.typeFixity[op]
		if !known {
			if t.Kind != token.OpArrowRight {
				c.errorf(diag.UnknownBindingPower, t.Span, "type operator %s has no fixity declaration", op)
				return nil, false
			}
			entry = ast.FixityEntry{Assoc: ast.AssocRight, Power: 0, Domain: ast.FixityType}
		}
		leftPower, rightPower := entry.BindingPower()
		if leftPower < min {
			return left, true
		}
		c.advance()
		right, ok := c.parseType(rightPower)
		if !ok {
			return nil, false
		}
		span := left.Ann.Span.Cover(right.Ann.Span)
		if t.Kind == token.OpArrowRight {
			left = c.in.InternType(ast.FromSource(span), ast.Function(left, right))
			continue
		}
		fn := c.in.InternType(ast.FromSource(t.Span), ast.Constructor(entry.Target))
		step1 := c.in.InternType(ast.FromSource(left.Ann.Span.Cover(t.Span)), ast.Application(ast.TypeApp, fn, left))
		left = c.in.InternType(ast.FromSource(span), ast.Application(ast.TypeApp, step1, right))
	}
}

func (c *Cursor) typeAtom() (*ast.Type, bool) {
	t := c.peek()
	switch t.Kind {
	case token.IdentLower:
		c.advance()
		return c.in.InternType(ast.FromSource(t.Span), ast.Variable(ast.VarSyntactic, c.intern(t.Span), 0)), true

	case token.IdentUpper:
		c.advance()
		return c.in.InternType(ast.FromSource(t.Span), ast.Constructor(c.intern(t.Span))), true

	case token.OpenParen:
		c.advance()
		inner, ok := c.parseType(0)
		if !ok {
			return nil, false
		}
		if _, ok := c.expect(token.CloseParen, "')'"); !ok {
			return nil, false
		}
		return inner, true

	default:
		c.errorUnexpected(t, "a type")
		return nil, false
	}
}

package parser

import (
	"strconv"

	"wisp/internal/ast"
	"wisp/internal/diag"
	"wisp/internal/token"
)

func isPatternAtomStart(k token.Kind) bool {
	switch k {
	case token.OpUnderscore, token.IdentLower, token.IdentUpper, token.DigitInt, token.DigitFloat, token.OpenParen:
		return true
	default:
		return false
	}
}

// greaterPattern parses the arbitrary nested pattern grammar (§4.6): a
// constructor-application atom, then a Pratt loop folding infix
// constructor patterns via the value fixity table — the same table
// expressions use, since infix pattern operators expand to the same
// target identifiers.
func (c *Cursor) greaterPattern(min uint8) (*ast.Pattern, bool) {
	left, ok := c.patternAtom()
	if !ok {
		return nil, false
	}
	for {
		t := c.peek()
		if t.Kind != token.OpSource {
			return left, true
		}
		op := c.text(t.Span)
		entry, known := c.valueFixity[op]
		if !known {
			c.errorf(diag.UnknownBindingPower, t.Span, "operator %s has no fixity declaration", op)
			return nil, false
		}
		leftPower, rightPower := entry.BindingPower()
		if leftPower < min {
			return left, true
		}
		c.advance()
		right, ok := c.greaterPattern(rightPower)
		if !ok {
			return nil, false
		}
		left = c.in.InternPattern(ast.InfixPattern(c.strings.Intern(op), left, right))
	}
}

func (c *Cursor) patternAtom() (*ast.Pattern, bool) {
	t := c.peek()
	switch t.Kind {
	case token.OpUnderscore:
		c.advance()
		return c.in.InternPattern(ast.WildcardPattern()), true

	case token.IdentLower:
		c.advance()
		return c.in.InternPattern(ast.VariablePattern(c.intern(t.Span))), true

	case token.DigitInt:
		c.advance()
		v, err := strconv.ParseInt(c.text(t.Span), 10, 32)
		if err != nil {
			c.errorf(diag.MalformedDigit, t.Span, "malformed integer literal")
			return nil, false
		}
		lit := c.in.InternLiteral(ast.IntLiteral(int32(v)))
		return c.in.InternPattern(ast.LiteralPattern(lit)), true

	case token.DigitFloat:
		c.advance()
		v, err := strconv.ParseFloat(c.text(t.Span), 64)
		if err != nil {
			c.errorf(diag.MalformedDigit, t.Span, "malformed float literal")
			return nil, false
		}
		lit := c.in.InternLiteral(ast.FloatLiteral(c.in.Floats.Intern(v)))
		return c.in.InternPattern(ast.LiteralPattern(lit)), true

	case token.IdentUpper:
		c.advance()
		name := c.intern(t.Span)
		var args ast.PatternList
		for isPatternAtomStart(c.peek().Kind) {
			arg, ok := c.patternAtom()
			if !ok {
				return nil, false
			}
			args = append(args, arg)
		}
		if len(args) == 0 {
			return c.in.InternPattern(ast.ConstructorPattern(name, nil)), true
		}
		return c.in.InternPattern(ast.ConstructorPattern(name, &args)), true

	case token.OpenParen:
		c.advance()
		inner, ok := c.greaterPattern(0)
		if !ok {
			return nil, false
		}
		if _, ok := c.expect(token.CloseParen, "')'"); !ok {
			return nil, false
		}
		return inner, true

	default:
		c.errorUnexpected(t, "a pattern")
		return nil, false
	}
}

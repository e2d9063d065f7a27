package parser

import (
	"strconv"

	"wisp/internal/ast"
	"wisp/internal/diag"
	"wisp/internal/source"
	"wisp/internal/token"
)

// isExprBoundary reports whether k ends an expression: the Pratt loop (and
// anything parsing a bare expression) stops here without consuming k.
func isExprBoundary(k token.Kind) bool {
	switch k {
	case token.LayoutSeparator, token.LayoutEnd, token.CloseParen, token.CloseSquare, token.CloseBrace,
		token.KwThen, token.KwElse, token.KwOf, token.KwIn, token.OpComma, token.UnknownEndOfFile:
		return true
	default:
		return false
	}
}

func isExprAtomStart(k token.Kind) bool {
	switch k {
	case token.DigitInt, token.DigitFloat, token.IdentLower, token.IdentUpper,
		token.OpenParen, token.KwIf, token.KwDo, token.KwCase, token.KwLet, token.OpBackslash:
		return true
	default:
		return false
	}
}

// parseExpr is parse_expr_with_power(min) (§4.6): an atom or block
// expression, then a loop that folds trailing infix operators (looked up
// in the value fixity table) and juxtaposed arguments (left-associative
// application) onto the accumulator.
func (c *Cursor) parseExpr(min uint8) (*ast.Expr, bool) {
	left, ok := c.parseExprAtom()
	if !ok {
		return nil, false
	}
	for {
		t := c.peek()
		if isExprBoundary(t.Kind) {
			return left, true
		}
		if t.Kind == token.OpSource {
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
			right, ok := c.parseExpr(rightPower)
			if !ok {
				return nil, false
			}
			fn := c.in.InternExpr(ast.FromSource(t.Span), ast.VariableExpr(entry.Target))
			step1 := c.in.InternExpr(ast.FromSource(left.Ann.Span.Cover(t.Span)),
				ast.ApplicationExpr(fn, ast.Arg{Tag: ast.ArgExpr, Expr: left}))
			left = c.in.InternExpr(ast.FromSource(left.Ann.Span.Cover(right.Ann.Span)),
				ast.ApplicationExpr(step1, ast.Arg{Tag: ast.ArgExpr, Expr: right}))
			continue
		}
		if !isExprAtomStart(t.Kind) {
			return left, true
		}
		arg, ok := c.parseExprAtom()
		if !ok {
			return nil, false
		}
		left = c.in.InternExpr(ast.FromSource(left.Ann.Span.Cover(arg.Ann.Span)),
			ast.ApplicationExpr(left, ast.Arg{Tag: ast.ArgExpr, Expr: arg}))
	}
}

// parseExprAtom parses one atom or block expression. Block forms
// (if/do/case/let/lambda) are recognized here rather than as a separate
// pre-Pratt step, so step 2 of the Pratt loop ("a block keyword folds as
// an application argument") falls out of reusing this same function for
// both the loop's head and its folded arguments.
func (c *Cursor) parseExprAtom() (*ast.Expr, bool) {
	t := c.peek()
	switch t.Kind {
	case token.DigitInt:
		c.advance()
		v, err := strconv.ParseInt(c.text(t.Span), 10, 32)
		if err != nil {
			c.errorf(diag.MalformedDigit, t.Span, "malformed integer literal")
			return nil, false
		}
		lit := c.in.InternLiteral(ast.IntLiteral(int32(v)))
		return c.in.InternExpr(ast.FromSource(t.Span), ast.LiteralExpr(lit)), true

	case token.DigitFloat:
		c.advance()
		v, err := strconv.ParseFloat(c.text(t.Span), 64)
		if err != nil {
			c.errorf(diag.MalformedDigit, t.Span, "malformed float literal")
			return nil, false
		}
		lit := c.in.InternLiteral(ast.FloatLiteral(c.in.Floats.Intern(v)))
		return c.in.InternExpr(ast.FromSource(t.Span), ast.LiteralExpr(lit)), true

	case token.IdentLower, token.IdentUpper:
		c.advance()
		return c.in.InternExpr(ast.FromSource(t.Span), ast.VariableExpr(c.intern(t.Span))), true

	case token.OpenParen:
		c.advance()
		inner, ok := c.parseExpr(0)
		if !ok {
			return nil, false
		}
		if _, ok := c.expect(token.CloseParen, "')'"); !ok {
			return nil, false
		}
		return inner, true

	case token.KwIf:
		return c.parseIfExpr()
	case token.KwDo:
		return c.parseDoExpr()
	case token.KwCase:
		return c.parseCaseExpr()
	case token.KwLet:
		return c.parseLetExpr()
	case token.OpBackslash:
		return c.parseLambdaExpr()

	default:
		c.errorUnexpected(t, "an expression")
		return nil, false
	}
}

func (c *Cursor) parseIfExpr() (*ast.Expr, bool) {
	head := c.advance() // KwIf
	cond, ok := c.parseExpr(0)
	if !ok {
		return nil, false
	}
	if _, ok := c.expect(token.KwThen, "'then'"); !ok {
		return nil, false
	}
	then, ok := c.parseExpr(0)
	if !ok {
		return nil, false
	}
	if _, ok := c.expect(token.KwElse, "'else'"); !ok {
		return nil, false
	}
	els, ok := c.parseExpr(0)
	if !ok {
		return nil, false
	}
	span := head.Span.Cover(c.lastSpan())
	return c.in.InternExpr(ast.FromSource(span), ast.IfThenElseExpr(cond, then, els)), true
}

func (c *Cursor) parseLambdaExpr() (*ast.Expr, bool) {
	head := c.advance() // OpBackslash
	var params ast.LesserPatternList
	for c.atLesserPatternStart() {
		p, ok := c.lesserPattern()
		if !ok {
			return nil, false
		}
		params = append(params, p)
	}
	if len(params) == 0 {
		c.errorUnexpected(c.peek(), "at least one lambda parameter")
		return nil, false
	}
	if _, ok := c.expect(token.OpArrowRight, "'->'"); !ok {
		return nil, false
	}
	body, ok := c.parseExpr(0)
	if !ok {
		return nil, false
	}
	return c.curryLambda(head.Span, params, body), true
}

// curryLambda folds params right-to-left around body: `\p1 p2 -> e`
// becomes Lambda(p1, Lambda(p2, e)), since the AST's Lambda node binds
// exactly one parameter.
func (c *Cursor) curryLambda(headSpan source.Span, params ast.LesserPatternList, body *ast.Expr) *ast.Expr {
	result := body
	for i := len(params) - 1; i >= 0; i-- {
		name := c.lesserPatternName(params[i])
		span := headSpan.Cover(result.Ann.Span)
		result = c.in.InternExpr(ast.FromSource(span), ast.LambdaExpr(name, result))
	}
	return result
}

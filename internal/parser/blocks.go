package parser

import (
	"wisp/internal/ast"
	"wisp/internal/source"
	"wisp/internal/token"
)

func (c *Cursor) parseDoExpr() (*ast.Expr, bool) {
	head := c.advance() // KwDo
	if _, ok := c.expect(token.LayoutBegin, "an indented do-block"); !ok {
		return nil, false
	}
	var stmts ast.DoStmtList
	for !c.at(token.LayoutEnd) {
		st, ok := c.doStmt()
		if !ok {
			return nil, false
		}
		stmts = append(stmts, st)
		if c.at(token.LayoutSeparator) {
			c.advance()
			continue
		}
		break
	}
	if _, ok := c.expect(token.LayoutEnd, "end of do-block"); !ok {
		return nil, false
	}
	span := head.Span.Cover(c.lastSpan())
	return c.in.InternExpr(ast.FromSource(span), ast.DoBlockExpr(&stmts)), true
}

// doStmt parses one do-block statement (§4.6): a let-statement (no "in"),
// a pattern bind ("pattern <- expr"), or a discarded expression. A "let"
// that turns out to be followed by "in" is really a let-*expression* used
// as a discard statement's expression, so it's re-parsed as one; a
// pattern-vs-expression ambiguity at statement head is resolved with
// attempt, per §5's canonical example of when to backtrack.
func (c *Cursor) doStmt() (ast.DoStmt, bool) {
	if c.at(token.KwLet) {
		mark := c.snapshot()
		decls, ok := c.letDeclBlock()
		if !ok {
			return ast.DoStmt{}, false
		}
		if c.at(token.KwIn) {
			c.restore(mark)
			expr, ok := c.parseExpr(0)
			if !ok {
				return ast.DoStmt{}, false
			}
			return ast.DoStmt{Tag: ast.DoStmtDiscard, Expr: expr}, true
		}
		return ast.DoStmt{Tag: ast.DoStmtLet, Decls: decls}, true
	}

	if pat, expr, ok := c.tryDoBind(); ok {
		return ast.DoStmt{Tag: ast.DoStmtBind, Pattern: pat, Expr: expr}, true
	}
	expr, ok := c.parseExpr(0)
	if !ok {
		return ast.DoStmt{}, false
	}
	return ast.DoStmt{Tag: ast.DoStmtDiscard, Expr: expr}, true
}

type doBind struct {
	pattern *ast.Pattern
	expr    *ast.Expr
}

func (c *Cursor) tryDoBind() (*ast.Pattern, *ast.Expr, bool) {
	r, ok := attempt(c, func() (doBind, bool) {
		pat, ok := c.greaterPattern(0)
		if !ok {
			return doBind{}, false
		}
		if !c.at(token.OpArrowLeft) {
			return doBind{}, false
		}
		c.advance()
		expr, ok := c.parseExpr(0)
		if !ok {
			return doBind{}, false
		}
		return doBind{pattern: pat, expr: expr}, true
	})
	if !ok {
		return nil, nil, false
	}
	return r.pattern, r.expr, true
}

// letDeclBlock parses "let" "{" decl (";" decl)* "}", reusing the ordinary
// declaration dispatcher for each member.
func (c *Cursor) letDeclBlock() (*ast.DeclList, bool) {
	c.advance() // KwLet
	if _, ok := c.expect(token.LayoutBegin, "an indented let-block"); !ok {
		return nil, false
	}
	var decls ast.DeclList
	for !c.at(token.LayoutEnd) {
		d, ok := c.Declaration()
		if !ok {
			return nil, false
		}
		decls = append(decls, d)
		if c.at(token.LayoutSeparator) {
			c.advance()
			continue
		}
		break
	}
	if _, ok := c.expect(token.LayoutEnd, "end of let-block"); !ok {
		return nil, false
	}
	return &decls, true
}

// parseLetExpr parses the `let { decl+ } in e` expression form.
func (c *Cursor) parseLetExpr() (*ast.Expr, bool) {
	head := c.peek()
	decls, ok := c.letDeclBlock()
	if !ok {
		return nil, false
	}
	if _, ok := c.expect(token.KwIn, "'in'"); !ok {
		return nil, false
	}
	body, ok := c.parseExpr(0)
	if !ok {
		return nil, false
	}
	return c.foldLetBindings(head.Span, *decls, body), true
}

type boundBinding struct {
	span  source.Span
	name  source.StringID
	typ   *ast.Type
	value *ast.Expr
}

// foldLetBindings turns a block of declarations into nested LetBinding
// expressions around body. A value declaration with parameters is curried
// into a lambda first (`f x = e` desugars to `f = \x -> e`); a type
// signature pairs with the value declaration of the same name that
// immediately follows it, contributing that binding's type annotation.
func (c *Cursor) foldLetBindings(headSpan source.Span, decls ast.DeclList, body *ast.Expr) *ast.Expr {
	var bindings []boundBinding
	var pendingType *ast.Type
	var pendingName source.StringID
	havePending := false

	for _, d := range decls {
		switch d.Tag {
		case ast.DeclTypeSignature:
			pendingType = d.Type
			pendingName = d.Name
			havePending = true
		case ast.DeclValue:
			value := d.Body
			if d.Params != nil && len(*d.Params) > 0 {
				value = c.curryLambda(d.Span, *d.Params, value)
			}
			var typ *ast.Type
			if havePending && pendingName == d.Name {
				typ = pendingType
			}
			havePending = false
			bindings = append(bindings, boundBinding{span: d.Span, name: d.Name, typ: typ, value: value})
		}
	}

	result := body
	for i := len(bindings) - 1; i >= 0; i-- {
		b := bindings[i]
		span := headSpan.Cover(b.span).Cover(result.Ann.Span)
		result = c.in.InternExpr(ast.FromSource(span), ast.LetBindingExpr(b.name, b.typ, b.value, result))
	}
	return result
}

func (c *Cursor) parseCaseExpr() (*ast.Expr, bool) {
	head := c.advance() // KwCase
	var scrutinees ast.ExprList

	e, ok := c.parseExpr(0)
	if !ok {
		return nil, false
	}
	scrutinees = append(scrutinees, e)
	for c.at(token.OpComma) {
		c.advance()
		e, ok := c.parseExpr(0)
		if !ok {
			return nil, false
		}
		scrutinees = append(scrutinees, e)
	}

	if _, ok := c.expect(token.KwOf, "'of'"); !ok {
		return nil, false
	}
	if _, ok := c.expect(token.LayoutBegin, "an indented case-block"); !ok {
		return nil, false
	}
	var arms ast.CaseArmList
	for !c.at(token.LayoutEnd) {
		arm, ok := c.caseArm()
		if !ok {
			return nil, false
		}
		arms = append(arms, arm)
		if c.at(token.LayoutSeparator) {
			c.advance()
			continue
		}
		break
	}
	if _, ok := c.expect(token.LayoutEnd, "end of case-block"); !ok {
		return nil, false
	}
	span := head.Span.Cover(c.lastSpan())
	return c.in.InternExpr(ast.FromSource(span), ast.CaseExpr(&scrutinees, &arms)), true
}

func (c *Cursor) caseArm() (ast.CaseArm, bool) {
	var pats ast.PatternList
	p, ok := c.greaterPattern(0)
	if !ok {
		return ast.CaseArm{}, false
	}
	pats = append(pats, p)
	for c.at(token.OpComma) {
		c.advance()
		p, ok := c.greaterPattern(0)
		if !ok {
			return ast.CaseArm{}, false
		}
		pats = append(pats, p)
	}

	var guard *ast.Expr
	if c.at(token.KwIf) {
		c.advance()
		g, ok := c.parseExpr(0)
		if !ok {
			return ast.CaseArm{}, false
		}
		guard = g
	}

	if _, ok := c.expect(token.OpArrowRight, "'->'"); !ok {
		return ast.CaseArm{}, false
	}
	body, ok := c.parseExpr(0)
	if !ok {
		return ast.CaseArm{}, false
	}
	return ast.CaseArm{Patterns: &pats, Guard: guard, Body: body}, true
}

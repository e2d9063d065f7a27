// Package layout implements the indentation layout engine (§4.2): it walks
// the raw token stream from the lexer and synthesizes LayoutBegin,
// LayoutSeparator and LayoutEnd tokens from each token's source column,
// turning an indentation-sensitive grammar into a bracket-and-semicolon one
// the parser can consume uniformly.
package layout

// delimiterKind is the closed set of layout-stack frames. Some frames track
// real keyword contexts (case/of/do/ado/if/then/let), others are masks that
// exist only to bound a sub-expression (a lambda body, a pattern list, the
// top level of a `!`/`|`/`?` guard block, the module root).
type delimiterKind uint8

const (
	dKwAdo delimiterKind = iota
	dKwCase
	dKwDo
	dKwIf
	dKwLetExpr
	dKwLetStmt
	dKwOf
	dKwThen
	dMaskLam
	dMaskPat
	dMaskRoot
	dMaskTop
)

// isIndented reports whether frames of this kind participate in
// column-triggered separator/end insertion. Non-indented frames (case, if,
// then, the lambda/pattern masks) exist purely to be matched against by a
// later keyword and never themselves trigger layout on a dedent.
func (k delimiterKind) isIndented() bool {
	switch k {
	case dKwAdo, dKwDo, dKwLetExpr, dKwLetStmt, dKwOf, dMaskRoot, dMaskTop:
		return true
	default:
		return false
	}
}

func (k delimiterKind) String() string {
	switch k {
	case dKwAdo:
		return "ado"
	case dKwCase:
		return "case"
	case dKwDo:
		return "do"
	case dKwIf:
		return "if"
	case dKwLetExpr:
		return "let-expr"
	case dKwLetStmt:
		return "let-stmt"
	case dKwOf:
		return "of"
	case dKwThen:
		return "then"
	case dMaskLam:
		return "lambda-mask"
	case dMaskPat:
		return "pattern-mask"
	case dMaskRoot:
		return "root-mask"
	case dMaskTop:
		return "top-mask"
	default:
		return "unknown"
	}
}

// position is a 1-based line/column pair, matching source.LineCol.
type position struct {
	Line uint32
	Col  uint32
}

type delimiter struct {
	pos  position
	kind delimiterKind
}

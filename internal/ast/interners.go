package ast

import (
	"wisp/internal/intern"
	"wisp/internal/source"
)

// Interners bundles every per-kind interner a single parse needs (§4.7):
// one per recursive AST sum type plus the dedicated string and float
// interners. A parse invocation owns exactly one Interners value, created
// fresh and discarded whole when the parse is done — there is no
// per-node teardown.
type Interners struct {
	Strings *source.Strings
	Floats  *intern.FloatInterner

	Anns     *intern.Interner[Ann]
	Types    *intern.Interner[TypeKind]
	TypeRefs *intern.Interner[Type]
	Literals *intern.Interner[Literal]
	Exprs    *intern.Interner[ExprKind]
	ExprRefs *intern.Interner[Expr]
	Patterns *intern.Interner[Pattern]
	Lessers  *intern.Interner[LesserPattern]

	// Declarations are not hash-consed (see Declaration's doc comment)
	// but are still allocated from one arena per parse for uniform
	// lifetime management.
	Decls *intern.Arena[Declaration]
}

// NewInterners creates an Interners with every table pre-sized to capHint.
func NewInterners(capHint uint) *Interners {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Interners{
		Strings:  source.NewStrings(),
		Floats:   intern.NewFloatInterner(capHint),
		Anns:     intern.NewInterner[Ann](capHint),
		Types:    intern.NewInterner[TypeKind](capHint),
		TypeRefs: intern.NewInterner[Type](capHint),
		Literals: intern.NewInterner[Literal](capHint),
		Exprs:    intern.NewInterner[ExprKind](capHint),
		ExprRefs: intern.NewInterner[Expr](capHint),
		Patterns: intern.NewInterner[Pattern](capHint),
		Lessers:  intern.NewInterner[LesserPattern](capHint),
		Decls:    intern.NewArena[Declaration](capHint),
	}
}

// InternAnn interns an annotation.
func (in *Interners) InternAnn(a Ann) *Ann { return in.Anns.Intern(a) }

// InternType interns a type shape and wraps it with ann into an interned
// Type node.
func (in *Interners) InternType(ann *Ann, kind TypeKind) *Type {
	k := in.Types.Intern(kind)
	return in.TypeRefs.Intern(Type{Ann: ann, Kind: k})
}

// InternLiteral interns a literal value.
func (in *Interners) InternLiteral(lit Literal) *Literal { return in.Literals.Intern(lit) }

// InternExpr interns an expression shape and wraps it with ann into an
// interned Expr node.
func (in *Interners) InternExpr(ann *Ann, kind ExprKind) *Expr {
	k := in.Exprs.Intern(kind)
	return in.ExprRefs.Intern(Expr{Ann: ann, Kind: k})
}

// InternPattern interns a greater pattern.
func (in *Interners) InternPattern(p Pattern) *Pattern { return in.Patterns.Intern(p) }

// InternLesser interns a lesser pattern.
func (in *Interners) InternLesser(p LesserPattern) *LesserPattern { return in.Lessers.Intern(p) }

// NewDecl allocates a declaration. Declarations are not hash-consed.
func (in *Interners) NewDecl(d Declaration) *Declaration { return in.Decls.Allocate(d) }

package ast

import "wisp/internal/source"

// ArgTag discriminates an application argument: ordinary value
// application vs an explicit type-level argument.
type ArgTag uint8

const (
	ArgExpr ArgTag = iota
	ArgType
)

// Arg is one argument of an Application node.
type Arg struct {
	Tag  ArgTag
	Expr *Expr // valid when Tag == ArgExpr
	Type *Type // valid when Tag == ArgType
}

// DoStmtTag discriminates one statement of a do-block.
type DoStmtTag uint8

const (
	DoStmtLet DoStmtTag = iota
	DoStmtBind
	DoStmtDiscard
)

// DoStmt is one statement inside a DoBlock.
type DoStmt struct {
	Tag DoStmtTag

	Decls *DeclList // DoStmtLet

	Pattern *Pattern // DoStmtBind
	Expr    *Expr    // DoStmtBind (rhs), DoStmtDiscard (the expression)
}

// DoStmtList is a boxed sequence of do-statements.
type DoStmtList []DoStmt

// CaseArm is one arm of a Case expression: a pattern per scrutinee, an
// optional guard, and the arm body.
type CaseArm struct {
	Patterns *PatternList
	Guard    *Expr // nil if the arm carries no guard
	Body     *Expr
}

// CaseArmList is a boxed sequence of case arms.
type CaseArmList []CaseArm

// ExprTag discriminates the ExprKind sum.
type ExprTag uint8

const (
	EKAnnotation ExprTag = iota
	EKApplication
	EKIfThenElse
	EKLambda
	EKLetBinding
	EKLiteral
	EKVariable
	EKCase
	EKDoBlock
)

// ExprKind is the ExprKind entity (§3). As with TypeKind, every variant's
// payload is scalars and pointers, so the struct as a whole is comparable
// and usable as an Interner map key.
type ExprKind struct {
	Tag ExprTag

	// EKAnnotation
	AnnotatedExpr *Expr
	AnnotatedType *Type

	// EKApplication
	Func *Expr
	Arg  Arg

	// EKIfThenElse
	Cond, Then, Else *Expr

	// EKLambda: Param -> Body
	Param source.StringID
	Body  *Expr

	// EKLetBinding, EKVariable
	Name source.StringID
	// EKLetBinding: optional type annotation (nil if absent), the bound
	// value, and the body the binding is in scope for. A multi-binding
	// `let { d1; d2 } in e` nests: LetBinding(d1, LetBinding(d2, e)).
	LetType  *Type
	LetValue *Expr
	LetBody  *Expr

	// EKLiteral
	Lit *Literal

	// EKCase
	Scrutinees *ExprList
	Arms       *CaseArmList

	// EKDoBlock
	Stmts *DoStmtList
}

// ExprList is a boxed sequence of expressions (case scrutinees, array
// elements before an array literal is built, etc).
type ExprList []*Expr

// Expr is the Expr entity: an (Annotation, ExprKind) pair.
type Expr struct {
	Ann  *Ann
	Kind *ExprKind
}

func AnnotationExpr(expr *Expr, typ *Type) ExprKind {
	return ExprKind{Tag: EKAnnotation, AnnotatedExpr: expr, AnnotatedType: typ}
}

func ApplicationExpr(fn *Expr, arg Arg) ExprKind {
	return ExprKind{Tag: EKApplication, Func: fn, Arg: arg}
}

func IfThenElseExpr(cond, then, els *Expr) ExprKind {
	return ExprKind{Tag: EKIfThenElse, Cond: cond, Then: then, Else: els}
}

func LambdaExpr(param source.StringID, body *Expr) ExprKind {
	return ExprKind{Tag: EKLambda, Param: param, Body: body}
}

func LetBindingExpr(name source.StringID, typ *Type, value, body *Expr) ExprKind {
	return ExprKind{Tag: EKLetBinding, Name: name, LetType: typ, LetValue: value, LetBody: body}
}

func LiteralExpr(lit *Literal) ExprKind { return ExprKind{Tag: EKLiteral, Lit: lit} }

func VariableExpr(name source.StringID) ExprKind { return ExprKind{Tag: EKVariable, Name: name} }

func CaseExpr(scrutinees *ExprList, arms *CaseArmList) ExprKind {
	return ExprKind{Tag: EKCase, Scrutinees: scrutinees, Arms: arms}
}

func DoBlockExpr(stmts *DoStmtList) ExprKind { return ExprKind{Tag: EKDoBlock, Stmts: stmts} }

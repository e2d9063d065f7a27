package ast

import "wisp/internal/source"

// TypeAppKind distinguishes ordinary type application from kind
// application (applying a type constructor to a kind-level argument).
type TypeAppKind uint8

const (
	TypeApp TypeAppKind = iota
	KindApp
)

// QuantKind is universal (forall) vs existential (exists) quantification.
type QuantKind uint8

const (
	Universal QuantKind = iota
	Existential
)

// TypeVarKind is the three-way split from the GLOSSARY: skolems are rigid,
// unification variables are solver placeholders, syntactic variables come
// straight from source text.
type TypeVarKind uint8

const (
	VarSkolem TypeVarKind = iota
	VarSyntactic
	VarUnification
)

// TypeTag discriminates the TypeKind sum.
type TypeTag uint8

const (
	TKApplication TypeTag = iota
	TKConstructor
	TKFunction
	TKKinded
	TKQuantifier
	TKVariable
)

// TypeKind is the TypeKind entity (§3): a single comparable struct rather
// than an interface, since every variant's payload is itself a handful of
// scalars and interned pointers — all comparable, so the whole struct can
// be used directly as an Interner map key.
type TypeKind struct {
	Tag TypeTag

	// TKApplication
	App      TypeAppKind
	Func     *Type
	Arg      *Type

	// TKConstructor, TKQuantifier (bound name), TKVariable (syntactic name)
	Name source.StringID

	// TKFunction: Domain -> Codomain
	Domain   *Type
	Codomain *Type

	// TKKinded: Of :: Kind
	Of   *Type
	Kind *Type

	// TKQuantifier
	Quant     QuantKind
	BoundKind *Type // optional kind annotation on the bound variable, nil if absent
	Body      *Type

	// TKVariable
	Var          TypeVarKind
	Unification uint32
}

// Kind is an alias: in this language kinds are themselves represented as
// Type values (no separate kind grammar), matching TKKinded's shape.
type Kind = Type

// Type is the Type entity: an (Annotation, TypeKind) pair, interned as a
// unit so two types are equal iff their annotation and shape both match.
type Type struct {
	Ann  *Ann
	Kind *TypeKind
}

// Constructor builds the TypeKind for a named type constructor reference.
func Constructor(name source.StringID) TypeKind {
	return TypeKind{Tag: TKConstructor, Name: name}
}

// Function builds the TypeKind for a function type domain -> codomain.
func Function(domain, codomain *Type) TypeKind {
	return TypeKind{Tag: TKFunction, Domain: domain, Codomain: codomain}
}

// Application builds the TypeKind for applying fn to arg, at either the
// type or kind level per kind.
func Application(kind TypeAppKind, fn, arg *Type) TypeKind {
	return TypeKind{Tag: TKApplication, App: kind, Func: fn, Arg: arg}
}

// Kinded builds the TypeKind for `of :: kind`.
func Kinded(of, kind *Type) TypeKind {
	return TypeKind{Tag: TKKinded, Of: of, Kind: kind}
}

// Quantifier builds the TypeKind for a bound variable over body, with an
// optional kind annotation (nil if none was given).
func Quantifier(quant QuantKind, name source.StringID, boundKind *Type, body *Type) TypeKind {
	return TypeKind{Tag: TKQuantifier, Quant: quant, Name: name, BoundKind: boundKind, Body: body}
}

// Variable builds the TypeKind for a type variable reference. unification
// is only meaningful when varKind is VarUnification.
func Variable(varKind TypeVarKind, name source.StringID, unification uint32) TypeKind {
	return TypeKind{Tag: TKVariable, Var: varKind, Name: name, Unification: unification}
}

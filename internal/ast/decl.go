package ast

import "wisp/internal/source"

// DeclTag discriminates the Declaration sum.
type DeclTag uint8

const (
	DeclValue DeclTag = iota
	DeclTypeSignature
	// DeclUnsupported marks a recognized-but-unmodeled declaration head
	// (data / type-family / type-class — §4.5 says the parser need only
	// recognize the head and swallow its indented body). Name is the
	// head's identifier; the body carries no further structure.
	DeclUnsupported
)

// TypeSigDomain distinguishes a value-level signature (`f : T`) from a
// type-level one (`F : K`, a kind signature).
type TypeSigDomain uint8

const (
	DomainValue TypeSigDomain = iota
	DomainType
)

// Declaration is the Declaration entity. Unlike the other AST entities it
// is not interned — two declarations are never meant to collapse to one
// pointer, since each names a distinct top-level binding — but it is
// still allocated out of a Declarations arena so a Module owns its
// lifetime uniformly with everything else.
type Declaration struct {
	Tag  DeclTag
	Span source.Span

	// DeclValue
	Name    source.StringID
	Params  *LesserPatternList
	Body    *Expr

	// DeclTypeSignature
	Domain TypeSigDomain
	Type   *Type
}

// DeclList is a boxed sequence of declarations, used for a let-block's
// body inside an expression (DoStmt's Decls, LetBinding's surrounding
// block before it collapses to a single binding per entry).
type DeclList []*Declaration

func ValueDecl(span source.Span, name source.StringID, params *LesserPatternList, body *Expr) Declaration {
	return Declaration{Tag: DeclValue, Span: span, Name: name, Params: params, Body: body}
}

func TypeSignatureDecl(span source.Span, domain TypeSigDomain, name source.StringID, typ *Type) Declaration {
	return Declaration{Tag: DeclTypeSignature, Span: span, Domain: domain, Name: name, Type: typ}
}

func UnsupportedDecl(span source.Span, name source.StringID) Declaration {
	return Declaration{Tag: DeclUnsupported, Span: span, Name: name}
}

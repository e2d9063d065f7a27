// Package ast defines the AST entities of §3's data model. Every
// recursive node kind is a Go sum type (a single fully comparable struct
// whose Tag field selects the variant — §9's "model AST kinds as sum types"),
// and every node is allocated through intern.Interner so that structurally
// equal nodes collapse to one pointer: AST equality is pointer equality.
package ast

import "wisp/internal/source"

// AnnKind distinguishes a compiler-synthesized node from one that traces
// back to a source span.
type AnnKind uint8

const (
	AnnFromCompiler AnnKind = iota
	AnnFromSource
)

// Ann is the Annotation entity: FromCompiler carries no span, FromSource
// pins the node to the source text that produced it. Ann values are
// interned, so two annotations naming the same span (or both
// FromCompiler) collapse to one pointer.
type Ann struct {
	Kind AnnKind
	Span source.Span
}

// FromCompiler is the canonical zero-span annotation for synthesized nodes.
func FromCompiler() Ann { return Ann{Kind: AnnFromCompiler} }

// FromSource annotates a node with the span of the source text it came from.
func FromSource(span source.Span) Ann { return Ann{Kind: AnnFromSource, Span: span} }

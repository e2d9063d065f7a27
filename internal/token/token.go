package token

import "wisp/internal/source"

// Token is a single lexical token: its content span, the leading trivia
// (whitespace/comments) that preceded it, its Kind, and the layout Depth
// the layout engine has stamped on it (zero until the layout pass runs).
type Token struct {
	Kind    Kind
	Span    source.Span
	Leading []Trivia
	Depth   uint32
}

// LeadingSpan covers every byte of leading trivia, or a zero-width span at
// Span.Start when there is none — used to round-trip source text exactly.
func (t Token) LeadingSpan() source.Span {
	if len(t.Leading) == 0 {
		return t.Span.AtStart()
	}
	return source.Span{
		File:  t.Leading[0].Span.File,
		Start: t.Leading[0].Span.Start,
		End:   t.Leading[len(t.Leading)-1].Span.End,
	}
}

// IsEOF reports whether t is the sentinel end-of-file token.
func (t Token) IsEOF() bool { return t.Kind == UnknownEndOfFile }

// IsSeparatorAtDepth0 reports whether t is a depth-0 layout separator, the
// partitioner's declaration-group boundary.
func (t Token) IsSeparatorAtDepth0() bool {
	return t.Kind == LayoutSeparator && t.Depth == 0
}

// WithDepth returns a copy of t with Depth set to d.
func (t Token) WithDepth(d uint32) Token {
	t.Depth = d
	return t
}

package layout

import (
	"wisp/internal/source"
	"wisp/internal/token"
)

// Run applies the layout engine to a flat token stream produced by the
// lexer for a single file and returns the stream with LayoutBegin,
// LayoutSeparator and LayoutEnd tokens inserted. toks must end with an
// UnknownEndOfFile token; Run panics otherwise, since the algorithm relies
// on always being able to look one token ahead.
//
// A one-token (or empty) input is returned unchanged: there is nothing to
// lay out around a bare EOF.
func Run(fs *source.FileSet, file source.FileID, toks []token.Token) []token.Token {
	if len(toks) == 0 {
		return toks
	}
	if len(toks) == 1 {
		if !toks[0].IsEOF() {
			panic("layout: token stream must end with an EOF token")
		}
		return toks
	}
	if !toks[len(toks)-1].IsEOF() {
		panic("layout: token stream must end with an EOF token")
	}

	pos := func(off uint32) position {
		lc, _ := fs.Resolve(source.Span{File: file, Start: off, End: off})
		return position{Line: lc.Line, Col: lc.Col}
	}

	initial := pos(toks[0].Span.Start)
	eng := newEngine(initial)

	out := make([]token.Token, 0, len(toks)+len(toks)/4)
	for i, tok := range toks {
		if i == len(toks)-1 {
			eng.finalize(&out, file, tok.Span.Start)
			out = append(out, tok.WithDepth(eng.depth))
			break
		}
		nowPos := pos(tok.Span.Start)
		nextPos := pos(toks[i+1].Span.Start)
		eng.addLayout(&out, file, tok, nowPos, nextPos)
	}
	return out
}

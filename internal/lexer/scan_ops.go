package lexer

import "wisp/internal/token"

// scanOperator consumes a run of symbolic-operator bytes and classifies it
// against the reserved spellings; anything else becomes a user-defined
// OpSource operator.
func (lx *Lexer) scanOperator() token.Token {
	m := lx.cursor.Mark()
	for isSymbolByte(lx.cursor.PeekByte()) {
		lx.cursor.BumpByte()
	}
	span := lx.cursor.SpanFrom(m)
	text := string(lx.file.Content[span.Start:span.End])

	if kind, ok := token.LookupOperator(text); ok {
		return token.Token{Kind: kind, Span: span}
	}
	return token.Token{Kind: token.OpSource, Span: span}
}

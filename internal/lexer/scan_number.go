package lexer

import "wisp/internal/token"

// scanNumber consumes a digit run, optionally extending through a decimal
// point into a float. A trailing ".." (range-style) is left unconsumed so
// the parser sees Int followed by a single ".." operator token; a '.' that is
// followed by neither a digit nor another '.' is a malformed float.
func (lx *Lexer) scanNumber() token.Token {
	m := lx.cursor.Mark()
	for isASCIIDigit(lx.cursor.PeekByte()) {
		lx.cursor.BumpByte()
	}

	if lx.cursor.PeekByte() != '.' {
		return token.Token{Kind: token.DigitInt, Span: lx.cursor.SpanFrom(m)}
	}

	next := lx.cursor.PeekByteAt(1)
	switch {
	case isASCIIDigit(next):
		lx.cursor.BumpByte() // '.'
		for isASCIIDigit(lx.cursor.PeekByte()) {
			lx.cursor.BumpByte()
		}
		return token.Token{Kind: token.DigitFloat, Span: lx.cursor.SpanFrom(m)}

	case next == '.':
		// ".." — leave both dots for the operator scanner; this is an Int.
		return token.Token{Kind: token.DigitInt, Span: lx.cursor.SpanFrom(m)}

	default:
		lx.cursor.BumpByte() // consume the lone '.' so the error token covers it
		return token.Token{Kind: token.UnknownUnfinishedFloat, Span: lx.cursor.SpanFrom(m)}
	}
}

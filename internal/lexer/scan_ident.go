package lexer

import "wisp/internal/token"

// scanIdentifier consumes an identifier run (ASCII letter/underscore start,
// or any non-ASCII rune, then letters/digits/underscore/prime) and
// classifies it: uppercase-led identifiers are IdentUpper, lowercase-led
// (including '_'-led multi-char runs) are IdentLower unless they exactly
// match a keyword spelling.
func (lx *Lexer) scanIdentifier() token.Token {
	m := lx.cursor.Mark()
	first := lx.cursor.PeekByte()
	isUpper := first >= 'A' && first <= 'Z'

	for {
		b := lx.cursor.PeekByte()
		if b < utf8Self {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.BumpByte()
			continue
		}
		if lx.cursor.EOF() {
			break
		}
		lx.cursor.BumpRune()
	}

	span := lx.cursor.SpanFrom(m)
	text := string(lx.file.Content[span.Start:span.End])

	if isUpper {
		return token.Token{Kind: token.IdentUpper, Span: span}
	}
	if kw, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kw, Span: span}
	}
	return token.Token{Kind: token.IdentLower, Span: span}
}

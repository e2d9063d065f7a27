package lexer

import (
	"wisp/internal/source"
	"wisp/internal/token"
)

// Lexer turns a source.File into a stream of token.Token values. It is a
// forward-only iterator: Next never backtracks, and once EOF is reached it
// keeps returning zero-width UnknownEndOfFile tokens.
type Lexer struct {
	file   *source.File
	cursor Cursor
}

// New creates a Lexer over f.
func New(file *source.File) *Lexer {
	return &Lexer{file: file, cursor: NewCursor(file)}
}

// EmptySpan returns a zero-width span at the lexer's current position.
func (lx *Lexer) EmptySpan() source.Span { return lx.cursor.EmptySpan() }

// Next returns the next significant token, with its leading trivia folded
// in. Always makes progress or returns EOF.
func (lx *Lexer) Next() token.Token {
	leading, unterminated := lx.collectTrivia()
	if unterminated != nil {
		tok := token.Token{Kind: token.UnknownUnfinishedComment, Span: *unterminated}
		tok.Leading = leading
		return tok
	}

	if lx.cursor.EOF() {
		tok := token.Token{Kind: token.UnknownEndOfFile, Span: lx.cursor.EmptySpan()}
		tok.Leading = leading
		return tok
	}

	var tok token.Token
	b := lx.cursor.PeekByte()
	switch {
	case b == '(':
		tok = lx.scanOneByte(token.OpenParen)
	case b == ')':
		tok = lx.scanOneByte(token.CloseParen)
	case b == '[':
		tok = lx.scanOneByte(token.OpenSquare)
	case b == ']':
		tok = lx.scanOneByte(token.CloseSquare)
	case b == '{':
		tok = lx.scanOneByte(token.OpenBrace)
	case b == '}':
		tok = lx.scanOneByte(token.CloseBrace)
	case b == ',':
		tok = lx.scanOneByte(token.OpComma)
	case b == '\\':
		tok = lx.scanOneByte(token.OpBackslash)
	case isASCIIDigit(b):
		tok = lx.scanNumber()
	case b == '_' && !isIdentContinueByte(lx.cursor.PeekByteAt(1)):
		tok = lx.scanOneByte(token.OpUnderscore)
	case isIdentStartByte(b) || b >= utf8Self:
		tok = lx.scanIdentifier()
	case isSymbolByte(b):
		tok = lx.scanOperator()
	default:
		tok = lx.scanOneByte(token.UnknownToken)
	}

	tok.Leading = leading
	return tok
}

const utf8Self = 0x80

func (lx *Lexer) scanOneByte(kind token.Kind) token.Token {
	m := lx.cursor.Mark()
	lx.cursor.BumpByte()
	return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(m)}
}

// collectTrivia consumes a run of whitespace and comments, recording each
// as a Trivia entry. If an unterminated block comment is hit, it stops and
// returns its span as the second result instead of folding it into trivia,
// so the caller can surface it as an UnknownUnfinishedComment token.
func (lx *Lexer) collectTrivia() ([]token.Trivia, *source.Span) {
	var out []token.Trivia
	for {
		switch {
		case isWhitespaceByte(lx.cursor.PeekByte()):
			m := lx.cursor.Mark()
			for isWhitespaceByte(lx.cursor.PeekByte()) {
				lx.cursor.BumpByte()
			}
			out = append(out, token.Trivia{Kind: token.TriviaWhitespace, Span: lx.cursor.SpanFrom(m)})

		case lx.cursor.PeekByte() == '-' && lx.cursor.PeekByteAt(1) == '-':
			m := lx.cursor.Mark()
			lx.cursor.BumpByte()
			lx.cursor.BumpByte()
			for !lx.cursor.EOF() && lx.cursor.PeekByte() != '\n' {
				lx.cursor.BumpByte()
			}
			out = append(out, token.Trivia{Kind: token.TriviaLineComment, Span: lx.cursor.SpanFrom(m)})

		case lx.cursor.PeekByte() == '{' && lx.cursor.PeekByteAt(1) == '-':
			m := lx.cursor.Mark()
			lx.cursor.BumpByte()
			lx.cursor.BumpByte()
			depth := 1
			finished := false
			for !lx.cursor.EOF() {
				if lx.cursor.PeekByte() == '{' && lx.cursor.PeekByteAt(1) == '-' {
					lx.cursor.BumpByte()
					lx.cursor.BumpByte()
					depth++
					continue
				}
				if lx.cursor.PeekByte() == '-' && lx.cursor.PeekByteAt(1) == '}' {
					lx.cursor.BumpByte()
					lx.cursor.BumpByte()
					depth--
					if depth == 0 {
						finished = true
						break
					}
					continue
				}
				lx.cursor.BumpByte()
			}
			if finished {
				out = append(out, token.Trivia{Kind: token.TriviaBlockComment, Span: lx.cursor.SpanFrom(m)})
			} else {
				span := lx.cursor.SpanFrom(m)
				return out, &span
			}

		default:
			return out, nil
		}
	}
}

func isWhitespaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStartByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isASCIIDigit(b) || b == '\''
}

func isSymbolByte(b byte) bool {
	switch b {
	case '(', ')', '[', ']', '{', '}', ',', '\\', '_':
		return false
	}
	if b >= '0' && b <= '9' {
		return false
	}
	if isIdentStartByte(b) || b >= utf8Self {
		return false
	}
	return b > ' ' && b < 0x7F
}

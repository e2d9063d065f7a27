// Package token defines the closed set of lexical token kinds produced by
// the cursor and consumed by the layout engine and parser.
package token

// Kind categorizes a token. The set is closed: every lexeme the cursor can
// produce, and every virtual token the layout engine synthesizes, maps to
// exactly one Kind.
type Kind uint8

const (
	Invalid Kind = iota

	// Delimiters.
	OpenParen
	CloseParen
	OpenSquare
	CloseSquare
	OpenBrace
	CloseBrace

	// Digits.
	DigitInt
	DigitFloat

	// Identifiers. Lower and Upper are the two open classes; the rest are
	// keywords recognized by exact match once an identifier has been
	// lexed (see keywords.go).
	IdentLower
	IdentUpper
	KwAdo
	KwAs
	KwCase
	KwDo
	KwElse
	KwIf
	KwIn
	KwInfixl
	KwInfixr
	KwLet
	KwOf
	KwThen

	// Operators. Source is the catch-all for a user-defined symbolic
	// operator run that does not match a reserved spelling.
	OpArrowLeft
	OpArrowRight
	OpBackslash
	OpBang
	OpColon
	OpComma
	OpEqual
	OpGreaterThan
	OpLessThan
	OpPeriod
	OpPipe
	OpQuestion
	OpUnderscore
	OpSource

	// Layout tokens, zero-width, synthesized by the layout engine.
	LayoutBegin
	LayoutEnd
	LayoutSeparator

	// Unknown / error tokens.
	UnknownUnfinishedComment
	UnknownUnfinishedFloat
	UnknownToken
	UnknownEndOfFile
)

// IsOpenDelim reports whether k opens a bracketed group.
func (k Kind) IsOpenDelim() bool {
	switch k {
	case OpenParen, OpenSquare, OpenBrace:
		return true
	default:
		return false
	}
}

// IsCloseDelim reports whether k closes a bracketed group.
func (k Kind) IsCloseDelim() bool {
	switch k {
	case CloseParen, CloseSquare, CloseBrace:
		return true
	default:
		return false
	}
}

// IsLayout reports whether k is a synthesized layout token.
func (k Kind) IsLayout() bool {
	switch k {
	case LayoutBegin, LayoutEnd, LayoutSeparator:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether k is a reserved identifier.
func (k Kind) IsKeyword() bool {
	switch k {
	case KwAdo, KwAs, KwCase, KwDo, KwElse, KwIf, KwIn, KwInfixl, KwInfixr, KwLet, KwOf, KwThen:
		return true
	default:
		return false
	}
}

// IsOperator reports whether k is one of the symbolic operator kinds (a
// reserved spelling or the Source catch-all), as opposed to a delimiter,
// digit, identifier, or layout token.
func (k Kind) IsOperator() bool {
	switch k {
	case OpArrowLeft, OpArrowRight, OpBackslash, OpBang, OpColon, OpComma,
		OpEqual, OpGreaterThan, OpLessThan, OpPeriod, OpPipe, OpQuestion,
		OpUnderscore, OpSource:
		return true
	default:
		return false
	}
}

// IsUnknown reports whether k is one of the lexer-origin error kinds.
func (k Kind) IsUnknown() bool {
	switch k {
	case UnknownUnfinishedComment, UnknownUnfinishedFloat, UnknownToken, UnknownEndOfFile:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Invalid"
}

var kindNames = map[Kind]string{
	Invalid:                  "Invalid",
	OpenParen:                "(",
	CloseParen:               ")",
	OpenSquare:               "[",
	CloseSquare:              "]",
	OpenBrace:                "{",
	CloseBrace:               "}",
	DigitInt:                 "Int",
	DigitFloat:               "Float",
	IdentLower:               "Lower",
	IdentUpper:               "Upper",
	KwAdo:                    "ado",
	KwAs:                     "as",
	KwCase:                   "case",
	KwDo:                     "do",
	KwElse:                   "else",
	KwIf:                     "if",
	KwIn:                     "in",
	KwInfixl:                 "infixl",
	KwInfixr:                 "infixr",
	KwLet:                    "let",
	KwOf:                     "of",
	KwThen:                   "then",
	OpArrowLeft:              "<-",
	OpArrowRight:             "->",
	OpBackslash:              "\\",
	OpBang:                   "!",
	OpColon:                  ":",
	OpComma:                  ",",
	OpEqual:                  "=",
	OpGreaterThan:            ">",
	OpLessThan:               "<",
	OpPeriod:                 ".",
	OpPipe:                   "|",
	OpQuestion:               "?",
	OpUnderscore:             "_",
	OpSource:                 "Operator",
	LayoutBegin:              "Begin",
	LayoutEnd:                "End",
	LayoutSeparator:          "Separator",
	UnknownUnfinishedComment: "UnfinishedComment",
	UnknownUnfinishedFloat:   "UnfinishedFloat",
	UnknownToken:             "UnknownToken",
	UnknownEndOfFile:         "EndOfFile",
}

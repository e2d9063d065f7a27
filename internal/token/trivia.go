package token

import "wisp/internal/source"

// TriviaKind classifies a piece of leading trivia.
type TriviaKind uint8

const (
	TriviaWhitespace TriviaKind = iota
	TriviaLineComment
	TriviaBlockComment
)

// Trivia is a single whitespace run or comment preceding a token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
}

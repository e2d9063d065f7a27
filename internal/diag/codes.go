package diag

import "fmt"

// Code identifies a diagnostic's kind. The set is closed (§7): the
// front-end never raises a code outside this list.
type Code uint16

const (
	UnknownCode Code = iota

	// UnexpectedEndOfFile: cursor exhausted mid-production.
	UnexpectedEndOfFile
	// UnexpectedToken: the next token could not satisfy the current
	// production.
	UnexpectedToken
	// UnknownBindingPower: an operator used without a fixity
	// declaration.
	UnknownBindingPower
	// MalformedDigit: a digit token failed numeric parsing.
	MalformedDigit
	// UnterminatedComment: a block comment ran to EOF without a
	// closing marker.
	UnterminatedComment
	// UnfinishedFloat: a float literal's fractional part was empty
	// (e.g. a trailing '.').
	UnfinishedFloat
	// DuplicateFixity: two fixity declarations named the same operator
	// in the same domain.
	DuplicateFixity
	// InternalError: a broken invariant; indicates a bug upstream.
	InternalError
)

var codeName = map[Code]string{
	UnknownCode:         "unknown",
	UnexpectedEndOfFile: "unexpected-end-of-file",
	UnexpectedToken:     "unexpected-token",
	UnknownBindingPower: "unknown-binding-power",
	MalformedDigit:      "malformed-digit",
	UnterminatedComment: "unterminated-comment",
	UnfinishedFloat:     "unfinished-float",
	DuplicateFixity:     "duplicate-fixity",
	InternalError:       "internal-error",
}

func (c Code) String() string {
	if name, ok := codeName[c]; ok {
		return fmt.Sprintf("W%03d:%s", uint16(c), name)
	}
	return "W000:unknown"
}

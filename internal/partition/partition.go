// Package partition splits a layout-annotated token stream into
// declaration groups (§4.3): runs of tokens terminated by a depth-0
// Separator, each handed independently to the fixity collector or the
// declaration parser.
package partition

import "wisp/internal/token"

// Split breaks toks into declaration groups at depth-0 Separator tokens.
// Each group's last token is the Separator that closed it; a trailing
// run with no closing Separator (malformed input, or input with no
// final layout pass) still yields one last group. The EOF token itself
// is never included in any group. Per P3, every returned group except
// such a trailing run ends in a depth-0 Separator, and no interior token
// of any group is one.
func Split(toks []token.Token) [][]token.Token {
	var groups [][]token.Token
	start := 0
	for i, t := range toks {
		if t.IsEOF() {
			break
		}
		if t.IsSeparatorAtDepth0() {
			groups = append(groups, toks[start:i+1])
			start = i + 1
		}
	}
	if end := lastNonEOF(toks); start < end {
		groups = append(groups, toks[start:end])
	}
	return groups
}

func lastNonEOF(toks []token.Token) int {
	for i, t := range toks {
		if t.IsEOF() {
			return i
		}
	}
	return len(toks)
}

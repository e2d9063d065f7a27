// Package lexer implements the raw tokenizer (§4.1): a single-pass,
// non-backtracking cursor over UTF-8 source bytes that emits token.Token
// values with exact spans and folded-in leading trivia.
package lexer

import (
	"unicode/utf8"

	"fortio.org/safecast"

	"wisp/internal/source"
)

// Cursor is a byte-offset position within one source file. It decodes
// UTF-8 on demand; offsets are always byte offsets, never rune counts.
type Cursor struct {
	File *source.File
	Off  uint32
}

// NewCursor creates a cursor at the start of f.
func NewCursor(f *source.File) Cursor {
	return Cursor{File: f, Off: 0}
}

func (c *Cursor) limit() uint32 {
	n, err := safecast.Conv[uint32](len(c.File.Content))
	if err != nil {
		panic("lexer: file content too large")
	}
	return n
}

// EOF reports whether the cursor has consumed the whole file.
func (c *Cursor) EOF() bool { return c.Off >= c.limit() }

// PeekByte returns the raw byte at the cursor, or 0 at EOF.
func (c *Cursor) PeekByte() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// PeekByteAt returns the raw byte n positions ahead of the cursor, or 0 if
// that position is at or past EOF.
func (c *Cursor) PeekByteAt(n uint32) byte {
	off := c.Off + n
	if off >= c.limit() {
		return 0
	}
	return c.File.Content[off]
}

// PeekRune decodes the rune at the cursor without advancing it. Returns
// utf8.RuneError, 0 at EOF.
func (c *Cursor) PeekRune() (rune, int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRune(c.File.Content[c.Off:])
}

// BumpByte advances the cursor by one byte and returns it, or 0 at EOF.
func (c *Cursor) BumpByte() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// BumpRune advances the cursor by one full rune and returns it.
func (c *Cursor) BumpRune() rune {
	r, size := c.PeekRune()
	if size == 0 {
		return utf8.RuneError
	}
	n, err := safecast.Conv[uint32](size)
	if err != nil {
		panic("lexer: rune size overflow")
	}
	c.Off += n
	return r
}

// Mark is a saved cursor position, used to compute a span after consuming
// a lexeme.
type Mark uint32

// Mark saves the current position.
func (c *Cursor) Mark() Mark { return Mark(c.Off) }

// SpanFrom builds the span [m, current) in c's file.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}

// EmptySpan returns a zero-width span at the current position.
func (c *Cursor) EmptySpan() source.Span {
	return source.Span{File: c.File.ID, Start: c.Off, End: c.Off}
}

// Reset rewinds the cursor to a previously saved mark.
func (c *Cursor) Reset(m Mark) { c.Off = uint32(m) }

package layout

import (
	"wisp/internal/source"
	"wisp/internal/token"
)

// engine is the layout stack machine. It is driven one raw token at a time
// by Run; callers never construct it directly.
type engine struct {
	delimiters []delimiter
	depth      uint32
}

func newEngine(initial position) *engine {
	return &engine{
		delimiters: []delimiter{{pos: initial, kind: dMaskRoot}},
		depth:      0,
	}
}

func zeroWidth(file source.FileID, off uint32) source.Span {
	return source.Span{File: file, Start: off, End: off}
}

// pushEnd emits a Separator immediately followed by an End at off, and pops
// one level of depth. Every indented frame that closes emits exactly this
// pair: the separator terminates whatever statement was in flight, the end
// closes the block it lived in.
func (e *engine) pushEnd(out *[]token.Token, file source.FileID, off uint32) {
	*out = append(*out,
		token.Token{Kind: token.LayoutSeparator, Span: zeroWidth(file, off), Depth: e.depth},
		token.Token{Kind: token.LayoutEnd, Span: zeroWidth(file, off), Depth: e.depth},
	)
	if e.depth > 0 {
		e.depth--
	}
}

// determineEnd scans the delimiter stack from the top and counts how many
// trailing frames satisfy predicate. takeN is the stack length after
// dropping them (a truncation bound, not a removal count); makeN is how
// many of the dropped frames are indented, i.e. how many End pairs popping
// them requires.
func (e *engine) determineEnd(predicate func(p position, k delimiterKind) bool) (takeN, makeN int) {
	takeN = len(e.delimiters)
	for i := len(e.delimiters) - 1; i >= 0; i-- {
		d := e.delimiters[i]
		if !predicate(d.pos, d.kind) {
			break
		}
		takeN--
		if d.kind.isIndented() {
			makeN++
		}
	}
	return takeN, makeN
}

// commitEnd truncates the stack to takeN frames and emits the makeN End
// pairs that truncation implies.
func (e *engine) commitEnd(out *[]token.Token, file source.FileID, off uint32, takeN, makeN int) {
	e.delimiters = e.delimiters[:takeN]
	for i := 0; i < makeN; i++ {
		e.pushEnd(out, file, off)
	}
}

// addBegin opens a new indented frame at nextPos, unless doing so would not
// actually indent relative to the innermost indented frame already open (a
// same-or-lesser column means the following block is empty and the layout
// rule simply does not fire).
func (e *engine) addBegin(out *[]token.Token, file source.FileID, tokEnd uint32, nextPos position, kind delimiterKind) {
	for i := len(e.delimiters) - 1; i >= 0; i-- {
		if e.delimiters[i].kind.isIndented() {
			if nextPos.Col <= e.delimiters[i].pos.Col {
				return
			}
			break
		}
	}
	e.delimiters = append(e.delimiters, delimiter{pos: nextPos, kind: kind})
	e.depth++
	*out = append(*out, token.Token{Kind: token.LayoutBegin, Span: zeroWidth(file, tokEnd), Depth: e.depth})
}

// addSeparator inserts a Separator when the current token lands in the same
// column as, and a later line than, the innermost open indented frame — the
// signal that a new item of that block has begun. An "of" frame additionally
// pushes a pattern mask so the item's leading pattern is scoped correctly.
func (e *engine) addSeparator(out *[]token.Token, file source.FileID, tokBegin uint32, nowPos position) {
	if len(e.delimiters) == 0 {
		return
	}
	top := e.delimiters[len(e.delimiters)-1]
	if top.kind.isIndented() && nowPos.Col == top.pos.Col && nowPos.Line > top.pos.Line {
		*out = append(*out, token.Token{Kind: token.LayoutSeparator, Span: zeroWidth(file, tokBegin), Depth: e.depth})
		if top.kind == dKwOf {
			e.delimiters = append(e.delimiters, delimiter{pos: nowPos, kind: dMaskPat})
		}
	}
}

// addEnd closes every innermost indented frame whose column is deeper than
// the current token's column — an ordinary dedent.
func (e *engine) addEnd(out *[]token.Token, file source.FileID, tokBegin uint32, nowPos position) {
	takeN, makeN := e.determineEnd(func(p position, k delimiterKind) bool {
		return k.isIndented() && nowPos.Col < p.Col
	})
	e.commitEnd(out, file, tokBegin, takeN, makeN)
}

// lastKind returns the kind of the innermost frame and whether one exists.
func (e *engine) lastKind() (delimiterKind, bool) {
	if len(e.delimiters) == 0 {
		return 0, false
	}
	return e.delimiters[len(e.delimiters)-1].kind, true
}

func (e *engine) popLast() {
	e.delimiters = e.delimiters[:len(e.delimiters)-1]
}

// addLayout is the per-token dispatch (§4.2's layout table): depending on
// the current token's kind it decides which mix of End/Separator/Begin
// frames to synthesize before emitting the token itself at the current
// depth.
func (e *engine) addLayout(out *[]token.Token, file source.FileID, cur token.Token, nowPos, nextPos position) {
	begin := cur.Span.Start
	end := cur.Span.End

	switch cur.Kind {
	case token.OpBang, token.OpPipe, token.OpQuestion:
		*out = append(*out, cur.WithDepth(e.depth))
		e.addBegin(out, file, end, nextPos, dMaskTop)

	case token.KwCase:
		e.addEnd(out, file, begin, nowPos)
		e.addSeparator(out, file, begin, nowPos)
		e.delimiters = append(e.delimiters, delimiter{pos: nowPos, kind: dKwCase})
		*out = append(*out, cur.WithDepth(e.depth))

	case token.KwOf:
		// "of" always strips any indented frames opened since the matching
		// "case" (e.g. a do-block in the scrutinee) before deciding whether
		// a case frame is actually there to close.
		takeN, makeN := e.determineEnd(func(_ position, k delimiterKind) bool { return k.isIndented() })
		matchedCase := takeN > 0 && e.delimiters[takeN-1].kind == dKwCase
		e.commitEnd(out, file, begin, takeN, makeN)
		if matchedCase {
			e.popLast()
			*out = append(*out, cur.WithDepth(e.depth))
			e.addBegin(out, file, end, nextPos, dKwOf)
			e.delimiters = append(e.delimiters, delimiter{pos: nextPos, kind: dMaskPat})
		} else {
			e.addEnd(out, file, begin, nowPos)
			e.addSeparator(out, file, begin, nowPos)
			*out = append(*out, cur.WithDepth(e.depth))
		}

	case token.OpBackslash:
		e.addEnd(out, file, begin, nowPos)
		e.addSeparator(out, file, begin, nowPos)
		e.delimiters = append(e.delimiters, delimiter{pos: nowPos, kind: dMaskLam})
		*out = append(*out, cur.WithDepth(e.depth))

	case token.OpArrowRight:
		takeN, makeN := e.determineEnd(func(p position, k delimiterKind) bool {
			switch k {
			case dKwDo:
				return true
			case dKwOf:
				return false
			default:
				return k.isIndented() && nowPos.Col <= p.Col
			}
		})
		e.commitEnd(out, file, begin, takeN, makeN)
		if k, ok := e.lastKind(); ok && k == dKwIf {
			e.popLast()
		}
		if k, ok := e.lastKind(); ok && (k == dMaskLam || k == dMaskPat) {
			e.popLast()
		}
		*out = append(*out, cur.WithDepth(e.depth))

	case token.KwAdo:
		e.addEnd(out, file, begin, nowPos)
		e.addSeparator(out, file, begin, nowPos)
		*out = append(*out, cur.WithDepth(e.depth))
		e.addBegin(out, file, end, nextPos, dKwAdo)

	case token.KwDo:
		e.addEnd(out, file, begin, nowPos)
		e.addSeparator(out, file, begin, nowPos)
		*out = append(*out, cur.WithDepth(e.depth))
		e.addBegin(out, file, end, nextPos, dKwDo)

	case token.KwIf:
		e.addEnd(out, file, begin, nowPos)
		e.addSeparator(out, file, begin, nowPos)
		e.delimiters = append(e.delimiters, delimiter{pos: nowPos, kind: dKwIf})
		*out = append(*out, cur.WithDepth(e.depth))

	case token.KwThen:
		// Unlike "of", "then" only strips the frames a matching "if" sits
		// behind when that "if" is actually found; otherwise nothing closes
		// and it falls back to an ordinary dedent check.
		takeN, makeN := e.determineEnd(func(_ position, k delimiterKind) bool { return k.isIndented() })
		if takeN > 0 && e.delimiters[takeN-1].kind == dKwIf {
			e.commitEnd(out, file, begin, takeN, makeN)
			e.popLast()
			e.delimiters = append(e.delimiters, delimiter{pos: nowPos, kind: dKwThen})
			*out = append(*out, cur.WithDepth(e.depth))
		} else {
			e.addEnd(out, file, begin, nowPos)
			e.addSeparator(out, file, begin, nowPos)
			*out = append(*out, cur.WithDepth(e.depth))
		}

	case token.KwElse:
		takeN, makeN := e.determineEnd(func(_ position, k delimiterKind) bool { return k.isIndented() })
		if takeN > 0 && e.delimiters[takeN-1].kind == dKwThen {
			e.commitEnd(out, file, begin, takeN, makeN)
			e.popLast()
			*out = append(*out, cur.WithDepth(e.depth))
		} else {
			e.addEnd(out, file, begin, nowPos)
			e.addSeparator(out, file, begin, nowPos)
			*out = append(*out, cur.WithDepth(e.depth))
		}

	case token.KwLet:
		e.addEnd(out, file, begin, nowPos)
		e.addSeparator(out, file, begin, nowPos)
		*out = append(*out, cur.WithDepth(e.depth))
		kind := dKwLetExpr
		if k, ok := e.lastKind(); ok && (k == dKwAdo || k == dKwDo) {
			kind = dKwLetStmt
		}
		e.addBegin(out, file, end, nextPos, kind)

	case token.KwIn:
		takeN, makeN := e.determineEnd(func(_ position, k delimiterKind) bool {
			switch k {
			case dKwAdo, dKwLetExpr:
				return false
			default:
				return k.isIndented()
			}
		})
		if takeN > 0 && (e.delimiters[takeN-1].kind == dKwAdo || e.delimiters[takeN-1].kind == dKwLetExpr) {
			e.commitEnd(out, file, begin, takeN, makeN)
			e.popLast()
			e.pushEnd(out, file, begin)
			*out = append(*out, cur.WithDepth(e.depth))
		} else {
			e.addEnd(out, file, begin, nowPos)
			e.addSeparator(out, file, begin, nowPos)
			*out = append(*out, cur.WithDepth(e.depth))
		}

	default:
		e.addEnd(out, file, begin, nowPos)
		e.addSeparator(out, file, begin, nowPos)
		*out = append(*out, cur.WithDepth(e.depth))
	}
}

// finalize closes every frame still open at end of input: a trailing
// Separator+End for every indented frame, and a lone closing Separator for
// the module root.
func (e *engine) finalize(out *[]token.Token, file source.FileID, eofOff uint32) {
	for len(e.delimiters) > 0 {
		top := e.delimiters[len(e.delimiters)-1]
		e.delimiters = e.delimiters[:len(e.delimiters)-1]
		switch {
		case top.kind == dMaskRoot:
			*out = append(*out, token.Token{Kind: token.LayoutSeparator, Span: zeroWidth(file, eofOff), Depth: e.depth})
		case top.kind.isIndented():
			*out = append(*out,
				token.Token{Kind: token.LayoutSeparator, Span: zeroWidth(file, eofOff), Depth: e.depth},
				token.Token{Kind: token.LayoutEnd, Span: zeroWidth(file, eofOff), Depth: e.depth},
			)
			if e.depth > 0 {
				e.depth--
			}
		}
	}
}

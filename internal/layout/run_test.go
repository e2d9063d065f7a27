package layout_test

import (
	"strings"
	"testing"

	"wisp/internal/layout"
	"wisp/internal/lexer"
	"wisp/internal/source"
	"wisp/internal/token"
)

func layoutTokens(t *testing.T, src string) ([]token.Token, *source.FileSet, source.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("<test>", []byte(src))
	lx := lexer.New(fs.Get(id))
	var raw []token.Token
	for {
		tok := lx.Next()
		raw = append(raw, tok)
		if tok.IsEOF() {
			break
		}
	}
	return layout.Run(fs, id, raw), fs, id
}

// render reproduces the teacher-language golden-test format: `{depth`,
// `}depth` and `;depth` markers for layout tokens, source text verbatim for
// everything else.
func render(src string, toks []token.Token) string {
	var b strings.Builder
	for _, tok := range toks {
		switch tok.Kind {
		case token.LayoutBegin:
			b.WriteByte('{')
			writeUint(&b, tok.Depth)
		case token.LayoutEnd:
			b.WriteByte('}')
			writeUint(&b, tok.Depth)
		case token.LayoutSeparator:
			b.WriteByte(';')
			writeUint(&b, tok.Depth)
		case token.UnknownEndOfFile:
		default:
			lead := tok.LeadingSpan()
			b.WriteString(src[lead.Start:tok.Span.End])
		}
	}
	return b.String()
}

func writeUint(b *strings.Builder, v uint32) {
	if v == 0 {
		b.WriteByte('0')
		return
	}
	var digits [10]byte
	n := 0
	for v > 0 {
		digits[n] = byte('0' + v%10)
		v /= 10
		n++
	}
	for i := n - 1; i >= 0; i-- {
		b.WriteByte(digits[i])
	}
}

func TestLayoutSimpleDoBlock(t *testing.T) {
	src := "main = do\n  log message\n  log message\n"
	toks, fs, id := layoutTokens(t, src)
	_ = fs
	_ = id
	got := render(src, toks)
	want := "main = do{1\n  log message;1\n  log message;1}1;0"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestLayoutCaseOf(t *testing.T) {
	src := "head xs = case xs of\n  Cons x _ -> Just x\n  Nil      -> Nothing\n"
	toks, _, _ := layoutTokens(t, src)
	got := render(src, toks)
	want := "head xs = case xs of{1\n  Cons x _ -> Just x;1\n  Nil      -> Nothing;1}1;0"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestLayoutNestedDo(t *testing.T) {
	src := "main = do\n  log message\n  log message\n  attempt do\n    log message\n    log message\n"
	toks, _, _ := layoutTokens(t, src)
	got := render(src, toks)
	want := "main = do{1\n  log message;1\n  log message;1\n  attempt do{2\n    log message;2\n    log message;2}2;1}1;0"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestLayoutLetIn(t *testing.T) {
	src := "letIn =\n  let\n    x = 1\n\n    y = 1\n  in\n    x + y\n"
	toks, _, _ := layoutTokens(t, src)
	got := render(src, toks)
	want := "letIn =\n  let{1\n    x = 1;1\n\n    y = 1;1}1\n  in\n    x + y;0"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestLayoutIfThenElseDoesNotOpenBlocksOnSingleLine(t *testing.T) {
	src := "conditionalDo = do\n  log something\n  if do true then do\n    log something\n  else do\n    log something\n"
	toks, _, _ := layoutTokens(t, src)
	got := render(src, toks)
	want := "conditionalDo = do{1\n  log something;1\n  if do{2 true;2}2 then do{2\n    log something;2}2\n  else do{2\n    log something;2}2;1}1;0"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestLayoutBeginSeparatorEndBalance(t *testing.T) {
	srcs := []string{
		"main = do\n  log message\n  log message\n",
		"head xs = case xs of\n  Cons x _ -> Just x\n  Nil -> Nothing\n",
		"letIn =\n  let\n    x = 1\n  in\n    x\n",
		"f = \\x -> x\n",
		"g a | eq : a -> a -> Boolean\n",
	}
	for _, src := range srcs {
		toks, _, _ := layoutTokens(t, src)
		depth := 0
		for _, tok := range toks {
			switch tok.Kind {
			case token.LayoutBegin:
				depth++
			case token.LayoutEnd:
				depth--
				if depth < 0 {
					t.Fatalf("%q: LayoutEnd without matching Begin", src)
				}
			}
		}
		if depth != 0 {
			t.Errorf("%q: unbalanced layout, final depth %d", src, depth)
		}
	}
}

func TestLayoutTokenSpansAreMonotonic(t *testing.T) {
	src := "main = do\n  log message\n  attempt do\n    log message\n"
	toks, _, _ := layoutTokens(t, src)
	for i := 1; i < len(toks); i++ {
		if toks[i-1].Span.Start > toks[i].Span.Start {
			t.Errorf("token %d starts before token %d: %+v vs %+v", i, i-1, toks[i-1], toks[i])
		}
	}
}

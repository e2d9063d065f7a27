package lexer_test

import (
	"testing"

	"wisp/internal/lexer"
	"wisp/internal/source"
	"wisp/internal/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("<test>", []byte(src))
	lx := lexer.New(fs.Get(id))
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.IsEOF() {
			break
		}
	}
	return toks
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexerBasicDeclaration(t *testing.T) {
	toks := lexAll(t, "a = 0")
	got := kinds(toks)
	want := []token.Kind{token.IdentLower, token.OpEqual, token.DigitInt, token.UnknownEndOfFile}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexerKeywords(t *testing.T) {
	toks := lexAll(t, "if then else do ado case of let in infixl infixr as")
	want := []token.Kind{
		token.KwIf, token.KwThen, token.KwElse, token.KwDo, token.KwAdo, token.KwCase,
		token.KwOf, token.KwLet, token.KwIn, token.KwInfixl, token.KwInfixr, token.KwAs,
		token.UnknownEndOfFile,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexerNumberKinds(t *testing.T) {
	cases := map[string]token.Kind{
		"0":    token.DigitInt,
		"123":  token.DigitInt,
		"1.5":  token.DigitFloat,
		"1..2": token.DigitInt, // first token; trailing ".." left for operator scan
	}
	for src, want := range cases {
		toks := lexAll(t, src)
		if toks[0].Kind != want {
			t.Errorf("lex(%q)[0] = %v, want %v", src, toks[0].Kind, want)
		}
	}
}

func TestLexerRangeDotsNotConsumedByNumber(t *testing.T) {
	toks := lexAll(t, "1..2")
	got := kinds(toks)
	want := []token.Kind{token.DigitInt, token.OpSource, token.DigitInt, token.UnknownEndOfFile}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLexerUnfinishedFloat(t *testing.T) {
	toks := lexAll(t, "1.a")
	if toks[0].Kind != token.UnknownUnfinishedFloat {
		t.Errorf("got %v, want UnfinishedFloat", toks[0].Kind)
	}
}

func TestLexerUnterminatedBlockComment(t *testing.T) {
	toks := lexAll(t, "x {- unterminated")
	// x, then a token spanning the unclosed comment, carrying the
	// unterminated-comment kind.
	found := false
	for _, tk := range toks {
		if tk.Kind == token.UnknownUnfinishedComment {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an UnknownUnfinishedComment token, got %v", kinds(toks))
	}
}

func TestLexerNestedBlockComments(t *testing.T) {
	toks := lexAll(t, "{- outer {- inner -} still outer -} x")
	if toks[0].Kind != token.IdentLower {
		t.Fatalf("got %v, want IdentLower for 'x' after nested comment", toks[0].Kind)
	}
}

func TestLexerUnderscoreOperatorVsIdent(t *testing.T) {
	toks := lexAll(t, "_ _foo")
	want := []token.Kind{token.OpUnderscore, token.IdentLower, token.UnknownEndOfFile}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLexerTriviaRoundTrip(t *testing.T) {
	src := "  -- comment\na = 0 {- block -} \n"
	fs := source.NewFileSet()
	id := fs.AddVirtual("<test>", []byte(src))
	lx := lexer.New(fs.Get(id))

	var rebuilt []byte
	lastEnd := uint32(0)
	for {
		tok := lx.Next()
		lead := tok.LeadingSpan()
		if lead.Start != lastEnd && len(tok.Leading) > 0 {
			t.Fatalf("leading span does not start where previous token ended: %+v", lead)
		}
		rebuilt = append(rebuilt, []byte(src)[lead.Start:tok.Span.End]...)
		lastEnd = tok.Span.End
		if tok.IsEOF() {
			break
		}
	}
	if string(rebuilt) != src[:lastEnd] {
		t.Errorf("round trip mismatch:\n got: %q\nwant: %q", rebuilt, src[:lastEnd])
	}
}

func TestLexerSpansAreOrdered(t *testing.T) {
	toks := lexAll(t, "a = b + c\nd = e")
	for i := 1; i < len(toks); i++ {
		if toks[i-1].Span.End > toks[i].Span.Start {
			t.Errorf("token %d (%v) overlaps token %d (%v)", i-1, toks[i-1], i, toks[i])
		}
	}
}

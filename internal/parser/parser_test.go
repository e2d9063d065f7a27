package parser_test

import (
	"fmt"
	"testing"

	"wisp/internal/ast"
	"wisp/internal/diag"
	"wisp/internal/parser"
	"wisp/internal/source"
)

func parseSrc(t *testing.T, src string) parser.Result {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.AddVirtual("test.wisp", []byte(src))
	return parser.ParseFile(fs, file)
}

// asBinary recognizes the Application(Application(Variable(target), left),
// right) shape a folded infix operator produces, so tests can print an
// operator tree back out in infix form instead of asserting raw pointers.
func asBinary(e *ast.Expr) (source.StringID, *ast.Expr, *ast.Expr, bool) {
	if e.Kind.Tag != ast.EKApplication || e.Kind.Arg.Tag != ast.ArgExpr {
		return 0, nil, nil, false
	}
	inner := e.Kind.Func
	if inner.Kind.Tag != ast.EKApplication || inner.Kind.Arg.Tag != ast.ArgExpr {
		return 0, nil, nil, false
	}
	fn := inner.Kind.Func
	if fn.Kind.Tag != ast.EKVariable {
		return 0, nil, nil, false
	}
	return fn.Kind.Name, inner.Kind.Arg.Expr, e.Kind.Arg.Expr, true
}

func exprString(strings *source.Strings, e *ast.Expr) string {
	if target, l, r, ok := asBinary(e); ok {
		return fmt.Sprintf("(%s %s %s)", exprString(strings, l), strings.MustLookup(target), exprString(strings, r))
	}
	switch e.Kind.Tag {
	case ast.EKVariable:
		return strings.MustLookup(e.Kind.Name)
	case ast.EKLiteral:
		if e.Kind.Lit.Tag == ast.LitInt {
			return fmt.Sprintf("%d", e.Kind.Lit.Int)
		}
		return fmt.Sprintf("%g", *e.Kind.Lit.Float)
	case ast.EKApplication:
		argStr := "<type-arg>"
		if e.Kind.Arg.Tag == ast.ArgExpr {
			argStr = exprString(strings, e.Kind.Arg.Expr)
		}
		return fmt.Sprintf("(%s %s)", exprString(strings, e.Kind.Func), argStr)
	case ast.EKIfThenElse:
		return fmt.Sprintf("(if %s then %s else %s)",
			exprString(strings, e.Kind.Cond), exprString(strings, e.Kind.Then), exprString(strings, e.Kind.Else))
	default:
		return "<expr>"
	}
}

func TestParseFileTwoValueDeclarations(t *testing.T) {
	res := parseSrc(t, "a = 0\nb = 0")
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %#v", res.Diagnostics)
	}
	if len(res.Module.Declarations) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(res.Module.Declarations))
	}
	for i, want := range []string{"a", "b"} {
		d := res.Module.Declarations[i]
		if d.Tag != ast.DeclValue {
			t.Fatalf("declaration %d: expected DeclValue, got %v", i, d.Tag)
		}
		if res.Strings.MustLookup(d.Name) != want {
			t.Errorf("declaration %d: expected name %q, got %q", i, want, res.Strings.MustLookup(d.Name))
		}
		if d.Body.Kind.Tag != ast.EKLiteral || d.Body.Kind.Lit.Tag != ast.LitInt || d.Body.Kind.Lit.Int != 0 {
			t.Errorf("declaration %d: expected body Literal(Int 0), got %#v", i, d.Body.Kind)
		}
	}
}

func TestParseFileLeftAssociativeAddition(t *testing.T) {
	res := parseSrc(t, "infixl 4 add as +\nexample = a + b + c\n")
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %#v", res.Diagnostics)
	}
	if len(res.Module.Declarations) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(res.Module.Declarations))
	}
	got := exprString(res.Strings, res.Module.Declarations[0].Body)
	want := "((a add b) add c)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseFileMixedPrecedenceAndAssociativity(t *testing.T) {
	src := "infixl 1 add as +\ninfixl 2 mul as *\ninfixr 3 pow as ^\nexample = a + b * (c + d) + e ^ f\n"
	res := parseSrc(t, src)
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %#v", res.Diagnostics)
	}
	got := exprString(res.Strings, res.Module.Declarations[0].Body)
	want := "((a add (b mul (c add d))) add (e pow f))"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseFileIfThenElse(t *testing.T) {
	res := parseSrc(t, "example = if a then b else c\n")
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %#v", res.Diagnostics)
	}
	body := res.Module.Declarations[0].Body
	if body.Kind.Tag != ast.EKIfThenElse {
		t.Fatalf("expected EKIfThenElse, got %v", body.Kind.Tag)
	}
}

func TestParseFileLambdaCurriesParameters(t *testing.T) {
	res := parseSrc(t, "example = \\x y -> x\n")
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %#v", res.Diagnostics)
	}
	body := res.Module.Declarations[0].Body
	if body.Kind.Tag != ast.EKLambda {
		t.Fatalf("expected outer EKLambda, got %v", body.Kind.Tag)
	}
	if res.Strings.MustLookup(body.Kind.Param) != "x" {
		t.Fatalf("expected outer param 'x', got %q", res.Strings.MustLookup(body.Kind.Param))
	}
	inner := body.Kind.Body
	if inner.Kind.Tag != ast.EKLambda {
		t.Fatalf("expected curried inner EKLambda, got %v", inner.Kind.Tag)
	}
	if res.Strings.MustLookup(inner.Kind.Param) != "y" {
		t.Fatalf("expected inner param 'y', got %q", res.Strings.MustLookup(inner.Kind.Param))
	}
}

func TestParseFileDoBlockWithLetAndBind(t *testing.T) {
	src := "example = do\n  let\n    u = 21\n    v = 21\n  w <- pure 21\n  attempt do\n    y <- pure 21\n    z <- pure 21\n"
	res := parseSrc(t, src)
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %#v", res.Diagnostics)
	}
	body := res.Module.Declarations[0].Body
	if body.Kind.Tag != ast.EKDoBlock {
		t.Fatalf("expected EKDoBlock, got %v", body.Kind.Tag)
	}
	stmts := *body.Kind.Stmts
	if len(stmts) != 3 {
		t.Fatalf("expected 3 statements, got %d: %#v", len(stmts), stmts)
	}
	if stmts[0].Tag != ast.DoStmtLet {
		t.Errorf("statement 0: expected DoStmtLet, got %v", stmts[0].Tag)
	}
	if len(*stmts[0].Decls) != 2 {
		t.Errorf("expected 2 inner let-declarations, got %d", len(*stmts[0].Decls))
	}
	if stmts[1].Tag != ast.DoStmtBind {
		t.Errorf("statement 1: expected DoStmtBind, got %v", stmts[1].Tag)
	}
	if stmts[2].Tag != ast.DoStmtDiscard {
		t.Errorf("statement 2: expected DoStmtDiscard, got %v", stmts[2].Tag)
	}
}

func TestParseFileCaseWithGuardAndMultipleScrutinees(t *testing.T) {
	src := "example = case a, b of\n  Cons a b, _ if hello -> do world\n  _, Nil -> example\n"
	res := parseSrc(t, src)
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %#v", res.Diagnostics)
	}
	body := res.Module.Declarations[0].Body
	if body.Kind.Tag != ast.EKCase {
		t.Fatalf("expected EKCase, got %v", body.Kind.Tag)
	}
	if len(*body.Kind.Scrutinees) != 2 {
		t.Fatalf("expected 2 scrutinees, got %d", len(*body.Kind.Scrutinees))
	}
	arms := *body.Kind.Arms
	if len(arms) != 2 {
		t.Fatalf("expected 2 arms, got %d", len(arms))
	}
	if arms[0].Guard == nil {
		t.Errorf("expected first arm to carry a guard")
	}
	if arms[1].Guard != nil {
		t.Errorf("expected second arm to carry no guard")
	}
}

func TestParseFileRecoversPastMalformedDeclaration(t *testing.T) {
	src := "main : Effect Unit\nmain & Effect Unit\nmain : Effect Unit\n"
	res := parseSrc(t, src)
	if len(res.Module.Declarations) != 2 {
		t.Fatalf("expected 2 surviving declarations, got %d", len(res.Module.Declarations))
	}
	if len(res.Diagnostics) == 0 {
		t.Fatalf("expected at least one diagnostic for the malformed middle declaration")
	}
}

func TestParseFileUnknownOperatorWithoutFixity(t *testing.T) {
	res := parseSrc(t, "x = a + b\n")
	if len(res.Module.Declarations) != 0 {
		t.Fatalf("expected the declaration to fail, got %d survivors", len(res.Module.Declarations))
	}
	found := false
	for _, d := range res.Diagnostics {
		if d.Code == diag.UnknownBindingPower {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an UnknownBindingPower diagnostic, got %#v", res.Diagnostics)
	}
}

func TestParseFileUnterminatedBlockComment(t *testing.T) {
	res := parseSrc(t, "x = 0\n{- this comment never closes\n")
	found := false
	for _, d := range res.Diagnostics {
		if d.Code == diag.UnterminatedComment {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an UnterminatedComment diagnostic, got %#v", res.Diagnostics)
	}
}

func TestParseFileUnfinishedFloat(t *testing.T) {
	res := parseSrc(t, "x = 1.\n")
	found := false
	for _, d := range res.Diagnostics {
		if d.Code == diag.UnfinishedFloat {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an UnfinishedFloat diagnostic, got %#v", res.Diagnostics)
	}
}

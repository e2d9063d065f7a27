package ast_test

import (
	"testing"

	"wisp/internal/ast"
	"wisp/internal/source"
)

func TestInternTypeDedupsStructurallyEqualShapes(t *testing.T) {
	in := ast.NewInterners(0)
	name := in.Strings.Intern("Int")
	ann := in.InternAnn(ast.FromCompiler())

	a := in.InternType(ann, ast.Constructor(name))
	b := in.InternType(ann, ast.Constructor(name))
	if a != b {
		t.Errorf("two structurally identical types interned to different pointers")
	}

	other := in.Strings.Intern("Boolean")
	c := in.InternType(ann, ast.Constructor(other))
	if a == c {
		t.Errorf("distinct constructors interned to the same pointer")
	}
}

func TestInternExprDedupsRecursiveShapes(t *testing.T) {
	in := ast.NewInterners(0)
	ann := in.InternAnn(ast.FromCompiler())
	x := in.Strings.Intern("x")

	v1 := in.InternExpr(ann, ast.VariableExpr(x))
	v2 := in.InternExpr(ann, ast.VariableExpr(x))
	if v1 != v2 {
		t.Errorf("two references to the same variable did not intern identically")
	}

	lam1 := in.InternExpr(ann, ast.LambdaExpr(x, v1))
	lam2 := in.InternExpr(ann, ast.LambdaExpr(x, v2))
	if lam1 != lam2 {
		t.Errorf("two structurally identical lambdas interned to different pointers")
	}
}

func TestInternFloatByBitPattern(t *testing.T) {
	in := ast.NewInterners(0)
	p1 := in.Floats.Intern(3.14)
	p2 := in.Floats.Intern(3.14)
	if p1 != p2 {
		t.Errorf("identical float literals did not dedup")
	}
	lit1 := in.InternLiteral(ast.FloatLiteral(p1))
	lit2 := in.InternLiteral(ast.FloatLiteral(p2))
	if lit1 != lit2 {
		t.Errorf("literals wrapping the same interned float pointer did not dedup")
	}
}

func TestInternIsIdempotent(t *testing.T) {
	in := ast.NewInterners(0)
	ann := in.InternAnn(ast.FromSource(source.Span{File: 0, Start: 1, End: 2}))
	for i := 0; i < 3; i++ {
		got := in.InternAnn(ast.FromSource(source.Span{File: 0, Start: 1, End: 2}))
		if got != ann {
			t.Fatalf("iteration %d: re-interning an equal Ann produced a new pointer", i)
		}
	}
}

func TestDeclarationsAreNotInterned(t *testing.T) {
	in := ast.NewInterners(0)
	name := in.Strings.Intern("f")
	ann := in.InternAnn(ast.FromCompiler())
	body := in.InternExpr(ann, ast.VariableExpr(name))
	params := ast.LesserPatternList{}

	d1 := in.NewDecl(ast.ValueDecl(source.Span{}, name, &params, body))
	d2 := in.NewDecl(ast.ValueDecl(source.Span{}, name, &params, body))
	if d1 == d2 {
		t.Errorf("declarations should be allocated uniquely, not hash-consed")
	}
}

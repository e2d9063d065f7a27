package fixity_test

import (
	"testing"

	"wisp/internal/ast"
	"wisp/internal/diag"
	"wisp/internal/fixity"
	"wisp/internal/layout"
	"wisp/internal/lexer"
	"wisp/internal/partition"
	"wisp/internal/source"
	"wisp/internal/token"
)

func lexAndLayout(src string) (*source.FileSet, []token.Token) {
	fs := source.NewFileSet()
	file := fs.AddVirtual("test.wisp", []byte(src))
	lx := lexer.New(fs.Get(file))
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.IsEOF() {
			break
		}
	}
	return fs, layout.Run(fs, file, toks)
}

func TestParseInfixlValueFixity(t *testing.T) {
	fs, toks := lexAndLayout("infixl 4 add as +\n")
	groups := partition.Split(toks)
	strings := source.NewStrings()

	op, entry, errDiag := fixity.Parse(fs, strings, groups[0])
	if errDiag != nil {
		t.Fatalf("unexpected error: %v", errDiag.Message)
	}
	if op != "+" {
		t.Fatalf("expected operator '+', got %q", op)
	}
	if entry.Assoc != ast.AssocLeft || entry.Power != 4 || entry.Domain != ast.FixityValue {
		t.Fatalf("unexpected entry: %#v", entry)
	}
	if strings.MustLookup(entry.Target) != "add" {
		t.Fatalf("expected target 'add', got %q", strings.MustLookup(entry.Target))
	}
	left, right := entry.BindingPower()
	if left != 4 || right != 5 {
		t.Fatalf("expected left-assoc binding power (4,5), got (%d,%d)", left, right)
	}
}

func TestParseInfixrTypeFixity(t *testing.T) {
	fs, toks := lexAndLayout("infixr 0 type arrow as ->\n")
	groups := partition.Split(toks)
	strings := source.NewStrings()

	op, entry, errDiag := fixity.Parse(fs, strings, groups[0])
	if errDiag != nil {
		t.Fatalf("unexpected error: %v", errDiag.Message)
	}
	if op != "->" || entry.Domain != ast.FixityType {
		t.Fatalf("expected type-domain '->' fixity, got op=%q entry=%#v", op, entry)
	}
	left, right := entry.BindingPower()
	if left != 1 || right != 0 {
		t.Fatalf("expected right-assoc binding power (1,0), got (%d,%d)", left, right)
	}
}

func TestCollectInstallsIntoCorrectDomain(t *testing.T) {
	fs, toks := lexAndLayout("infixl 4 add as +\ninfixr 0 type arrow as ->\nexample = a + b\n")
	groups := partition.Split(toks)
	strings := source.NewStrings()

	value, typ := fixity.Collect(fs, strings, groups, nil)
	if _, ok := value["+"]; !ok {
		t.Fatalf("expected '+' in value fixity table")
	}
	if _, ok := typ["->"]; !ok {
		t.Fatalf("expected '->' in type fixity table")
	}
	if len(value) != 1 || len(typ) != 1 {
		t.Fatalf("expected exactly one entry per table, got value=%v typ=%v", value, typ)
	}
}

type reporterFunc func(d diag.Diagnostic)

func (f reporterFunc) Report(d diag.Diagnostic) { f(d) }

func TestCollectReportsDuplicateFixity(t *testing.T) {
	fs, toks := lexAndLayout("infixl 4 add as +\ninfixr 5 plus as +\n")
	groups := partition.Split(toks)
	strings := source.NewStrings()

	var reports []string
	reporter := reporterFunc(func(d diag.Diagnostic) { reports = append(reports, d.Message) })

	value, _ := fixity.Collect(fs, strings, groups, reporter)
	if len(reports) != 1 {
		t.Fatalf("expected exactly one duplicate-fixity diagnostic, got %d: %v", len(reports), reports)
	}
	entry := value["+"]
	if strings.MustLookup(entry.Target) != "plus" {
		t.Fatalf("expected the later definition to win, got target %q", strings.MustLookup(entry.Target))
	}
}

func TestIsFixityGroup(t *testing.T) {
	_, toks := lexAndLayout("infixl 4 add as +\nexample = a\n")
	groups := partition.Split(toks)
	if !fixity.IsFixityGroup(groups[0]) {
		t.Fatalf("expected first group to be recognized as a fixity group")
	}
	if fixity.IsFixityGroup(groups[1]) {
		t.Fatalf("expected second group to not be recognized as a fixity group")
	}
}

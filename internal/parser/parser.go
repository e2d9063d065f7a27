package parser

import (
	"wisp/internal/ast"
	"wisp/internal/diag"
	"wisp/internal/fixity"
	"wisp/internal/layout"
	"wisp/internal/lexer"
	"wisp/internal/partition"
	"wisp/internal/source"
	"wisp/internal/token"
)

// Result is the outcome of parsing one source file: the module built from
// whatever declarations parsed successfully, the interners that own every
// node the module references, and every diagnostic raised along the way.
type Result struct {
	Module      *ast.Module
	Interners   *ast.Interners
	Strings     *source.Strings
	Diagnostics []diag.Diagnostic
}

// ParseFile implements §6's parse_top_level contract: lex the whole
// source, run the layout engine, partition into declaration groups, run
// the fixity collector, then parse each remaining group as one
// declaration. A group that fails to parse is recorded as a diagnostic
// and skipped; it does not abort the rest of the module (§4.5's recovery
// policy).
func ParseFile(fs *source.FileSet, file source.FileID) Result {
	toks := lexAll(fs, file)
	toks = layout.Run(fs, file, toks)
	groups := partition.Split(toks)

	bag := diag.NewBag(0)
	reporter := diag.BagReporter{Bag: bag}
	strings := source.NewStrings()
	valueFixity, typeFixity := fixity.Collect(fs, strings, groups, reporter)

	in := ast.NewInterners(uint(len(toks))) //nolint:gosec
	mod := ast.NewModule()
	mod.ValueFixity = valueFixity
	mod.TypeFixity = typeFixity

	for _, g := range groups {
		if fixity.IsFixityGroup(g) {
			continue
		}
		cur := New(fs, in, strings, valueFixity, typeFixity, g, reporter)
		d, ok := cur.Declaration()
		if !ok {
			continue
		}
		mod.Declarations = append(mod.Declarations, d)
	}

	return Result{Module: mod, Interners: in, Strings: strings, Diagnostics: bag.Items()}
}

func lexAll(fs *source.FileSet, file source.FileID) []token.Token {
	lx := lexer.New(fs.Get(file))
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

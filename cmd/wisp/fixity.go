package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"wisp/internal/ast"
	"wisp/internal/diag"
	"wisp/internal/fixity"
	"wisp/internal/layout"
	"wisp/internal/lexer"
	"wisp/internal/partition"
	"wisp/internal/source"
	"wisp/internal/token"
)

var fixityCmd = &cobra.Command{
	Use:   "fixity <file>",
	Short: "Collect a file's value and type fixity declarations and print the tables",
	Args:  cobra.ExactArgs(1),
	RunE:  runFixity,
}

func runFixity(cmd *cobra.Command, args []string) error {
	fs := source.NewFileSet()
	file, err := fs.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}

	var toks []token.Token
	lx := lexer.New(fs.Get(file))
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.IsEOF() {
			break
		}
	}
	toks = layout.Run(fs, file, toks)
	groups := partition.Split(toks)

	strs := source.NewStrings()
	bag := diag.NewBag(effectiveMaxDiagnostics(cmd))
	reporter := diag.BagReporter{Bag: bag}
	valueFixity, typeFixity := fixity.Collect(fs, strs, groups, reporter)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "value fixity:")
	printFixityTable(out, strs, valueFixity)
	fmt.Fprintln(out, "type fixity:")
	printFixityTable(out, strs, typeFixity)

	printDiagnostics(cmd.ErrOrStderr(), fs, bag.Items(), resolveColor(effectiveColor(cmd), cmd.ErrOrStderr()))
	return nil
}

func printFixityTable(out io.Writer, strs *source.Strings, table ast.FixityTable) {
	for op, entry := range table {
		fmt.Fprintf(out, "  %-10s %s %d -> %s\n", op, assocSymbol(entry.Assoc), entry.Power, strs.MustLookup(entry.Target))
	}
}

func assocSymbol(a ast.Associativity) string {
	if a == ast.AssocRight {
		return "infixr"
	}
	return "infixl"
}

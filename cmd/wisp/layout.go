package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wisp/internal/layout"
	"wisp/internal/lexer"
	"wisp/internal/source"
	"wisp/internal/token"
)

var layoutCmd = &cobra.Command{
	Use:   "layout <file>",
	Short: "Run the layout engine over a file and print the annotated token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayout,
}

func runLayout(cmd *cobra.Command, args []string) error {
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

	out := cmd.OutOrStdout()
	for _, tok := range toks {
		fmt.Fprintf(out, "depth=%-2d ", tok.Depth)
		printToken(out, fs, tok)
	}
	return nil
}

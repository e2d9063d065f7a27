package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wisp/internal/ast"
	"wisp/internal/parser"
	"wisp/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Run the full front-end pipeline over a file and summarize the resulting module",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	fs := source.NewFileSet()
	file, err := fs.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}

	res := parser.ParseFile(fs, file)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d declaration(s)\n", len(res.Module.Declarations))
	for _, d := range res.Module.Declarations {
		fmt.Fprintf(out, "  %s %s\n", declTagName(d.Tag), res.Strings.MustLookup(d.Name))
	}

	printDiagnostics(cmd.ErrOrStderr(), fs, res.Diagnostics, resolveColor(effectiveColor(cmd), cmd.ErrOrStderr()))
	return nil
}

func declTagName(tag ast.DeclTag) string {
	switch tag {
	case ast.DeclValue:
		return "value"
	case ast.DeclTypeSignature:
		return "signature"
	case ast.DeclUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

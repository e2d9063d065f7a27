package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"wisp/internal/lexer"
	"wisp/internal/source"
	"wisp/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "Lex a wisp source file and print its raw token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	fs := source.NewFileSet()
	file, err := fs.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}

	lx := lexer.New(fs.Get(file))
	out := cmd.OutOrStdout()
	for {
		tok := lx.Next()
		printToken(out, fs, tok)
		if tok.IsEOF() {
			break
		}
	}
	return nil
}

func printToken(w io.Writer, fs *source.FileSet, tok token.Token) {
	start, end := fs.Resolve(tok.Span)
	text := ""
	if !tok.Span.Empty() {
		content := fs.Get(tok.Span.File).Content
		text = string(content[tok.Span.Start:tok.Span.End])
	}
	fmt.Fprintf(w, "%d:%d-%d:%d  %-20s %q\n", start.Line, start.Col, end.Line, end.Col, tok.Kind, text)
}

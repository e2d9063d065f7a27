package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"wisp/internal/diag"
	"wisp/internal/source"
)

// printDiagnostics renders one diagnostic per line as "path:line:col:
// severity code: message", colorized by severity when useColor is set.
// Rendering to richer formats (e.g. an editor-consumable JSON stream)
// stays a caller concern outside this front-end, per spec's diagnostic
// rendering non-goal — this is just enough text output for a human at a
// terminal to act on.
func printDiagnostics(w io.Writer, fs *source.FileSet, items []diag.Diagnostic, useColor bool) {
	errColor := color.New(color.FgRed, color.Bold)
	warnColor := color.New(color.FgYellow, color.Bold)
	infoColor := color.New(color.FgCyan)

	for _, d := range items {
		start, _ := fs.Resolve(d.Primary)
		path := fs.Get(d.Primary.File).Path
		sev := d.Severity.String()
		if useColor {
			switch d.Severity {
			case diag.SevError:
				sev = errColor.Sprint(sev)
			case diag.SevWarning:
				sev = warnColor.Sprint(sev)
			case diag.SevInfo:
				sev = infoColor.Sprint(sev)
			}
		}
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sev, d.Code, d.Message)
	}
}

// resolveColor turns the --color flag (auto|on|off) into a bool, probing
// whether out is a terminal for "auto". A non-*os.File writer (e.g. a
// test buffer) is never treated as a terminal.
func resolveColor(flag string, out io.Writer) bool {
	switch flag {
	case "on":
		return true
	case "off":
		return false
	default:
		f, ok := out.(*os.File)
		return ok && isTerminal(f)
	}
}

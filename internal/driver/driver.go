// Package driver wraps the core front-end (lex, layout, partition,
// fixity, parse) with the harness a real CLI needs: per-stage timing, a
// result type a caller can inspect without reaching into parser
// internals, and a concurrent batch mode over many files (batch.go).
//
// The core packages stay free of timing side-effects on their hot path
// (§3's logging/observability note) — driver.ParseFile re-runs the same
// five stages parser.ParseFile chains together, just with an
// observ.Timer wrapped around each one, so instrumentation never taxes
// the single-file path the parser itself exposes.
package driver

import (
	"wisp/internal/ast"
	"wisp/internal/diag"
	"wisp/internal/fixity"
	"wisp/internal/layout"
	"wisp/internal/lexer"
	"wisp/internal/observ"
	"wisp/internal/parser"
	"wisp/internal/partition"
	"wisp/internal/source"
	"wisp/internal/token"
)

// FileResult is one file's outcome: the parsed module, the interning
// state it was built from, every diagnostic raised, and a timing
// breakdown of the five pipeline stages.
type FileResult struct {
	Path      string
	Module    *ast.Module
	Strings   *source.Strings
	Interners *ast.Interners
	Bag       *diag.Bag
	Timing    observ.Report
	// CacheHit reports whether BatchOptions.Cache already held a record
	// for this file's exact content before this parse ran. The file is
	// always fully reparsed regardless (cache.go: the cache holds a
	// summary, not a reconstructible Module) — CacheHit is purely
	// informational, for a caller that wants to flag unchanged files.
	CacheHit bool
}

// Stage names the five pipeline phases driver.ParseFile times and
// reports, in the order they run.
const (
	StageLex       = "lex"
	StageLayout    = "layout"
	StagePartition = "partition"
	StageFixity    = "fixity"
	StageParse     = "parse"
)

// StageStatus marks whether a StageEvent is a phase's start or end.
type StageStatus int

const (
	StageStart StageStatus = iota
	StageEnd
)

// StageEvent reports one phase boundary for one file, for a caller
// driving a progress UI (cmd/wisp's watch subcommand) over ParseBatch.
type StageEvent struct {
	Path   string
	Stage  string
	Status StageStatus
}

// ParseFile runs the full pipeline over one file with per-stage timing.
// maxDiagnostics bounds the diagnostic bag (0 means unbounded), mirroring
// the Config.MaxErrors knob wispcfg loads from wisp.toml.
func ParseFile(fs *source.FileSet, file source.FileID, maxDiagnostics int) FileResult {
	return parseFileObserved(fs, file, maxDiagnostics, nil)
}

func parseFileObserved(fs *source.FileSet, file source.FileID, maxDiagnostics int, observe func(StageEvent)) FileResult {
	path := fs.Get(file).Path
	timer := observ.NewTimer()

	emit := func(stage string, status StageStatus) {
		if observe != nil {
			observe(StageEvent{Path: path, Stage: stage, Status: status})
		}
	}

	emit(StageLex, StageStart)
	lexPhase := timer.Begin(StageLex)
	toks := lexAll(fs, file)
	timer.End(lexPhase, "")
	emit(StageLex, StageEnd)

	emit(StageLayout, StageStart)
	layoutPhase := timer.Begin(StageLayout)
	toks = layout.Run(fs, file, toks)
	timer.End(layoutPhase, "")
	emit(StageLayout, StageEnd)

	emit(StagePartition, StageStart)
	partPhase := timer.Begin(StagePartition)
	groups := partition.Split(toks)
	timer.End(partPhase, "")
	emit(StagePartition, StageEnd)

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	strings := source.NewStrings()

	emit(StageFixity, StageStart)
	fixityPhase := timer.Begin(StageFixity)
	valueFixity, typeFixity := fixity.Collect(fs, strings, groups, reporter)
	timer.End(fixityPhase, "")
	emit(StageFixity, StageEnd)

	in := ast.NewInterners(uint(len(toks))) //nolint:gosec
	mod := ast.NewModule()
	mod.ValueFixity = valueFixity
	mod.TypeFixity = typeFixity

	emit(StageParse, StageStart)
	parsePhase := timer.Begin(StageParse)
	for _, g := range groups {
		if fixity.IsFixityGroup(g) {
			continue
		}
		cur := parser.New(fs, in, strings, valueFixity, typeFixity, g, reporter)
		d, ok := cur.Declaration()
		if !ok {
			continue
		}
		mod.Declarations = append(mod.Declarations, d)
	}
	timer.End(parsePhase, "")
	emit(StageParse, StageEnd)

	return FileResult{
		Path:      path,
		Module:    mod,
		Strings:   strings,
		Interners: in,
		Bag:       bag,
		Timing:    timer.Report(),
	}
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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wisp/internal/driver"
	"wisp/internal/source"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose <file|directory>",
	Short: "Parse a file or every *.wisp file under a directory and report diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runDiagnose,
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	path := args[0]
	maxDiagnostics := effectiveMaxDiagnostics(cmd)
	jobs, _ := cmd.Root().PersistentFlags().GetInt("jobs")
	useColor := resolveColor(effectiveColor(cmd), cmd.ErrOrStderr())
	cache := openCache(cmd)

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	var fs *source.FileSet
	var results []driver.FileResult

	if st.IsDir() {
		fs, results, err = driver.ParseDir(cmd.Context(), path, driver.BatchOptions{
			Jobs:           jobs,
			MaxDiagnostics: maxDiagnostics,
			Cache:          cache,
		})
		if err != nil {
			return fmt.Errorf("diagnose failed: %w", err)
		}
	} else {
		fs = source.NewFileSet()
		file, loadErr := fs.Load(path)
		if loadErr != nil {
			return fmt.Errorf("failed to load %s: %w", path, loadErr)
		}
		content := fs.Get(file).Content
		var cacheHit bool
		if cache != nil {
			_, cacheHit = cache.Lookup(content)
		}
		res := driver.ParseFile(fs, file, maxDiagnostics)
		res.CacheHit = cacheHit
		if cache != nil {
			_ = cache.Put(path, content, res)
		}
		results = []driver.FileResult{res}
	}

	out := cmd.OutOrStdout()
	totalErrors := false
	for _, r := range results {
		cacheNote := ""
		if r.CacheHit {
			cacheNote = " (cached)"
		}
		fmt.Fprintf(out, "%s: %d declaration(s), %d diagnostic(s)%s\n", r.Path, len(r.Module.Declarations), r.Bag.Len(), cacheNote)
		printDiagnostics(cmd.ErrOrStderr(), fs, r.Bag.Items(), useColor)
		if r.Bag.HasErrors() {
			totalErrors = true
		}
	}

	if totalErrors {
		return fmt.Errorf("one or more files failed to parse cleanly")
	}
	return nil
}

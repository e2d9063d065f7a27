package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"wisp/internal/driver"
	"wisp/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Parse every *.wisp file under a directory with a live progress view",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	maxDiagnostics := effectiveMaxDiagnostics(cmd)
	jobs, _ := cmd.Root().PersistentFlags().GetInt("jobs")
	cache := openCache(cmd)

	paths, err := driver.ListWispFiles(dir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", dir, err)
	}
	if len(paths) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "no .wisp files found under %s\n", dir)
		return nil
	}

	events := make(chan driver.StageEvent, 256)
	type outcome struct {
		results []driver.FileResult
		err     error
	}
	outcomeCh := make(chan outcome, 1)

	ctx := cmd.Context()
	go func() {
		_, results, batchErr := driver.ParseDir(ctx, dir, driver.BatchOptions{
			Jobs:           jobs,
			MaxDiagnostics: maxDiagnostics,
			Cache:          cache,
			Observer: func(ev driver.StageEvent) {
				events <- ev
			},
		})
		close(events)
		outcomeCh <- outcome{results: results, err: batchErr}
	}()

	model := ui.NewProgressModel(fmt.Sprintf("parsing %s", dir), paths, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	if _, runErr := program.Run(); runErr != nil {
		return runErr
	}

	out := <-outcomeCh
	if out.err != nil {
		return out.err
	}
	for _, r := range out.results {
		if r.Bag.HasErrors() {
			return fmt.Errorf("one or more files failed to parse cleanly")
		}
	}
	return nil
}

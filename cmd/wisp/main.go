// Command wisp is the front-end's CLI harness: tokenize, layout,
// partition+fixity, and parse subcommands for manual inspection, plus a
// batch "watch" mode with a live progress view.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"wisp/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "wisp",
	Short: "wisp front-end toolchain",
	Long:  "wisp drives the lex/layout/partition/fixity/parse pipeline over source files for inspection and testing.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loadConfig()
		return nil
	},
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(fixityCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to report (0 = unbounded)")
	rootCmd.PersistentFlags().Int("jobs", 0, "max parallel workers for directory/batch commands (0=auto)")
	rootCmd.PersistentFlags().Bool("cache", false, "enable the on-disk parse result cache (experimental)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

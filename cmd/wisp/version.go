package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"wisp/internal/version"
)

var versionTagline = color.New(color.FgWhite, color.Italic).Sprint("\"layout is the only syntax that matters\"")

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show wisp build information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "wisp %s — %s\n", version.Version, versionTagline)
		if version.GitCommit != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", version.BuildDate)
		}
		return nil
	},
}

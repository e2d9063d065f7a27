package main

import (
	"os"

	"github.com/spf13/cobra"

	"wisp/internal/driver"
	"wisp/internal/wispcfg"
)

// cfg is the wisp.toml configuration resolved once at startup by walking
// up from the working directory (wispcfg.Load). Flags always win over
// it; it only supplies a default for a flag the user left untouched.
var cfg = wispcfg.Default()

func loadConfig() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}
	loaded, err := wispcfg.Load(dir)
	if err != nil {
		return
	}
	cfg = loaded
}

// effectiveMaxDiagnostics returns --max-diagnostics if the caller set it,
// else cfg.MaxErrors (wisp.toml's max_errors).
func effectiveMaxDiagnostics(cmd *cobra.Command) int {
	flags := cmd.Root().PersistentFlags()
	if flags.Changed("max-diagnostics") {
		v, _ := flags.GetInt("max-diagnostics")
		return v
	}
	return cfg.MaxErrors
}

// effectiveColor returns --color if the caller set it, else cfg.Color
// (wisp.toml's color).
func effectiveColor(cmd *cobra.Command) string {
	flags := cmd.Root().PersistentFlags()
	if flags.Changed("color") {
		v, _ := flags.GetString("color")
		return v
	}
	return cfg.Color
}

// openCache opens the on-disk parse cache rooted at cfg.CacheDir (empty
// falls back to the XDG default, see driver.OpenDiskCache), gated by
// --cache since the cache is experimental and otherwise would touch the
// filesystem on every invocation. A failure to open is non-fatal —
// callers proceed without a cache.
func openCache(cmd *cobra.Command) *driver.DiskCache {
	enabled, _ := cmd.Root().PersistentFlags().GetBool("cache")
	if !enabled {
		return nil
	}
	c, err := driver.OpenDiskCache(cfg.CacheDir)
	if err != nil {
		return nil
	}
	return c
}

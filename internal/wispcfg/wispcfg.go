// Package wispcfg loads the optional wisp.toml configuration file the
// CLI and driver read their defaults from.
package wispcfg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds driver/parser options loadable from wisp.toml (§3). A
// missing file is not an error — Load returns Default() for it.
type Config struct {
	MaxErrors  int    `toml:"max_errors"`
	TraceLevel string `toml:"trace_level"`
	Color      string `toml:"color"`
	CacheDir   string `toml:"cache_dir"`
}

// Default returns the configuration used when no wisp.toml is found.
func Default() Config {
	return Config{
		MaxErrors:  0,
		TraceLevel: "off",
		Color:      "auto",
		CacheDir:   "",
	}
}

// FindWispToml walks up from startDir looking for wisp.toml, mirroring
// how the teacher's project package locates its own manifest.
func FindWispToml(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "wisp.toml")
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, true, nil
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, statErr)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and decodes wisp.toml starting from startDir, filling in
// Default() for any field the file doesn't set. Absence of the file is
// not an error.
func Load(startDir string) (Config, error) {
	cfg := Default()

	path, ok, err := FindWispToml(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

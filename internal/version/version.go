// Package version holds build-time identification for the wisp CLI.
package version

// Version information for the wisp CLI. These variables are overridden
// at build time via -ldflags (e.g. -X wisp/internal/version.Version=1.2.3).
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

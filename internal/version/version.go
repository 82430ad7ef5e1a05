// Package version records build-time metadata injected via -ldflags.
package version

import "fmt"

var (
	// Version is the semantic version.
	Version = "0.1.0"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildTime is the UTC time when the binary was built.
	BuildTime = "unknown"
)

// String renders the one-line form shown by --version.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildTime)
}

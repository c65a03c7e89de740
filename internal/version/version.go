// Package version holds build metadata, set with ldflags:
// go build -ldflags "-X git.home.luguber.info/inful/doclinks/internal/version.Version=v0.3.0".
package version

import "fmt"

var Version = "unknown"

var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String formats the build metadata for --version.
func String() string {
	return fmt.Sprintf("doclinks %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}

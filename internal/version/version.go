// Package version holds build-time version information.
package version

import "fmt"

// These variables are set during build time using ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns a formatted version string.
func String() string {
	return fmt.Sprintf("tf-plan-format version %s (commit: %s, built: %s)", Version, Commit, Date)
}

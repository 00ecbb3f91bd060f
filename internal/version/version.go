// Package version holds build information set at link time.
package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"     // Default value if not built with LDFLAGS
	CommitHash = "unknown" // Default value
	BuildDate  = "unknown" // Default value
)

// String returns the one-line version banner for program name.
func String(name string) string {
	return fmt.Sprintf("%s %s (%s, %s)", name, Version, CommitHash, BuildDate)
}

package version

import "strings"

// Set at build time with -ldflags "-X github.com/compozy/releasetag/pkg/version.Version=...".
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Summary returns the version, falling back to "dev" for unstamped builds.
func Summary() string {
	if v := strings.TrimSpace(Version); v != "" {
		return v
	}
	return "dev"
}

// Package version provides version information for artisan-ref.
package version

import (
	"fmt"
	"runtime"
)

// Version is the version of artisan-ref. This can be overridden at build time using ldflags.
var Version = "development"

// Commit is the git commit hash. This can be overridden at build time using ldflags.
var Commit = "unknown"

// String returns the full version string including the commit hash if available.
func String() string {
	if Commit != "unknown" && Commit != "" {
		return Version + "+" + Commit
	}
	return Version
}

// Long returns the version line printed by the version command.
func Long() string {
	return fmt.Sprintf("artisan-ref %s (%s %s/%s)", String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

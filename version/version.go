// Package version holds build-time version information.
// Values are injected via -ldflags at release time.
package version

import "runtime"

var (
	// GitRelease is the release tag, e.g. "v0.3.0".
	GitRelease = "dev"

	// GitCommit is the short commit hash the binary was built from.
	GitCommit = "unknown"

	// GitCommitDate is the commit date of the build.
	GitCommitDate = "unknown"

	// GoInfo is the Go toolchain the binary was built with.
	GoInfo = runtime.Version()
)

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package jobentity

// Build metadata for the jobentity binary. Release builds override the
// defaults with
//
//	go build -ldflags "-X github.com/suparena/jobentity.GitCommit=$(git rev-parse --short HEAD) \
//	  -X github.com/suparena/jobentity.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ) \
//	  -X github.com/suparena/jobentity.GoVersion=$(go env GOVERSION)" ./cmd/jobentity
//
// and `jobentity -version` prints them.
var (
	// Version is the release of the codec library and CLI.
	Version = "0.1.0"

	// GitCommit is the commit the binary was built from.
	GitCommit = "unknown"

	// BuildDate is the UTC build time in RFC 3339 form.
	BuildDate = "unknown"

	// GoVersion is the toolchain that produced the binary.
	GoVersion = "unknown"
)

// VersionInfo is the build metadata reported by `jobentity -version`.
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

// GetVersionInfo snapshots the build metadata variables.
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: GoVersion,
	}
}

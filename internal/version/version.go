// Package version exposes build metadata for Koyo, injected at build
// time via -ldflags -X on the variables below, e.g.:
//
//	-ldflags "-X github.com/jmylchreest/koyo/internal/version.Version=x.y.z"
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version of the application.
	Version = "dev"

	// Commit is the git commit hash of the build.
	Commit = "unknown"

	// Date is the build date in RFC3339 format.
	Date = "unknown"
)

// Info holds all version information for the application.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns all version information as a structured type.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a human-readable version string. Build metadata that
// was not injected is simply omitted.
func String() string {
	info := GetInfo()
	s := fmt.Sprintf("koyo version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
	if info.Commit != "unknown" {
		s += ", commit " + shortCommit(info.Commit)
	}
	if info.Date != "unknown" {
		s += ", built " + info.Date
	}
	return s
}

// Short returns a short version string suitable for CLI output.
func Short() string {
	return Version
}

func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}

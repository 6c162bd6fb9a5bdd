// Package version provides information about the build version of the service.
package version

import "runtime/debug"

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version,omitempty"`
}

// Info returns the build information for service. version, commit and date are
// set at build time; a plain go build falls back to the vcs stamp the toolchain embeds.
//
//	-ldflags "-X 'panchang/internal/core/version.version=v0.3.0'
//	          -X 'panchang/internal/core/version.commit=abcd'
//	          -X 'panchang/internal/core/version.date=2025-03-14'"
func Info(service string) BuildInfo {
	bi := BuildInfo{Service: service, Version: version, Commit: commit, Date: date}
	info, ok := readBuildInfo()
	if !ok {
		return bi
	}
	bi.GoVersion = info.GoVersion
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && bi.Commit == "none":
			bi.Commit = s.Value
		case s.Key == "vcs.time" && bi.Date == "unknown":
			bi.Date = s.Value
		}
	}
	return bi
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	readBuildInfo = debug.ReadBuildInfo // seam
)

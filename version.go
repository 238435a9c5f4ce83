package audesc

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the audesc library.
const Version = "0.1.0"

// VersionInfo describes the running build.
type VersionInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// String renders the version as "audesc 0.1.0 (abc1234, 2026-01-02T15:04:05Z, go1.26.0)".
func (v VersionInfo) String() string {
	return fmt.Sprintf("audesc %s (%s, %s, %s)", v.Version, v.GitCommit, v.BuildTime, v.GoVersion)
}

// GetVersionInfo returns detailed version information.
//
// GitCommit and BuildTime can be set at build time:
//
//	go build -ldflags="-X github.com/simonhull/audesc.gitCommit=$(git rev-parse --short HEAD) \
//	  -X github.com/simonhull/audesc.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// When they are not set, the VCS stamp embedded by the go command is used
// if present, and "unknown" otherwise.
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.GitCommit == "unknown":
			info.GitCommit = s.Value[:min(len(s.Value), 7)]
		case s.Key == "vcs.time" && info.BuildTime == "unknown":
			info.BuildTime = s.Value
		}
	}
	return info
}

// Variables populated at build time via -ldflags.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)

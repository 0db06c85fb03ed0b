package version

import (
	"fmt"
	"runtime"
	"time"
)

// These variables are set at build time via -ldflags
var (
	Version   = "dev"     // Set via: -ldflags "-X github.com/osa911/cateringform/internal/version.Version=v1.0.0"
	BuildTime = "unknown" // Set via: -ldflags "-X github.com/osa911/cateringform/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
	GitCommit = "unknown" // Set via: -ldflags "-X github.com/osa911/cateringform/internal/version.GitCommit=$(git rev-parse HEAD)"
)

// BuildInfo contains comprehensive build information
type BuildInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Compiler  string `json:"compiler"`
}

// GetBuildInfo returns complete build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Compiler:  runtime.Compiler,
	}
}

// Info returns a formatted version info string for CLI output
func Info() string {
	buildInfo := GetBuildInfo()
	if buildInfo.BuildTime == "unknown" {
		return fmt.Sprintf("%s (development build)", buildInfo.Version)
	}

	buildTime, err := time.Parse(time.RFC3339, buildInfo.BuildTime)
	if err != nil {
		return fmt.Sprintf("%s (built %s)", buildInfo.Version, buildInfo.BuildTime)
	}

	return fmt.Sprintf("%s (built %s, commit %s)",
		buildInfo.Version,
		buildTime.UTC().Format("2006-01-02 15:04:05 UTC"),
		shortCommit(buildInfo.GitCommit))
}

func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}

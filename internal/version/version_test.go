package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setBuild(t *testing.T, v, built, commit string) {
	t.Helper()
	oldV, oldB, oldC := Version, BuildTime, GitCommit
	Version, BuildTime, GitCommit = v, built, commit
	t.Cleanup(func() {
		Version, BuildTime, GitCommit = oldV, oldB, oldC
	})
}

func TestInfo(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		built    string
		commit   string
		expected string
	}{
		{"development", "dev", "unknown", "unknown", "dev (development build)"},
		{"release", "v1.2.0", "2026-03-01T10:20:30Z", "0123456789abcdef", "v1.2.0 (built 2026-03-01 10:20:30 UTC, commit 01234567)"},
		{"short commit", "v1.2.0", "2026-03-01T10:20:30Z", "abc", "v1.2.0 (built 2026-03-01 10:20:30 UTC, commit abc)"},
		{"unparsable time", "v1.2.0", "yesterday", "abc", "v1.2.0 (built yesterday)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBuild(t, tt.version, tt.built, tt.commit)
			assert.Equal(t, tt.expected, Info())
		})
	}
}

func TestGetBuildInfo(t *testing.T) {
	setBuild(t, "v0.1.0", "unknown", "deadbeef")

	info := GetBuildInfo()
	assert.Equal(t, "v0.1.0", info.Version)
	assert.Equal(t, "deadbeef", info.GitCommit)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	v := New()
	assert.Equal(t, devVersion, v.Version())
	assert.Empty(t, v.VersionURL())
	assert.Equal(t, unknown, v.Commit())
	assert.Empty(t, v.CommitURL())
	assert.Equal(t, unknown, v.BuildDate())
}

func TestInfo_URLs(t *testing.T) {
	tests := []struct {
		name       string
		info       Info
		versionURL string
		commitURL  string
	}{
		{
			name:       "release",
			info:       Info{version: "1.2.0", commit: "abcdef0"},
			versionURL: repoURL + "/releases/tag/v1.2.0",
			commitURL:  repoURL + "/commit/abcdef0",
		},
		{
			name:       "git describe",
			info:       Info{version: "1.2.0-3-gabcdef0", commit: "abcdef0"},
			versionURL: repoURL + "/compare/v1.2.0...abcdef0",
			commitURL:  repoURL + "/commit/abcdef0",
		},
		{
			name: "without hash",
			info: Info{version: "1.2.0-rc1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.versionURL, tt.info.VersionURL())
			assert.Equal(t, tt.commitURL, tt.info.CommitURL())
		})
	}
}

// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package version // import "feedmill.app/internal/version"

import "strings"

const (
	devVersion = "Development Version"
	unknown    = "Unknown (built outside VCS)"
	repoURL    = "https://github.com/feedmill/feedmill"
)

// Variables populated at build time when using LD_FLAGS.
var (
	Commit    = unknown
	BuildDate = unknown
	Version   = devVersion
)

// Info describes a build of feedmill.
type Info struct {
	version   string
	commit    string
	buildDate string
}

// New returns Info of the running binary.
func New() Info { return Info{version: Version, commit: Commit, buildDate: BuildDate} }

func (self Info) Commit() string { return self.commit }

// CommitURL returns a link to the commit, or an empty string for builds
// outside VCS.
func (self Info) CommitURL() string {
	if self.commit == "" || self.commit == unknown {
		return ""
	}
	return repoURL + "/commit/" + self.commit
}

func (self Info) BuildDate() string { return self.buildDate }

func (self Info) Version() string { return self.version }

// VersionURL returns a link to the release, like ".../releases/tag/v1.2.0",
// or to the changes since the release for "git describe" versions like
// "1.2.0-3-gabcdef0".
func (self Info) VersionURL() string {
	if self.version == devVersion {
		return ""
	}

	tag, commits, found := strings.Cut(self.version, "-")
	if !found {
		return repoURL + "/releases/tag/v" + tag
	}

	_, hash, found := strings.Cut(commits, "-g")
	if !found {
		return ""
	}
	return repoURL + "/compare/v" + tag + "..." + hash
}

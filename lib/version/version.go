// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Version information is injected at build time via -ldflags, for example:
//
//	go build -ldflags "-X github.com/bureau-foundation/techfeed/lib/version.GitCommit=$(git rev-parse --short HEAD)"
package version

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// These variables are set via -ldflags at build time.
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// GitDirty indicates whether there were uncommitted changes.
	GitDirty = "false"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"

	// Version is the semantic version. This is set manually for releases.
	Version = "0.1.0-dev"
)

// shortCommitLength matches git rev-parse --short.
const shortCommitLength = 7

type buildStamp struct {
	commit string
	dirty  bool
	time   string
}

var readStamp = sync.OnceValue(func() buildStamp {
	stamp := buildStamp{commit: GitCommit, dirty: GitDirty == "true", time: BuildTime}
	if stamp.commit != "unknown" {
		return stamp
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return stamp
	}
	return stampFromSettings(stamp, info.Settings)
})

// stampFromSettings fills the stamp from the toolchain's vcs.* build
// settings.
func stampFromSettings(stamp buildStamp, settings []debug.BuildSetting) buildStamp {
	for _, setting := range settings {
		switch setting.Key {
		case "vcs.revision":
			stamp.commit = setting.Value
			if len(stamp.commit) > shortCommitLength {
				stamp.commit = stamp.commit[:shortCommitLength]
			}
		case "vcs.modified":
			stamp.dirty = setting.Value == "true"
		case "vcs.time":
			if stamp.time == "unknown" {
				stamp.time = setting.Value
			}
		}
	}
	return stamp
}

// Info returns a formatted version string suitable for --version output.
func Info() string {
	return formatInfo(readStamp())
}

func formatInfo(stamp buildStamp) string {
	dirty := ""
	if stamp.dirty {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", Version, stamp.commit, dirty, stamp.time)
}

// Print writes "<binary> <Info>" to stdout for --version.
func Print(binary string) {
	Fprint(os.Stdout, binary)
}

// Fprint writes "<binary> <Info>" to writer.
func Fprint(writer io.Writer, binary string) {
	fmt.Fprintf(writer, "%s %s\n", binary, Info())
}

// UserAgent returns the User-Agent header value for outgoing requests.
func UserAgent() string {
	return "techfeed/" + Version
}

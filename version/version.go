// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version describes the dcrhelp release.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// semverAlphabet is an alphabet of all characters allowed in semver prerelease
// or build metadata identifiers, and the . separator.
const semverAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-."

// Constants defining the application version number.
const (
	Major = 1
	Minor = 0
	Patch = 0
)

// PreRelease contains the prerelease name of the application.  It is a variable
// so it can be modified at link time (e.g.
// `-ldflags "-X github.com/decred/dcrhelp/version.PreRelease=rc1"`).
// It must only contain characters from the semantic version alphabet.
var PreRelease = "pre"

// BuildMetadata defines additional build metadata.  It is modified at link time
// for official releases.  When empty, the VCS revision recorded by the Go
// toolchain is used.
var BuildMetadata = ""

func init() {
	if BuildMetadata == "" {
		BuildMetadata = vcsRevision()
	}
}

// vcsRevision returns the first twelve characters of the revision the binary
// was built from, or the empty string when unknown.
func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return ""
}

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec (https://semver.org/).
func String() string {
	return format(Major, Minor, Patch, PreRelease, BuildMetadata)
}

func format(major, minor, patch int, preRelease, buildMetadata string) string {
	version := fmt.Sprintf("%d.%d.%d", major, minor, patch)

	// The hyphen and plus separators are added here and must not be part of
	// the identifiers.  Identifiers consisting only of invalid characters are
	// omitted.
	if pre := normalizeVerString(preRelease); pre != "" {
		version += "-" + pre
	}
	if build := normalizeVerString(buildMetadata); build != "" {
		version += "+" + build
	}
	return version
}

// normalizeVerString returns the passed string stripped of all characters which
// are not valid according to the semantic versioning guidelines for pre-release
// version and build metadata strings.
func normalizeVerString(str string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(semverAlphabet, r) {
			return r
		}
		return -1
	}, str)
}

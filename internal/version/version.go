// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version provides a single location to house the version information
// for cashaddrconv.
package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// semanticAlphabet defines the allowed characters for the pre-release and
// build metadata portions of a semantic version string.
const semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-."

// semverRE is a regular expression used to parse a semantic version string into
// its constituent parts.
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*` +
	`[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

// These variables define the application version and follow the semantic
// versioning 2.0.0 spec (https://semver.org/).
var (
	// Version is the application version per the semantic versioning 2.0.0 spec
	// (https://semver.org/).
	//
	// It is defined as a variable so it can be overridden during the build
	// process with:
	// '-ldflags "-X github.com/decred/cashaddr/internal/version.Version=fullsemver"'
	// if needed.
	//
	// It MUST be a full semantic version per the semantic versioning spec or
	// the package will panic at runtime.
	Version = "0.1.0-pre"

	// These fields are the individual semantic version components parsed from
	// Version during init.
	Major         uint
	Minor         uint
	Patch         uint
	PreRelease    string
	BuildMetadata string
)

// semVer houses the components of a parsed semantic version string.
type semVer struct {
	major, minor, patch uint
	preRelease, build   string
}

// parseUint converts the passed string to an unsigned integer or returns an
// error if it is invalid.
func parseUint(s string, fieldName string) (uint, error) {
	val, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("malformed semver %s: %w", fieldName, err)
	}
	return uint(val), nil
}

// checkSemString returns an error if the passed string contains characters that
// are not in the semantic alphabet.
func checkSemString(s, fieldName string) error {
	for _, r := range s {
		if !strings.ContainsRune(semanticAlphabet, r) {
			return fmt.Errorf("malformed semver %s: %q invalid", fieldName, r)
		}
	}
	return nil
}

// parseSemVer parses the semver components of the provided string.
func parseSemVer(s string) (semVer, error) {
	m := semverRE.FindStringSubmatch(s)
	if m == nil {
		err := fmt.Errorf("malformed version string %q: does not conform to "+
			"semver specification", s)
		return semVer{}, err
	}

	var sv semVer
	var err error
	if sv.major, err = parseUint(m[1], "major"); err != nil {
		return semVer{}, err
	}
	if sv.minor, err = parseUint(m[2], "minor"); err != nil {
		return semVer{}, err
	}
	if sv.patch, err = parseUint(m[3], "patch"); err != nil {
		return semVer{}, err
	}
	if err := checkSemString(m[4], "pre-release"); err != nil {
		return semVer{}, err
	}
	if err := checkSemString(m[5], "buildmetadata"); err != nil {
		return semVer{}, err
	}
	sv.preRelease, sv.build = m[4], m[5]
	return sv, nil
}

func init() {
	sv, err := parseSemVer(Version)
	if err != nil {
		panic(err)
	}
	Major, Minor, Patch = sv.major, sv.minor, sv.patch
	PreRelease, BuildMetadata = sv.preRelease, sv.build

	// Binaries built from a VCS checkout without explicit build metadata
	// carry the commit they were built from.
	if BuildMetadata == "" {
		if commit := NormalizeString(vcsCommitID()); commit != "" {
			BuildMetadata = commit
			Version += "+" + commit
		}
	}
}

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec (https://semver.org/).
func String() string {
	return Version
}

// NormalizeString returns the passed string stripped of all characters which
// are not valid according to the semantic versioning guidelines for pre-release
// and build metadata strings.
func NormalizeString(str string) string {
	var sb strings.Builder
	for _, r := range str {
		if strings.ContainsRune(semanticAlphabet, r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

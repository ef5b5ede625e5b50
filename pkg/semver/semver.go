// SPDX-License-Identifier: GPL-3.0-or-later

// Package semver computes version transitions for bump and release
// operations. All functions are pure; file rewriting and config
// persistence live elsewhere.
package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrMalformedVersion indicates a semantic version that does not
	// match major.minor.patch
	ErrMalformedVersion = errors.New("malformed semantic version")

	// ErrNotReleaseCandidate indicates a release was requested while the
	// current version carries no rc suffix
	ErrNotReleaseCandidate = errors.New("unable to release if current version does not contain rc")

	// ErrCommitHashRelease indicates a release was requested while the
	// current version is a commit hash
	ErrCommitHashRelease = errors.New("cannot release if current version is a commit hash")

	// ErrReleaseCandidateCombo indicates the release-candidate modifier
	// was combined with a part that cannot accept it
	ErrReleaseCandidateCombo = errors.New("release-candidate modifier not allowed for this part")
)

var (
	semanticPattern   = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)
	rcSuffixPattern   = regexp.MustCompile(`^(\d+\.\d+\.\d+)rc(\d+)$`)
	commitHashPattern = regexp.MustCompile(`^[a-f\d]{40}$`)
)

// Part identifies which slot of the version a bump advances
type Part string

const (
	PartMajor      Part = "major"
	PartMinor      Part = "minor"
	PartPatch      Part = "patch"
	PartRC         Part = "rc"
	PartCommitHash Part = "commit_hash"
)

// Parts lists every valid bump part in the order shown to users
var Parts = []Part{PartMajor, PartMinor, PartPatch, PartRC, PartCommitHash}

// ParsePart converts a raw argument into a Part
func ParsePart(s string) (Part, error) {
	for _, p := range Parts {
		if s == string(p) {
			return p, nil
		}
	}

	return "", fmt.Errorf("invalid part %q (choose from %s)", s, partChoices())
}

func partChoices() string {
	choices := make([]string, len(Parts))

	for i, p := range Parts {
		choices[i] = string(p)
	}

	return strings.Join(choices, ", ")
}

// Semantic is a parsed major.minor.patch triple
type Semantic struct {
	Major int
	Minor int
	Patch int
}

// ParseSemantic decomposes a strict major.minor.patch string
func ParseSemantic(s string) (Semantic, error) {
	match := semanticPattern.FindStringSubmatch(s)

	if match == nil {
		return Semantic{}, fmt.Errorf("%w: %q", ErrMalformedVersion, s)
	}

	// pattern guarantees digits only, so errors are unreachable here
	major, _ := strconv.Atoi(match[1])
	minor, _ := strconv.Atoi(match[2])
	patch, _ := strconv.Atoi(match[3])

	return Semantic{Major: major, Minor: minor, Patch: patch}, nil
}

func (s Semantic) String() string {
	return fmt.Sprintf("%d.%d.%d", s.Major, s.Minor, s.Patch)
}

// IsCommitHash reports whether v is a 40 character lowercase hex
// revision identifier
func IsCommitHash(v string) bool {
	return commitHashPattern.MatchString(v)
}

// Next computes the version pair resulting from bumping part. The
// returned semantic version never carries an rc suffix; the returned
// version carries one when part is rc or when releaseCandidate is set.
// PartCommitHash is not handled here since the new value comes from the
// source control collaborator, not from arithmetic.
func Next(currentVersion, currentSemantic string, part Part, releaseCandidate bool) (string, string, error) {
	sem, err := ParseSemantic(currentSemantic)

	if err != nil {
		return "", "", err
	}

	var newVersion string
	var newSemantic Semantic

	switch part {
	case PartMajor:
		newSemantic = Semantic{Major: sem.Major + 1}
		newVersion = newSemantic.String()
	case PartMinor:
		newSemantic = Semantic{Major: sem.Major, Minor: sem.Minor + 1}
		newVersion = newSemantic.String()
	case PartPatch:
		newSemantic = Semantic{Major: sem.Major, Minor: sem.Minor, Patch: sem.Patch + 1}
		newVersion = newSemantic.String()
	case PartRC:
		if releaseCandidate {
			return "", "", fmt.Errorf("%w: rc", ErrReleaseCandidateCombo)
		}

		newSemantic = sem

		if !strings.Contains(currentVersion, "rc") {
			newVersion = currentVersion + "rc1"
		} else {
			match := rcSuffixPattern.FindStringSubmatch(currentVersion)

			if match == nil {
				return "", "", fmt.Errorf("%w: %q", ErrMalformedVersion, currentVersion)
			}

			rc, _ := strconv.Atoi(match[2])
			newVersion = fmt.Sprintf("%src%d", newSemantic, rc+1)
		}

		return newVersion, newSemantic.String(), nil
	default:
		return "", "", fmt.Errorf("unsupported part %q", part)
	}

	if releaseCandidate {
		newVersion += "rc1"
	}

	return newVersion, newSemantic.String(), nil
}

// Release strips the rc suffix, producing the final version for any rc
// counter. Commit hashes and versions without an rc suffix are rejected.
func Release(currentVersion string) (string, error) {
	if IsCommitHash(currentVersion) {
		return "", ErrCommitHashRelease
	}

	match := rcSuffixPattern.FindStringSubmatch(currentVersion)

	if match == nil {
		return "", ErrNotReleaseCandidate
	}

	return match[1], nil
}

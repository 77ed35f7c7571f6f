package version

import (
	// Stdlib
	"regexp"
	"strconv"

	// Vendor
	"github.com/blang/semver"
)

const (
	MatcherString      = "[0-9]+[.][0-9]+[.][0-9]+"
	GroupMatcherString = "^([0-9]+)[.]([0-9]+)[.]([0-9]+)$"
)

var (
	matcher      = regexp.MustCompile(MatcherString)
	groupMatcher = regexp.MustCompile(GroupMatcherString)
)

// Version is a release version in the form of Major.Minor.Patch.
// Pre-release and build metadata are never set.
type Version struct {
	semver.Version

	// literal is the exact string the version was parsed from.
	// It only differs from the canonical form when there are leading zeros.
	literal string
}

func New(major, minor, patch uint64) *Version {
	return &Version{Version: semver.Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}}
}

// Parse accepts exactly Major.Minor.Patch, nothing more, nothing less.
func Parse(versionString string) (*Version, error) {
	match := groupMatcher.FindStringSubmatch(versionString)
	if match == nil {
		return nil, &InvalidVersionError{versionString}
	}

	var parts [3]uint64
	for i := range parts {
		n, err := strconv.ParseUint(match[i+1], 10, 64)
		if err != nil {
			return nil, &InvalidVersionError{versionString}
		}
		parts[i] = n
	}

	ver := New(parts[0], parts[1], parts[2])
	if ver.Version.String() != versionString {
		ver.literal = versionString
	}
	return ver, nil
}

// Find returns the first substring of s that looks like a version.
func Find(s string) (string, bool) {
	loc := matcher.FindStringIndex(s)
	if loc == nil {
		return "", false
	}
	return s[loc[0]:loc[1]], true
}

func (v *Version) String() string {
	if v.literal != "" {
		return v.literal
	}
	return v.Version.String()
}

// components returns the major, minor and patch strings as written.
func (v *Version) components() [3]string {
	if match := groupMatcher.FindStringSubmatch(v.literal); match != nil {
		return [3]string{match[1], match[2], match[3]}
	}
	return [3]string{
		strconv.FormatUint(v.Major, 10),
		strconv.FormatUint(v.Minor, 10),
		strconv.FormatUint(v.Patch, 10),
	}
}

// withComponents sets the literal of v unless it is the canonical form.
func (v *Version) withComponents(major, minor, patch string) *Version {
	if literal := major + "." + minor + "." + patch; literal != v.Version.String() {
		v.literal = literal
	}
	return v
}

func (v *Version) IncrementMajor() *Version {
	return New(v.Major+1, 0, 0)
}

// IncrementMinor keeps the major component as written, leading zeros included.
func (v *Version) IncrementMinor() *Version {
	c := v.components()
	next := New(v.Major, v.Minor+1, 0)
	return next.withComponents(c[0], strconv.FormatUint(next.Minor, 10), "0")
}

// IncrementPatch keeps the major and minor components as written.
func (v *Version) IncrementPatch() *Version {
	c := v.components()
	next := New(v.Major, v.Minor, v.Patch+1)
	return next.withComponents(c[0], c[1], strconv.FormatUint(next.Patch, 10))
}

// Next returns the version following v for the given bump kind.
func (v *Version) Next(kind BumpKind) (*Version, error) {
	switch kind {
	case BumpMajor:
		return v.IncrementMajor(), nil
	case BumpMinor:
		return v.IncrementMinor(), nil
	case BumpPatch:
		return v.IncrementPatch(), nil
	default:
		return nil, &InvalidBumpKindError{string(kind)}
	}
}

func (v *Version) ReleaseTagString() string {
	return v.TagString("v")
}

func (v *Version) TagString(prefix string) string {
	return prefix + v.String()
}

package version

import (
	// Stdlib
	"strings"
)

// BumpKind selects the version component to increment.
type BumpKind string

const (
	BumpMajor BumpKind = "major"
	BumpMinor BumpKind = "minor"
	BumpPatch BumpKind = "patch"
)

func BumpKinds() []BumpKind {
	return []BumpKind{BumpMajor, BumpMinor, BumpPatch}
}

func BumpKindStrings() []string {
	kinds := BumpKinds()
	strs := make([]string, len(kinds))
	for i, kind := range kinds {
		strs[i] = string(kind)
	}
	return strs
}

func ParseBumpKind(kindString string) (BumpKind, error) {
	for _, kind := range BumpKinds() {
		if string(kind) == kindString {
			return kind, nil
		}
	}
	return "", &InvalidBumpKindError{kindString}
}

func (kind BumpKind) String() string {
	return string(kind)
}

// Set implements flag.Value interface.
func (kind *BumpKind) Set(kindString string) error {
	k, err := ParseBumpKind(kindString)
	if err != nil {
		return err
	}
	*kind = k
	return nil
}

func joinKinds(sep string) string {
	return strings.Join(BumpKindStrings(), sep)
}

package version

import (
	// Stdlib
	"fmt"
)

// InvalidVersionError is returned when a version string is missing
// or it is not in the form of Major.Minor.Patch.
type InvalidVersionError struct {
	Version string
}

func (err *InvalidVersionError) Error() string {
	if err.Version == "" {
		return "Invalid release version: no version found"
	}
	return fmt.Sprintf("Invalid release version: %v", err.Version)
}

// InvalidBumpKindError is returned for anything but major, minor or patch.
type InvalidBumpKindError struct {
	Kind string
}

func (err *InvalidBumpKindError) Error() string {
	return fmt.Sprintf("Not a valid release: %q. Should be one of [%v]", err.Kind, joinKinds(", "))
}

package metadata

// Version is the release-bump version, it is bumped by release-bump itself.
const Version = "0.1.0"

/*
Bump the project version.

  release-bump [-dry-run] [-rollback] [-manifest PATH] {major|minor|patch}
  release-bump version bump {major|minor|patch}

Description

Bump the version declared in the manifest file (setup.py by default)
and record the release in the git repository the working directory belongs to.

Exactly one argument must be given, otherwise the usage line is printed.

Steps

This command goes through the following steps:

  1. Check the requested bump kind is one of major, minor or patch.
  2. Read the current version from the first manifest line containing `version=`.
  3. Compute the next version. Lower-order components are reset to zero.
  4. Make sure the release tag does not exist yet.
  5. Replace the version on the `version='x.y.z',` manifest line.
  6. Stage the manifest, commit it as "New release: v<next>" and tag v<next>.

Nothing is modified in case -dry-run is set.
In case -rollback is set, the steps already done are reverted on failure.
*/
package bumpCmd

/*
Package manifest reads and updates the version recorded in a packaging manifest.

The manifest is expected to contain a line like

  version='1.2.3',

Reading only requires a line containing `version=`, the first such line wins.
Rewriting requires the trimmed line to be exactly `version='<current>',`.
*/
package manifest

import (
	// Stdlib
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	// Internal
	"github.com/salsaflow/release-bump/action"
	"github.com/salsaflow/release-bump/errs"
	"github.com/salsaflow/release-bump/log"
	"github.com/salsaflow/release-bump/version"
)

const versionKey = "version="

// ErrVersionLineNotFound is returned by Rewrite when the manifest
// does not contain the exact version line to be replaced.
var ErrVersionLineNotFound = errors.New("version line not found in the manifest")

// VersionLine returns the trimmed manifest line declaring the given version.
func VersionLine(ver *version.Version) string {
	return fmt.Sprintf("version='%v',", ver)
}

// ReadVersion returns the version declared in the manifest at path.
func ReadVersion(path string) (*version.Version, error) {
	task := fmt.Sprintf("Read the current version from '%v'", path)
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errs.NewError(task, err)
	}

	ver, err := ParseVersion(string(content))
	if err != nil {
		return nil, errs.NewError(task, err)
	}
	return ver, nil
}

// ParseVersion is ReadVersion operating on the manifest content.
func ParseVersion(content string) (*version.Version, error) {
	var versionString string
	for _, line := range splitLines(content) {
		if strings.Contains(line, versionKey) {
			versionString, _ = version.Find(line)
			break
		}
	}
	return version.Parse(versionString)
}

// Rewrite replaces current with next on the manifest version line.
//
// All other lines are written back untouched. In case the version line
// is not found, ErrVersionLineNotFound is returned and the file is not written.
// The action returned restores the original file content.
func Rewrite(path string, current, next *version.Version) (action.Action, error) {
	task := fmt.Sprintf("Bump the version in '%v' to %v", path, next)
	log.Run(task)

	info, err := os.Stat(path)
	if err != nil {
		return nil, errs.NewError(task, err)
	}
	original, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errs.NewError(task, err)
	}

	content, err := Replace(string(original), current, next)
	if err != nil {
		hint := fmt.Sprintf(`
The manifest must contain a line that is exactly

  %v

apart from leading and trailing whitespace.

`, VersionLine(current))
		return nil, errs.NewErrorWithHint(task, err, hint)
	}

	if err := ioutil.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return nil, errs.NewError(task, err)
	}

	return action.ActionFunc(func() error {
		log.Rollback(task)
		task := fmt.Sprintf("Restore the original content of '%v'", path)
		if err := ioutil.WriteFile(path, original, info.Mode().Perm()); err != nil {
			return errs.NewError(task, err)
		}
		return nil
	}), nil
}

// Replace is Rewrite operating on the manifest content.
func Replace(content string, current, next *version.Version) (string, error) {
	var (
		search   = VersionLine(current)
		lines    = splitLines(content)
		replaced bool
	)
	for i, line := range lines {
		if strings.TrimSpace(line) == search {
			lines[i] = strings.Replace(line, current.String(), next.String(), -1)
			replaced = true
		}
	}
	if !replaced {
		return "", ErrVersionLineNotFound
	}
	return strings.Join(lines, ""), nil
}

// splitLines splits content into lines, keeping the line terminators.
func splitLines(content string) []string {
	lines := strings.SplitAfter(content, "\n")
	if n := len(lines); n != 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

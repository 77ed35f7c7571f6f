package git

import (
	// Stdlib
	"bytes"
	"os/exec"
	"strings"

	// Internal
	"github.com/salsaflow/release-bump/errs"
	"github.com/salsaflow/release-bump/git/gitutil"
)

func Add(args ...string) error {
	_, err := RunCommand("add", args...)
	return err
}

func Commit(message string, args ...string) error {
	argsList := append([]string{"-m", message}, args...)
	_, err := RunCommand("commit", argsList...)
	return err
}

func Reset(args ...string) error {
	_, err := RunCommand("reset", args...)
	return err
}

// Unstage removes the given paths from the index, keeping the working tree.
func Unstage(paths ...string) error {
	head, err := HeadHexsha()
	if err != nil {
		return err
	}
	if head == "" {
		// There is no HEAD to reset to yet.
		argsList := append([]string{"--cached", "-q", "--"}, paths...)
		_, err := RunCommand("rm", argsList...)
		return err
	}
	argsList := append([]string{"-q", "HEAD", "--"}, paths...)
	return Reset(argsList...)
}

func Tag(args ...string) error {
	_, err := RunCommand("tag", args...)
	return err
}

func DeleteTag(tag string) error {
	return Tag("-d", tag)
}

// RefExistsStrict requires the whole ref path to be specified,
// e.g. refs/tags/v1.0.0.
func RefExistsStrict(ref string) (exists bool, err error) {
	_, err = Run("show-ref", "--verify", "--quiet", ref)
	if err != nil {
		if silentFailure(err) {
			// Empty error output means that the ref does not exist.
			return false, nil
		}
		// Otherwise there was an error.
		return false, err
	}
	// No error means that the ref exists.
	return true, nil
}

func TagExists(tag string) (exists bool, err error) {
	return RefExistsStrict("refs/tags/" + tag)
}

func EnsureTagNotExists(tag string) error {
	exists, err := TagExists(tag)
	if err != nil {
		return err
	}
	if exists {
		return &ErrTagExists{tag}
	}
	return nil
}

// HeadHexsha returns the commit HEAD points to.
// The hexsha is empty for a repository without any commits.
func HeadHexsha() (hexsha string, err error) {
	stdout, err := Run("rev-parse", "--verify", "--quiet", "HEAD")
	if err != nil {
		if silentFailure(err) {
			return "", nil
		}
		return "", err
	}
	return string(bytes.TrimSpace(stdout.Bytes())), nil
}

// DeleteHeadRef removes the branch HEAD points to, making it unborn again.
func DeleteHeadRef() error {
	_, err := Run("update-ref", "-d", "HEAD")
	return err
}

// HasStagedChanges returns true when the index differs from HEAD.
func HasStagedChanges() (bool, error) {
	stdout, err := RunCommand("diff", "--cached", "--name-only")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(stdout.String()) != "", nil
}

// silentFailure returns true when git exited with a non-zero status
// without printing anything into stderr.
func silentFailure(err error) bool {
	ex, ok := err.(errs.Error)
	if !ok || ex.Hint() != "" {
		return false
	}
	_, ok = errs.RootCause(err).(*exec.ExitError)
	return ok
}

func Run(args ...string) (stdout *bytes.Buffer, err error) {
	return gitutil.Run(args...)
}

func RunCommand(command string, args ...string) (stdout *bytes.Buffer, err error) {
	return gitutil.RunCommand(command, args...)
}

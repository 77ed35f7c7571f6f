package errs

import (
	// Stdlib
	"bytes"
	"fmt"
	"strings"

	// Internal
	"github.com/salsaflow/release-bump/log"
)

// Error wraps an error with the task that was being performed
// and an optional hint for the user, e.g. the stderr of a failed git command.
type Error interface {
	error
	Task() string
	Hint() string
	Err() error
}

type taskError struct {
	task string
	err  error
	hint string
}

func (e *taskError) Error() string {
	return e.err.Error()
}

func (e *taskError) Task() string {
	return e.task
}

func (e *taskError) Hint() string {
	return e.hint
}

func (e *taskError) Err() error {
	return e.err
}

func (e *taskError) Unwrap() error {
	return e.err
}

func NewError(task string, err error) Error {
	return &taskError{task: task, err: err}
}

func NewErrorWithHint(task string, err error, hint string) Error {
	return &taskError{task: task, err: err, hint: hint}
}

// RootCause returns the first error in the chain that is not an errs.Error.
func RootCause(err error) error {
	for {
		ex, ok := err.(Error)
		if !ok {
			return err
		}
		err = ex.Err()
	}
}

// Log prints the task trail of the given error and returns the error unchanged.
func Log(err error) error {
	logger := log.V(log.Info)
	logger.Lock()
	defer logger.Unlock()
	unsafeLog(logger, err)
	return err
}

// LogError is a shortcut for Log(NewError(task, err)).
func LogError(task string, err error) error {
	return Log(NewError(task, err))
}

// Fatal logs the error and exits the process with status 1.
func Fatal(err error) {
	Log(err)
	log.Fatalln("\nError: " + RootCause(err).Error())
}

func unsafeLog(logger log.Logger, err error) {
	var hints bytes.Buffer
	for {
		ex, ok := err.(Error)
		if !ok {
			break
		}
		logger.UnsafeFail(ex.Task())
		if hint := ex.Hint(); hint != "" {
			hints.WriteString(hint)
			if !strings.HasSuffix(hint, "\n") {
				hints.WriteString("\n")
			}
		}
		err = ex.Err()
	}
	if err != nil {
		logger.UnsafeNewLine(fmt.Sprintf("(%v)", err))
	}
	logger.UnsafeStderr(&hints)
}

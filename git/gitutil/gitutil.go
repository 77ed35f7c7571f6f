package gitutil

import (
	// Stdlib
	"bytes"
	"fmt"

	// Internal
	"github.com/salsaflow/release-bump/errs"
	"github.com/salsaflow/release-bump/log"
	"github.com/salsaflow/release-bump/shell"
)

func Run(args ...string) (stdout *bytes.Buffer, err error) {
	argsList := make([]string, 2, 2+len(args))
	argsList[0], argsList[1] = "git", "--no-pager"
	argsList = append(argsList, args...)

	task := fmt.Sprintf("Run git with args = %#v", args)
	log.V(log.Debug).Log(task)
	stdout, stderr, err := shell.Run(argsList...)
	if err != nil {
		return nil, errs.NewErrorWithHint(task, err, stderr.String())
	}
	return stdout, nil
}

func RunCommand(command string, args ...string) (stdout *bytes.Buffer, err error) {
	argsList := make([]string, 3, 3+len(args))
	argsList[0], argsList[1], argsList[2] = "git", "--no-pager", command
	argsList = append(argsList, args...)

	task := fmt.Sprintf("Run 'git %v' with args = %#v", command, args)
	log.V(log.Debug).Log(task)
	stdout, stderr, err := shell.Run(argsList...)
	if err != nil {
		return nil, errs.NewErrorWithHint(task, err, stderr.String())
	}
	return stdout, nil
}

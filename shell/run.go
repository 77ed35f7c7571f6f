package shell

import (
	// Stdlib
	"bytes"
	"os/exec"
)

// Run runs the given command in the current working directory
// and returns whatever it wrote into stdout and stderr.
func Run(args ...string) (stdout, stderr *bytes.Buffer, err error) {
	stdout = new(bytes.Buffer)
	stderr = new(bytes.Buffer)

	cmd := exec.Command(args[0], args[1:]...)

	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err = cmd.Run()

	return
}

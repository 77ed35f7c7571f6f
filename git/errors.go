package git

import "errors"

var ErrNothingStaged = errors.New("no changes staged for commit")

type ErrTagExists struct {
	tag string
}

func (err *ErrTagExists) Error() string {
	if err.tag == "" {
		panic("ErrTagExists.tag is not set")
	}
	return "tag already exists: " + err.tag
}

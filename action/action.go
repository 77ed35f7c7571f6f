package action

import (
	// Stdlib
	"errors"

	// Internal
	"github.com/salsaflow/release-bump/errs"
)

// Action represents a change that can be reverted.
type Action interface {
	Rollback() error
}

type ActionFunc func() error

func (action ActionFunc) Rollback() error {
	return action()
}

var Noop = ActionFunc(func() error { return nil })

var ErrRollbackFailed = errors.New("failed to roll back changes")

// Chain collects actions so that they can be rolled back in reverse order.
type Chain struct {
	actions []Action
}

func NewChain() *Chain {
	return &Chain{}
}

func (chain *Chain) Push(action Action) {
	if action != nil {
		chain.actions = append(chain.actions, action)
	}
}

func (chain *Chain) Len() int {
	return len(chain.actions)
}

// Rollback rolls back all actions pushed so far, the last one first.
// All actions are always run, even when some of them fail.
func (chain *Chain) Rollback() error {
	var failed bool
	for i := len(chain.actions) - 1; i >= 0; i-- {
		if err := chain.actions[i].Rollback(); err != nil {
			errs.Log(err)
			failed = true
		}
	}
	chain.actions = nil

	if failed {
		return errs.NewError("Roll back changes", ErrRollbackFailed)
	}
	return nil
}

// RollbackOnError is supposed to be called using defer:
//
//     defer chain.RollbackOnError(&err)
//
// The pointer makes it possible to check the error set
// after the defer statement has been evaluated.
func (chain *Chain) RollbackOnError(err *error) {
	if *err != nil {
		chain.Rollback()
	}
}

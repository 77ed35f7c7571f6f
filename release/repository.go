package release

import (
	// Stdlib
	"fmt"

	// Internal
	"github.com/salsaflow/release-bump/action"
	"github.com/salsaflow/release-bump/errs"
	"github.com/salsaflow/release-bump/git"
	"github.com/salsaflow/release-bump/log"
)

// Repository is the version control system the release is recorded in.
//
// Every mutating method returns an action that reverts the change.
type Repository interface {
	EnsureTagNotExists(tag string) error
	Stage(path string) (action.Action, error)
	Commit(message string) (action.Action, error)
	Tag(tag, message string) (action.Action, error)
}

// GitRepository implements Repository for the git repository
// the current working directory belongs to.
type GitRepository struct {
	// AnnotatedTags makes Tag create annotated tags
	// carrying the tag message instead of lightweight ones.
	AnnotatedTags bool
}

func NewGitRepository(annotatedTags bool) *GitRepository {
	return &GitRepository{annotatedTags}
}

func (repo *GitRepository) EnsureTagNotExists(tag string) error {
	task := fmt.Sprintf("Make sure tag '%v' does not exist", tag)
	if err := git.EnsureTagNotExists(tag); err != nil {
		return errs.NewError(task, err)
	}
	return nil
}

func (repo *GitRepository) Stage(path string) (action.Action, error) {
	task := fmt.Sprintf("Stage '%v'", path)
	log.Run(task)
	if err := git.Add(path); err != nil {
		return nil, errs.NewError(task, err)
	}

	return action.ActionFunc(func() error {
		log.Rollback(task)
		task := fmt.Sprintf("Unstage '%v'", path)
		if err := git.Unstage(path); err != nil {
			return errs.NewError(task, err)
		}
		return nil
	}), nil
}

func (repo *GitRepository) Commit(message string) (action.Action, error) {
	task := fmt.Sprintf("Commit '%v'", message)
	log.Run(task)

	staged, err := git.HasStagedChanges()
	if err != nil {
		return nil, errs.NewError(task, err)
	}
	if !staged {
		return nil, errs.NewError(task, git.ErrNothingStaged)
	}

	// Remember HEAD so that the commit can be dropped on rollback.
	head, err := git.HeadHexsha()
	if err != nil {
		return nil, errs.NewError(task, err)
	}

	if err := git.Commit(message); err != nil {
		return nil, errs.NewError(task, err)
	}

	return action.ActionFunc(func() error {
		log.Rollback(task)
		if head == "" {
			task := "Drop the initial commit"
			if err := git.DeleteHeadRef(); err != nil {
				return errs.NewError(task, err)
			}
			return nil
		}
		task := fmt.Sprintf("Reset HEAD back to %v", head)
		if err := git.Reset("--soft", head); err != nil {
			return errs.NewError(task, err)
		}
		return nil
	}), nil
}

func (repo *GitRepository) Tag(tag, message string) (action.Action, error) {
	task := fmt.Sprintf("Create tag '%v'", tag)
	log.Run(task)

	args := []string{tag}
	if repo.AnnotatedTags {
		args = []string{"-a", "-m", message, tag}
	}
	if err := git.Tag(args...); err != nil {
		return nil, errs.NewError(task, err)
	}

	return action.ActionFunc(func() error {
		log.Rollback(task)
		task := fmt.Sprintf("Delete tag '%v'", tag)
		if err := git.DeleteTag(tag); err != nil {
			return errs.NewError(task, err)
		}
		return nil
	}), nil
}

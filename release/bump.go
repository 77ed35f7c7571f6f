package release

import (
	// Stdlib
	"fmt"

	// Internal
	"github.com/salsaflow/release-bump/action"
	"github.com/salsaflow/release-bump/config"
	"github.com/salsaflow/release-bump/errs"
	"github.com/salsaflow/release-bump/log"
	"github.com/salsaflow/release-bump/manifest"
	"github.com/salsaflow/release-bump/version"
)

type Options struct {
	// Kind is the requested bump kind, validated by Bump.
	Kind string

	Config *config.Config

	// DryRun makes Bump stop right after computing the next version.
	DryRun bool
}

type Result struct {
	Previous      *version.Version
	Next          *version.Version
	Tag           string
	CommitMessage string
}

func (res *Result) String() string {
	return fmt.Sprintf("Old version: %v, new version: %v", res.Previous, res.Next)
}

// Bump bumps the manifest version and records the release in the repository.
//
// The steps are: read the current version, validate the bump kind,
// compute the next version, rewrite the manifest, stage it, commit, tag.
// Nothing is modified unless the current version and the bump kind are valid.
//
// In case Config.RollbackOnFailure is set, the changes already made
// are reverted when any of the mutating steps fails.
func Bump(repo Repository, opts *Options) (res *Result, err error) {
	conf := opts.Config
	if conf == nil {
		conf = config.Default()
	}

	// Read the current version.
	current, err := manifest.ReadVersion(conf.Manifest)
	if err != nil {
		return nil, err
	}

	// Validate the bump kind.
	task := "Validate the requested release bump"
	kind, err := version.ParseBumpKind(opts.Kind)
	if err != nil {
		return nil, errs.NewError(task, err)
	}

	// Compute the next version.
	task = fmt.Sprintf("Compute the next %v version for %v", kind, current)
	next, err := current.Next(kind)
	if err != nil {
		return nil, errs.NewError(task, err)
	}

	res = &Result{
		Previous: current,
		Next:     next,
		Tag:      next.TagString(conf.TagPrefix),
	}
	res.CommitMessage, err = conf.FormatCommitMessage(&config.CommitMessageData{
		Tag:             res.Tag,
		Version:         next.String(),
		PreviousVersion: current.String(),
	})
	if err != nil {
		return nil, err
	}

	if opts.DryRun {
		log.Skip(fmt.Sprintf("Dry run, not bumping %v to %v", current, next))
		return res, nil
	}

	// Fail early in case the release has been tagged already.
	if err := repo.EnsureTagNotExists(res.Tag); err != nil {
		return nil, err
	}

	chain := action.NewChain()
	if conf.RollbackOnFailure {
		defer chain.RollbackOnError(&err)
	} else {
		defer func() {
			if err != nil && chain.Len() != 0 {
				log.Warn("The changes made so far were kept, use -rollback to revert them on failure")
			}
		}()
	}

	// Rewrite the manifest.
	act, err := manifest.Rewrite(conf.Manifest, current, next)
	if err != nil {
		return nil, err
	}
	chain.Push(act)

	// Stage, commit and tag.
	act, err = repo.Stage(conf.Manifest)
	if err != nil {
		return nil, err
	}
	chain.Push(act)

	act, err = repo.Commit(res.CommitMessage)
	if err != nil {
		return nil, err
	}
	chain.Push(act)

	act, err = repo.Tag(res.Tag, res.CommitMessage)
	if err != nil {
		return nil, err
	}
	chain.Push(act)

	log.Ok(fmt.Sprintf("Release %v created", res.Tag))
	return res, nil
}

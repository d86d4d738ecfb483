package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/appveyor-status/pkg/domain/model"
	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/appveyor-status/pkg/repourl"
	"github.com/m-mizutani/appveyor-status/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const defaultRepo = "."

// query is a validated copy of StatusOptions with the working copy state resolved.
type query struct {
	opts model.StatusOptions
	// branch is the branch to filter builds by, empty for any branch.
	branch string
	// commit is a lowercase 40 hex digit hash, or empty.
	commit string
	// gitDir is where git is inspected: the repository when it is local, the working directory
	// otherwise.
	gitDir string
	// local is true when Repo names a path instead of a remote URL.
	local bool
}

func (x *query) badgeID() string {
	if x.opts.WebhookID != "" {
		return x.opts.WebhookID
	}
	return x.opts.StatusBadgeID
}

func validateOptions(opts model.StatusOptions) error {
	var selectors []string
	if opts.Project != nil {
		selectors = append(selectors, "project")
	}
	if opts.Repo != "" {
		selectors = append(selectors, "repo")
	}
	if opts.WebhookID != "" {
		selectors = append(selectors, "webhook_id")
	}
	if opts.StatusBadgeID != "" {
		selectors = append(selectors, "status_badge_id")
	}
	if len(selectors) > 1 {
		return goerr.New(strings.Join(selectors, " and ")+" are mutually exclusive",
			goerr.V("options", selectors),
			goerr.T(types.ErrTagConfiguration),
		)
	}

	if opts.Project != nil {
		if err := opts.Project.Validate(); err != nil {
			return err
		}
	}

	if opts.Branch != "" && opts.CurrentBranch {
		return goerr.New("branch and current branch are mutually exclusive",
			goerr.V("branch", opts.Branch),
			goerr.T(types.ErrTagConfiguration),
		)
	}

	if opts.Wait < 0 {
		return goerr.New("wait must not be negative",
			goerr.V("wait", opts.Wait),
			goerr.T(types.ErrTagConfiguration),
		)
	}

	return nil
}

// canonicalize validates opts and resolves the branch and commit from the working copy. opts is
// copied and never modified.
func (x *UseCase) canonicalize(ctx context.Context, opts model.StatusOptions) (*query, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	q := &query{opts: opts, gitDir: defaultRepo}
	if opts.Project != nil {
		project := *opts.Project
		q.opts.Project = &project
	}
	if q.opts.Project == nil && q.badgeID() == "" && q.opts.Repo == "" {
		q.opts.Repo = defaultRepo
	}
	if q.opts.Repo != "" && repourl.IsLocalNotSSH(q.opts.Repo) {
		q.local = true
		q.gitDir = q.opts.Repo
	}

	q.branch = q.opts.Branch
	if q.opts.CurrentBranch {
		branch, err := x.clients.Git().CurrentBranch(ctx, q.gitDir)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get current branch", goerr.V("dir", q.gitDir))
		}
		q.branch = branch
	}

	if commit := q.opts.Commit; commit != "" {
		if model.IsCommitHash(commit) {
			q.commit = strings.ToLower(commit)
		} else {
			resolved, err := x.clients.Git().ResolveCommit(ctx, q.gitDir, commit)
			if err != nil {
				return nil, goerr.Wrap(err, "failed to resolve commit", goerr.V("commit", commit))
			}
			q.commit = strings.ToLower(resolved)
		}
	}

	logging.From(ctx).Debug("canonicalized status options",
		slog.Any("options", q.opts),
		slog.String("branch", q.branch),
		slog.String("commit", q.commit),
		slog.Bool("local", q.local),
	)

	return q, nil
}

package usecase

import (
	"context"
	"log/slog"
	"sort"

	"github.com/m-mizutani/appveyor-status/pkg/domain/interfaces"
	"github.com/m-mizutani/appveyor-status/pkg/domain/model"
	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/appveyor-status/pkg/infra/git"
	"github.com/m-mizutani/appveyor-status/pkg/repourl"
	"github.com/m-mizutani/appveyor-status/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// verboseLog logs at info level when the caller asked for verbose output, at debug otherwise.
func verboseLog(ctx context.Context, q *query, msg string, attrs ...any) {
	logger := logging.From(ctx)
	if q.opts.Verbosity > 0 {
		logger.Info(msg, attrs...)
	} else {
		logger.Debug(msg, attrs...)
	}
}

// remoteName finds the remote tracked by the branch under query. Failures are not errors: the
// "origin" remote is used instead.
func (x *UseCase) remoteName(ctx context.Context, q *query) string {
	branch := q.branch
	if branch == "" {
		current, err := x.clients.Git().CurrentBranch(ctx, q.gitDir)
		if err != nil {
			verboseLog(ctx, q, "unable to get current branch, using default remote",
				slog.String("remote", git.DefaultRemote),
				slog.Any("error", err),
			)
			return git.DefaultRemote
		}
		branch = current
	}

	remote, err := x.clients.Git().BranchRemote(ctx, q.gitDir, branch)
	if err != nil {
		verboseLog(ctx, q, "unable to get remote of branch, using default remote",
			slog.String("branch", branch),
			slog.String("remote", git.DefaultRemote),
			slog.Any("error", err),
		)
		return git.DefaultRemote
	}
	return remote
}

// resolveRepoURL returns the remote URL of the repository under query. A local repository is
// replaced by the URL of its upstream remote.
func (x *UseCase) resolveRepoURL(ctx context.Context, q *query) (string, error) {
	if !q.local {
		return q.opts.Repo, nil
	}

	remote := x.remoteName(ctx, q)
	repoURL, err := x.clients.Git().RemoteURL(ctx, q.gitDir, remote)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get remote URL",
			goerr.V("dir", q.gitDir),
			goerr.V("remote", remote),
		)
	}

	logging.From(ctx).Debug("resolved repository URL",
		slog.String("dir", q.gitDir),
		slog.String("remote", remote),
		slog.String("url", repoURL),
	)
	return repoURL, nil
}

// findProject selects the single listed project built from the repository.
func findProject(ctx context.Context, client interfaces.AppVeyor, identity *model.RepoIdentity) (*model.Project, error) {
	projects, err := client.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	var matched []*model.Project
	for _, p := range projects {
		if identity.Matches(p) {
			matched = append(matched, p)
		}
	}

	switch len(matched) {
	case 0:
		return nil, goerr.New("no AppVeyor project found for repository",
			goerr.V("repository_type", identity.RepositoryType),
			goerr.V("repository_name", identity.RepositoryName),
			goerr.V("projects", len(projects)),
		)
	case 1:
		return matched[0], nil
	}

	candidates := make([]string, len(matched))
	for i, p := range matched {
		candidates[i] = p.String()
	}
	sort.Strings(candidates)
	return nil, model.NewAmbiguousProjectError(identity, candidates)
}

// resolveProject returns the project to query. When the project was found in the project listing
// and no branch filter applies, its most recent build from the listing is returned as well.
func (x *UseCase) resolveProject(ctx context.Context, client interfaces.AppVeyor, q *query) (*model.Project, *model.Build, error) {
	if q.opts.Project != nil {
		return q.opts.Project, nil, nil
	}
	if q.badgeID() != "" {
		return nil, nil, goerr.New("webhook id identifies a status badge, not a project; use project or repo",
			goerr.T(types.ErrTagConfiguration),
		)
	}

	repoURL, err := x.resolveRepoURL(ctx, q)
	if err != nil {
		return nil, nil, err
	}

	identity, err := repourl.ParseProviderRepoURL(repourl.ScmGit, repoURL)
	if err != nil {
		return nil, nil, err
	}

	found, err := findProject(ctx, client, identity)
	if err != nil {
		return nil, nil, err
	}

	project := *found
	project.Builds = nil

	var inline *model.Build
	if q.branch == "" && len(found.Builds) > 0 && found.Builds[0] != nil {
		inline = found.Builds[0]
	}

	logging.From(ctx).Debug("resolved project",
		slog.String("project", project.String()),
		slog.Bool("inline_build", inline != nil),
	)
	return &project, inline, nil
}

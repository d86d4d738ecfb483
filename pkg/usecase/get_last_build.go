package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/appveyor-status/pkg/domain/interfaces"
	"github.com/m-mizutani/appveyor-status/pkg/domain/model"
	"github.com/m-mizutani/appveyor-status/pkg/retry"
	"github.com/m-mizutani/appveyor-status/pkg/utils/logging"
)

// poll runs fetch once, or while isPending holds for up to q.opts.Wait when waiting is requested.
func poll[T any](ctx context.Context, x *UseCase, q *query, fetch func(context.Context) (T, error), isPending func(T) bool) (T, error) {
	if q.opts.Wait == 0 {
		return fetch(ctx)
	}

	maxTotal := q.opts.Wait
	if maxTotal == model.WaitForever {
		maxTotal = retry.Unbounded
	}

	return retry.Do(ctx, fetch, isPending,
		retry.WithClock(x.clients.Clock()),
		retry.WithMaxTotal(maxTotal),
	)
}

func isBuildPending(build *model.ProjectBuild) bool {
	return build.Build.Status.IsPending()
}

// GetLastBuild returns the most recent build of the project identified by opts. With Wait, it polls
// until the build is no longer pending or the wait budget is spent. With Commit, the build returned
// last must be for that commit.
func (x *UseCase) GetLastBuild(ctx context.Context, opts model.StatusOptions) (*model.ProjectBuild, error) {
	ctx = logging.WithSession(ctx)

	q, err := x.canonicalize(ctx, opts)
	if err != nil {
		return nil, err
	}

	client, release := x.appVeyor(q.opts.Token)
	defer release()

	return x.getLastBuild(ctx, client, q)
}

func (x *UseCase) getLastBuild(ctx context.Context, client interfaces.AppVeyor, q *query) (*model.ProjectBuild, error) {
	project, inline, err := x.resolveProject(ctx, client, q)
	if err != nil {
		return nil, err
	}

	fetch := func(ctx context.Context) (*model.ProjectBuild, error) {
		if inline != nil {
			build := &model.ProjectBuild{Project: *project, Build: *inline}
			inline = nil
			return build, nil
		}
		return client.GetProjectLastBuild(ctx, project, q.branch)
	}

	build, err := poll(ctx, x, q, fetch, isBuildPending)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("got last build",
		slog.String("project", build.Project.String()),
		slog.String("version", build.Build.Version),
		slog.String("status", build.Build.Status.String()),
	)

	if err := checkCommit(q, build); err != nil {
		return nil, err
	}
	return build, nil
}

func checkCommit(q *query, build *model.ProjectBuild) error {
	if q.commit == "" {
		return nil
	}
	actual := build.Build.CommitID
	if model.NormalizeCommit(actual) != q.commit {
		return model.NewCommitMismatchError(actual, q.commit, build)
	}
	return nil
}

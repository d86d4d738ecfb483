package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/appveyor-status/pkg/domain/model"
	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/appveyor-status/pkg/repourl"
	"github.com/m-mizutani/appveyor-status/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

func isBadgePending(badge *model.StatusBadge) bool {
	return badge.Status.IsPending()
}

// GetStatusBadge fetches the status badge of the repository or badge (webhook) id in opts. Badges
// need no token.
func (x *UseCase) GetStatusBadge(ctx context.Context, opts model.StatusOptions) (*model.StatusBadge, error) {
	ctx = logging.WithSession(ctx)

	if opts.Project != nil {
		return nil, goerr.New("status badge cannot be selected by project; use repo or webhook id",
			goerr.T(types.ErrTagConfiguration),
		)
	}
	if opts.Commit != "" {
		return nil, goerr.New("status badge cannot be checked against a commit",
			goerr.V("commit", opts.Commit),
			goerr.T(types.ErrTagConfiguration),
		)
	}

	q, err := x.canonicalize(ctx, opts)
	if err != nil {
		return nil, err
	}

	req := &model.BadgeRequest{
		BadgeID: q.badgeID(),
		Branch:  q.branch,
	}
	if req.BadgeID == "" {
		repoURL, err := x.resolveRepoURL(ctx, q)
		if err != nil {
			return nil, err
		}
		params, err := repourl.ToBadgeParams(repourl.ScmGit, repoURL)
		if err != nil {
			return nil, err
		}
		req.Repo = params
	}

	client, release := x.appVeyor(q.opts.Token)
	defer release()

	badge, err := poll(ctx, x, q, func(ctx context.Context) (*model.StatusBadge, error) {
		return client.GetStatusBadge(ctx, req)
	}, isBadgePending)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("got status badge", slog.String("status", badge.Status.String()))
	return badge, nil
}

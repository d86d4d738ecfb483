package usecase

import (
	"context"

	"github.com/m-mizutani/appveyor-status/pkg/domain/model"
	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/appveyor-status/pkg/utils/logging"
)

// GetStatus returns the status of the last build. It reads the status badge unless a project or
// commit is given, which need the authenticated API.
func (x *UseCase) GetStatus(ctx context.Context, opts model.StatusOptions) (types.BuildStatus, error) {
	ctx = logging.WithSession(ctx)

	if opts.Commit != "" || opts.Project != nil {
		build, err := x.GetLastBuild(ctx, opts)
		if err != nil {
			return "", err
		}
		return build.Build.Status, nil
	}

	badge, err := x.GetStatusBadge(ctx, opts)
	if err != nil {
		return "", err
	}
	return badge.Status, nil
}

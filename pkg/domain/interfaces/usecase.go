package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/appveyor-status/pkg/domain/model"
	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
)

type UseCase interface {
	GetLastBuild(ctx context.Context, opts model.StatusOptions) (*model.ProjectBuild, error)
	GetStatusBadge(ctx context.Context, opts model.StatusOptions) (*model.StatusBadge, error)
	GetStatus(ctx context.Context, opts model.StatusOptions) (types.BuildStatus, error)
}

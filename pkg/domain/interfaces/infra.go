package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . AppVeyor Git

import (
	"context"
	"net/http"

	"github.com/m-mizutani/appveyor-status/pkg/domain/model"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// AppVeyor is the subset of the AppVeyor REST API used to query build status.
type AppVeyor interface {
	ListProjects(ctx context.Context) ([]*model.Project, error)
	// GetProjectLastBuild returns the most recent build of project, of branch when it is not empty.
	GetProjectLastBuild(ctx context.Context, project *model.Project, branch string) (*model.ProjectBuild, error)
	// GetStatusBadge fetches a status badge image and reads the build status from it. It does not
	// require authentication.
	GetStatusBadge(ctx context.Context, req *model.BadgeRequest) (*model.StatusBadge, error)
}

// Git inspects the working copy at dir.
type Git interface {
	// CurrentBranch fails when HEAD is detached or dir is not in a repository.
	CurrentBranch(ctx context.Context, dir string) (string, error)
	// BranchRemote returns the name of the remote the branch tracks.
	BranchRemote(ctx context.Context, dir, branch string) (string, error)
	// RemoteURL returns the first URL of the named remote. An empty name selects the remote of
	// the current branch, or "origin".
	RemoteURL(ctx context.Context, dir, name string) (string, error)
	// ResolveCommit resolves a revision to a 40 character hexadecimal commit hash.
	ResolveCommit(ctx context.Context, dir, revision string) (string, error)
}

package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/appveyor-status/pkg/domain/mock"
	"github.com/m-mizutani/appveyor-status/pkg/domain/model"
	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/appveyor-status/pkg/infra"
	"github.com/m-mizutani/appveyor-status/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestGetStatusOfProject(t *testing.T) {
	fake := &fakeAppVeyor{
		statuses: []types.BuildStatus{types.BuildStatusSuccess},
		commit:   commitA,
	}
	srv := fake.serve(t)
	uc := usecase.New(infra.New(infra.WithBaseURL(srv.URL), infra.WithGit(&mock.GitMock{})))

	status := gt.R1(uc.GetStatus(context.Background(), model.StatusOptions{
		Project: mustProject(t, "foo/bar"),
	})).NoError(t)
	gt.V(t, status).Equal(types.BuildStatusSuccess)
	gt.Equal(t, fake.calls, 1)
}

func TestGetStatusSelectsSource(t *testing.T) {
	ctx := context.Background()

	t.Run("commit uses last build", func(t *testing.T) {
		appveyor := &mock.AppVeyorMock{
			ListProjectsFunc: func(ctx context.Context) ([]*model.Project, error) {
				return []*model.Project{
					{AccountName: "foo", Slug: "bar", RepositoryType: types.RepositoryTypeGitHub, RepositoryName: "foo/bar"},
				}, nil
			},
			GetProjectLastBuildFunc: func(ctx context.Context, p *model.Project, branch string) (*model.ProjectBuild, error) {
				return lastBuild(p, types.BuildStatusCancelled, commitA), nil
			},
		}
		uc := usecase.New(infra.New(infra.WithAppVeyor(appveyor), infra.WithGit(gitRepo("https://github.com/foo/bar"))))

		status := gt.R1(uc.GetStatus(ctx, model.StatusOptions{Commit: "HEAD"})).NoError(t)
		gt.V(t, status).Equal(types.BuildStatusCancelled)
		gt.A(t, appveyor.GetStatusBadgeCalls()).Length(0)
	})

	t.Run("repository uses badge", func(t *testing.T) {
		appveyor := badgeMock(types.BuildStatusSuccess)
		uc := usecase.New(infra.New(infra.WithAppVeyor(appveyor), infra.WithGit(gitRepo("https://github.com/foo/bar"))))

		status := gt.R1(uc.GetStatus(ctx, model.StatusOptions{})).NoError(t)
		gt.V(t, status).Equal(types.BuildStatusSuccess)
		gt.A(t, appveyor.GetStatusBadgeCalls()).Length(1)
	})

	t.Run("errors propagate", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithAppVeyor(&mock.AppVeyorMock{})))
		_, err := uc.GetStatus(ctx, model.StatusOptions{
			Project: mustProject(t, "foo/bar"),
			Repo:    ".",
		})
		gt.True(t, goerr.HasTag(err, types.ErrTagConfiguration))
	})
}

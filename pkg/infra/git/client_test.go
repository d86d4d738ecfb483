package git_test

import (
	"context"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/appveyor-status/pkg/infra/git"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

// newRepo creates a repository with one commit on master, an "origin" and an "upstream" remote,
// and master tracking upstream.
func newRepo(t *testing.T) (string, plumbing.Hash) {
	t.Helper()
	dir := t.TempDir()

	repo := gt.R1(gogit.PlainInit(dir, false)).NoError(t)
	gt.R1(repo.CreateRemote(&config.RemoteConfig{
		Name: "origin",
		URLs: []string{"https://github.com/foo/origin.git"},
	})).NoError(t)
	gt.R1(repo.CreateRemote(&config.RemoteConfig{
		Name: "upstream",
		URLs: []string{"git@github.com:foo/upstream.git"},
	})).NoError(t)

	wt := gt.R1(repo.Worktree()).NoError(t)
	hash := gt.R1(wt.Commit("initial", &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "tester",
			Email: "tester@example.com",
			When:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		AllowEmptyCommits: true,
	})).NoError(t)

	head := gt.R1(repo.Head()).NoError(t)
	gt.NoError(t, repo.CreateBranch(&config.Branch{
		Name:   head.Name().Short(),
		Remote: "upstream",
		Merge:  head.Name(),
	}))

	return dir, hash
}

func TestCurrentBranch(t *testing.T) {
	ctx := context.Background()
	client := git.New()

	t.Run("branch name", func(t *testing.T) {
		dir, _ := newRepo(t)
		branch := gt.R1(client.CurrentBranch(ctx, dir)).NoError(t)
		gt.V(t, branch).Equal("master")
	})

	t.Run("detached HEAD", func(t *testing.T) {
		dir, hash := newRepo(t)
		repo := gt.R1(gogit.PlainOpen(dir)).NoError(t)
		wt := gt.R1(repo.Worktree()).NoError(t)
		gt.NoError(t, wt.Checkout(&gogit.CheckoutOptions{Hash: hash}))

		_, err := client.CurrentBranch(ctx, dir)
		gt.True(t, goerr.HasTag(err, types.ErrTagGit))
	})

	t.Run("not a repository", func(t *testing.T) {
		_, err := client.CurrentBranch(ctx, t.TempDir())
		gt.True(t, goerr.HasTag(err, types.ErrTagGit))
	})
}

func TestBranchRemote(t *testing.T) {
	ctx := context.Background()
	client := git.New()
	dir, _ := newRepo(t)

	remote := gt.R1(client.BranchRemote(ctx, dir, "master")).NoError(t)
	gt.V(t, remote).Equal("upstream")

	_, err := client.BranchRemote(ctx, dir, "no-such-branch")
	gt.True(t, goerr.HasTag(err, types.ErrTagGit))
}

func TestRemoteURL(t *testing.T) {
	ctx := context.Background()
	client := git.New()
	dir, _ := newRepo(t)

	t.Run("named remote", func(t *testing.T) {
		url := gt.R1(client.RemoteURL(ctx, dir, "origin")).NoError(t)
		gt.V(t, url).Equal("https://github.com/foo/origin.git")
	})

	t.Run("empty name follows the current branch", func(t *testing.T) {
		url := gt.R1(client.RemoteURL(ctx, dir, "")).NoError(t)
		gt.V(t, url).Equal("git@github.com:foo/upstream.git")
	})

	t.Run("missing remote", func(t *testing.T) {
		_, err := client.RemoteURL(ctx, dir, "nope")
		gt.True(t, goerr.HasTag(err, types.ErrTagGit))
	})
}

func TestResolveCommit(t *testing.T) {
	ctx := context.Background()
	client := git.New()
	dir, hash := newRepo(t)

	for _, rev := range []string{"HEAD", "master", hash.String()} {
		t.Run(rev, func(t *testing.T) {
			resolved := gt.R1(client.ResolveCommit(ctx, dir, rev)).NoError(t)
			gt.V(t, resolved).Equal(hash.String())
		})
	}

	t.Run("unknown revision", func(t *testing.T) {
		_, err := client.ResolveCommit(ctx, dir, "does-not-exist")
		gt.True(t, goerr.HasTag(err, types.ErrTagGit))
	})
}

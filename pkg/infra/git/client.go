package git

import (
	"context"
	"errors"
	"log/slog"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/m-mizutani/appveyor-status/pkg/domain/interfaces"
	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/appveyor-status/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultRemote is used when the current branch tracks no remote.
const DefaultRemote = "origin"

// Client reads repository state with go-git, without running the git command.
type Client struct{}

var _ interfaces.Git = (*Client)(nil)

func New() *Client {
	return &Client{}
}

func open(dir string) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open git repository",
			goerr.V("dir", dir),
			goerr.T(types.ErrTagGit),
		)
	}
	return repo, nil
}

func currentBranch(repo *gogit.Repository, dir string) (string, error) {
	head, err := repo.Head()
	if err != nil {
		return "", goerr.Wrap(err, "failed to read HEAD",
			goerr.V("dir", dir),
			goerr.T(types.ErrTagGit),
		)
	}
	if !head.Name().IsBranch() {
		return "", goerr.New("HEAD is detached",
			goerr.V("dir", dir),
			goerr.V("head", head.Hash().String()),
			goerr.T(types.ErrTagGit),
		)
	}
	return head.Name().Short(), nil
}

func branchRemote(repo *gogit.Repository, dir, branch string) (string, error) {
	cfg, err := repo.Config()
	if err != nil {
		return "", goerr.Wrap(err, "failed to read git config",
			goerr.V("dir", dir),
			goerr.T(types.ErrTagGit),
		)
	}

	b, ok := cfg.Branches[branch]
	if !ok || b.Remote == "" {
		return "", goerr.New("branch has no upstream remote",
			goerr.V("dir", dir),
			goerr.V("branch", branch),
			goerr.T(types.ErrTagGit),
		)
	}
	return b.Remote, nil
}

func (x *Client) CurrentBranch(ctx context.Context, dir string) (string, error) {
	repo, err := open(dir)
	if err != nil {
		return "", err
	}
	return currentBranch(repo, dir)
}

func (x *Client) BranchRemote(ctx context.Context, dir, branch string) (string, error) {
	repo, err := open(dir)
	if err != nil {
		return "", err
	}
	return branchRemote(repo, dir, branch)
}

func (x *Client) RemoteURL(ctx context.Context, dir, name string) (string, error) {
	repo, err := open(dir)
	if err != nil {
		return "", err
	}

	if name == "" {
		name = DefaultRemote
		if branch, err := currentBranch(repo, dir); err == nil {
			if remote, err := branchRemote(repo, dir, branch); err == nil {
				name = remote
			}
		}
		logging.From(ctx).Debug("selected default remote", slog.String("remote", name))
	}

	remote, err := repo.Remote(name)
	if err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			return "", goerr.Wrap(err, "git remote not found",
				goerr.V("dir", dir),
				goerr.V("remote", name),
				goerr.T(types.ErrTagGit),
			)
		}
		return "", goerr.Wrap(err, "failed to read git remote",
			goerr.V("dir", dir),
			goerr.V("remote", name),
			goerr.T(types.ErrTagGit),
		)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", goerr.New("git remote has no URL",
			goerr.V("dir", dir),
			goerr.V("remote", name),
			goerr.T(types.ErrTagGit),
		)
	}
	return urls[0], nil
}

func (x *Client) ResolveCommit(ctx context.Context, dir, revision string) (string, error) {
	repo, err := open(dir)
	if err != nil {
		return "", err
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve revision",
			goerr.V("dir", dir),
			goerr.V("revision", revision),
			goerr.T(types.ErrTagGit),
		)
	}
	return hash.String(), nil
}

package repourl_test

import (
	"testing"

	"github.com/m-mizutani/appveyor-status/pkg/domain/model"
	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/appveyor-status/pkg/repourl"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestParseProviderRepoURL(t *testing.T) {
	testCases := []struct {
		name   string
		scm    string
		url    string
		expect model.RepoIdentity
	}{
		{
			name:   "github https",
			scm:    "git",
			url:    "https://github.com/acct/proj.git",
			expect: model.RepoIdentity{Scm: "git", RepositoryType: types.RepositoryTypeGitHub, RepositoryName: "acct/proj"},
		},
		{
			name:   "github scp-like",
			scm:    "git",
			url:    "git@github.com:acct/proj.git",
			expect: model.RepoIdentity{Scm: "git", RepositoryType: types.RepositoryTypeGitHub, RepositoryName: "acct/proj"},
		},
		{
			name:   "host is case insensitive",
			scm:    "git",
			url:    "https://GitHub.com/acct/proj",
			expect: model.RepoIdentity{Scm: "git", RepositoryType: types.RepositoryTypeGitHub, RepositoryName: "acct/proj"},
		},
		{
			name:   "trailing slash",
			scm:    "git",
			url:    "https://github.com/acct/proj/",
			expect: model.RepoIdentity{Scm: "git", RepositoryType: types.RepositoryTypeGitHub, RepositoryName: "acct/proj"},
		},
		{
			name:   "trailing slash after .git",
			scm:    "git",
			url:    "https://github.com/acct/proj.git/",
			expect: model.RepoIdentity{Scm: "git", RepositoryType: types.RepositoryTypeGitHub, RepositoryName: "acct/proj"},
		},
		{
			name:   "bitbucket",
			scm:    "git",
			url:    "https://user@bitbucket.org/acct/proj.git",
			expect: model.RepoIdentity{Scm: "git", RepositoryType: types.RepositoryTypeBitBucket, RepositoryName: "acct/proj"},
		},
		{
			name:   "gitlab subgroup",
			scm:    "git",
			url:    "git@gitlab.com:group/sub/proj.git",
			expect: model.RepoIdentity{Scm: "git", RepositoryType: types.RepositoryTypeGitLab, RepositoryName: "group/sub/proj"},
		},
		{
			name:   "vso without project",
			scm:    "git",
			url:    "https://acct.visualstudio.com/_git/repo",
			expect: model.RepoIdentity{Scm: "git", RepositoryType: types.RepositoryTypeVSO, RepositoryName: "git/acct/repo/repo"},
		},
		{
			name:   "vso with collection and project",
			scm:    "git",
			url:    "https://acct.visualstudio.com/DefaultCollection/proj/_git/repo",
			expect: model.RepoIdentity{Scm: "git", RepositoryType: types.RepositoryTypeVSO, RepositoryName: "git/acct/proj/repo"},
		},
		{
			name:   "vso ssh",
			scm:    "git",
			url:    "ssh://acct@acct.visualstudio.com:22/proj/_ssh/repo",
			expect: model.RepoIdentity{Scm: "git", RepositoryType: types.RepositoryTypeVSO, RepositoryName: "git/acct/proj/repo"},
		},
		{
			name:   "vso v3 ssh",
			scm:    "git",
			url:    "acct@vs-ssh.visualstudio.com:v3/acct/proj/repo",
			expect: model.RepoIdentity{Scm: "git", RepositoryType: types.RepositoryTypeVSO, RepositoryName: "git/acct/proj/repo"},
		},
		{
			name:   "unknown git host",
			scm:    "git",
			url:    "git://x/y",
			expect: model.RepoIdentity{Scm: "git", RepositoryType: types.RepositoryTypeGit, RepositoryName: "git://x/y"},
		},
		{
			name:   "non-git scm",
			scm:    "mercurial",
			url:    "https://hg.example.com/repo",
			expect: model.RepoIdentity{Scm: "mercurial", RepositoryType: "mercurial", RepositoryName: "https://hg.example.com/repo"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			identity := gt.R1(repourl.ParseProviderRepoURL(tc.scm, tc.url)).NoError(t)
			gt.V(t, *identity).Equal(tc.expect)
		})
	}
}

func TestToBadgeParams(t *testing.T) {
	t.Run("github", func(t *testing.T) {
		params := gt.R1(repourl.ToBadgeParams("git", "git@github.com:acct/proj.git")).NoError(t)
		gt.V(t, *params).Equal(model.BadgeParams{Provider: "github", AccountName: "acct", Slug: "proj"})
	})

	t.Run("bitbucket", func(t *testing.T) {
		params := gt.R1(repourl.ToBadgeParams("git", "https://bitbucket.org/acct/proj")).NoError(t)
		gt.V(t, params.Provider).Equal("bitbucket")
	})

	t.Run("trailing slash", func(t *testing.T) {
		params := gt.R1(repourl.ToBadgeParams("git", "https://github.com/acct/proj/")).NoError(t)
		gt.V(t, *params).Equal(model.BadgeParams{Provider: "github", AccountName: "acct", Slug: "proj"})
	})

	t.Run("unsupported provider", func(t *testing.T) {
		_, err := repourl.ToBadgeParams("git", "https://acct.visualstudio.com/_git/repo")
		gt.True(t, goerr.HasTag(err, types.ErrTagConfiguration))
		gt.S(t, err.Error()).Contains("not supported")
	})

	t.Run("nested path", func(t *testing.T) {
		_, err := repourl.ToBadgeParams("git", "https://gitlab.com/group/sub/proj")
		gt.True(t, goerr.HasTag(err, types.ErrTagConfiguration))
		gt.S(t, err.Error()).Contains("account/slug")
	})
}

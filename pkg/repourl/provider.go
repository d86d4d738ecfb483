package repourl

import (
	"strings"

	"github.com/m-mizutani/appveyor-status/pkg/domain/model"
	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const ScmGit = "git"

var hostedProviders = map[string]types.RepositoryType{
	"github.com":    types.RepositoryTypeGitHub,
	"bitbucket.org": types.RepositoryTypeBitBucket,
	"gitlab.com":    types.RepositoryTypeGitLab,
}

// badgeProviders is the path segment AppVeyor uses for repository badges of each provider.
var badgeProviders = map[types.RepositoryType]string{
	types.RepositoryTypeGitHub:    "github",
	types.RepositoryTypeBitBucket: "bitbucket",
	types.RepositoryTypeGitLab:    "gitlab",
}

const (
	vsoHostSuffix = ".visualstudio.com"
	vsoSSHHost    = "vs-ssh.visualstudio.com"
)

// ParseProviderRepoURL maps a remote URL to the repository identity AppVeyor stores for projects
// built from it. A non-git scm, or a git host AppVeyor has no integration for, yields the URL
// itself as the repository name.
func ParseProviderRepoURL(scm, rawURL string) (*model.RepoIdentity, error) {
	unknown := &model.RepoIdentity{
		Scm:            scm,
		RepositoryType: types.RepositoryType(scm),
		RepositoryName: rawURL,
	}
	if scm != ScmGit {
		return unknown, nil
	}

	parsed, err := ParseGitURL(rawURL)
	if err != nil {
		return nil, err
	}

	host := strings.ToLower(parsed.Hostname())
	path := strings.TrimSuffix(strings.Trim(parsed.Path, "/"), ".git")

	if repoType, ok := hostedProviders[host]; ok {
		return &model.RepoIdentity{
			Scm:            scm,
			RepositoryType: repoType,
			RepositoryName: path,
		}, nil
	}

	if name, ok := vsoRepositoryName(host, path); ok {
		return &model.RepoIdentity{
			Scm:            scm,
			RepositoryType: types.RepositoryTypeVSO,
			RepositoryName: name,
		}, nil
	}

	return unknown, nil
}

// vsoRepositoryName handles
//
//	https://{account}.visualstudio.com/[DefaultCollection/][{project}/]_git/{repo}
//	ssh://{account}@{account}.visualstudio.com:22/[DefaultCollection/][{project}/]_ssh/{repo}
//	{account}@vs-ssh.visualstudio.com:v3/{account}/{project}/{repo}
//
// A repository without a project segment lives in the project of the same name.
func vsoRepositoryName(host, path string) (string, bool) {
	parts := strings.Split(path, "/")

	if host == vsoSSHHost {
		if len(parts) != 4 || parts[0] != "v3" {
			return "", false
		}
		return strings.Join([]string{"git", parts[1], parts[2], parts[3]}, "/"), true
	}

	account, ok := strings.CutSuffix(host, vsoHostSuffix)
	if !ok || account == "" || strings.Contains(account, ".") {
		return "", false
	}

	if len(parts) > 0 && strings.EqualFold(parts[0], "DefaultCollection") {
		parts = parts[1:]
	}

	var project, repo string
	switch {
	case len(parts) == 2 && isVSOMarker(parts[0]):
		project, repo = parts[1], parts[1]
	case len(parts) == 3 && isVSOMarker(parts[1]):
		project, repo = parts[0], parts[2]
	default:
		return "", false
	}
	if repo == "" {
		return "", false
	}

	return strings.Join([]string{"git", account, project, repo}, "/"), true
}

func isVSOMarker(s string) bool {
	return s == "_git" || s == "_ssh"
}

// ToBadgeParams maps a remote URL to the parameters of its repository status badge. Only providers
// with repository badges and "account/slug" shaped names are supported.
func ToBadgeParams(scm, rawURL string) (*model.BadgeParams, error) {
	identity, err := ParseProviderRepoURL(scm, rawURL)
	if err != nil {
		return nil, err
	}

	provider, ok := badgeProviders[identity.RepositoryType]
	if !ok {
		return nil, goerr.New("status badge is not supported for this repository provider",
			goerr.V("provider", identity.RepositoryType),
			goerr.V("url", rawURL),
			goerr.T(types.ErrTagConfiguration),
		)
	}

	parts := strings.Split(identity.RepositoryName, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, goerr.New("repository path must be 'account/slug' for status badge",
			goerr.V("repository_name", identity.RepositoryName),
			goerr.V("url", rawURL),
			goerr.T(types.ErrTagConfiguration),
		)
	}

	return &model.BadgeParams{
		Provider:    provider,
		AccountName: parts[0],
		Slug:        parts[1],
	}, nil
}

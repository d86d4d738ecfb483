package model

import "github.com/m-mizutani/appveyor-status/pkg/domain/types"

// RepoIdentity is how AppVeyor names a source repository.
type RepoIdentity struct {
	Scm            string
	RepositoryType types.RepositoryType
	RepositoryName string
}

// Matches compares the identity with the repository fields of a listed project. Scm is compared only
// when both sides have it.
func (x *RepoIdentity) Matches(project *Project) bool {
	if project == nil {
		return false
	}
	if x.RepositoryType != project.RepositoryType || x.RepositoryName != project.RepositoryName {
		return false
	}
	if x.Scm != "" && project.RepositoryScm != "" && x.Scm != project.RepositoryScm {
		return false
	}
	return true
}

// BadgeParams locates a repository status badge.
type BadgeParams struct {
	Provider    string
	AccountName string
	Slug        string
}

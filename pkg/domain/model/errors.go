package model

import (
	"errors"
	"strings"

	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	errValueCandidates     = "candidates"
	errValueCommitMismatch = "commit_mismatch"
)

// CommitMismatch describes a last build that is not for the requested commit.
type CommitMismatch struct {
	Actual   string
	Expected string
	Build    *ProjectBuild
}

func NewAmbiguousProjectError(identity *RepoIdentity, candidates []string) error {
	return goerr.New("multiple AppVeyor projects match repository, specify one with project",
		goerr.V("repository_type", identity.RepositoryType),
		goerr.V("repository_name", identity.RepositoryName),
		goerr.V(errValueCandidates, candidates),
		goerr.T(types.ErrTagAmbiguousProject),
	)
}

// AmbiguousCandidates returns the "account/slug" names carried by an ambiguous project error.
func AmbiguousCandidates(err error) ([]string, bool) {
	if !goerr.HasTag(err, types.ErrTagAmbiguousProject) {
		return nil, false
	}
	v, ok := lookupValue(err, errValueCandidates)
	if !ok {
		return nil, false
	}
	candidates, ok := v.([]string)
	return candidates, ok
}

func NewCommitMismatchError(actual, expected string, build *ProjectBuild) error {
	mismatch := &CommitMismatch{
		Actual:   strings.ToLower(actual),
		Expected: strings.ToLower(expected),
		Build:    build,
	}

	opts := []goerr.Option{
		goerr.V("actual", mismatch.Actual),
		goerr.V("expected", mismatch.Expected),
		goerr.V(errValueCommitMismatch, mismatch),
		goerr.T(types.ErrTagCommitMismatch),
	}
	if build != nil {
		opts = append(opts, goerr.V("project", build.Project.String()), goerr.V("build_version", build.Build.Version))
	}

	return goerr.New("last build commit does not match", opts...)
}

func CommitMismatchOf(err error) (*CommitMismatch, bool) {
	if !goerr.HasTag(err, types.ErrTagCommitMismatch) {
		return nil, false
	}
	v, ok := lookupValue(err, errValueCommitMismatch)
	if !ok {
		return nil, false
	}
	mismatch, ok := v.(*CommitMismatch)
	return mismatch, ok
}

func lookupValue(err error, key string) (any, bool) {
	for err != nil {
		if goErr, ok := err.(*goerr.Error); ok {
			if v, ok := goErr.Values()[key]; ok {
				return v, true
			}
		}
		err = errors.Unwrap(err)
	}
	return nil, false
}

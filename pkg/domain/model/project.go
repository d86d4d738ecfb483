package model

import (
	"regexp"
	"strings"
	"time"

	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

var ptnCommitHash = regexp.MustCompile(`^[0-9a-fA-F]{40}$`)

// IsCommitHash reports whether s is a full 40 hex digit commit hash (in any case).
func IsCommitHash(s string) bool {
	return ptnCommitHash.MatchString(s)
}

// NormalizeCommit returns a commit hash in the lowercase form used for comparison.
func NormalizeCommit(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Project is an AppVeyor project. AccountName and Slug identify it; the remaining fields are filled
// only when the project comes from the project listing.
type Project struct {
	ProjectID      int64                `json:"projectId,omitempty"`
	AccountName    string               `json:"accountName"`
	Slug           string               `json:"slug"`
	Name           string               `json:"name,omitempty"`
	RepositoryType types.RepositoryType `json:"repositoryType,omitempty"`
	RepositoryScm  string               `json:"repositoryScm,omitempty"`
	RepositoryName string               `json:"repositoryName,omitempty"`
	Builds         []*Build             `json:"builds,omitempty"`
}

// ParseProject parses "account/slug".
func ParseProject(s string) (*Project, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return nil, goerr.New("project must have the form account/slug",
			goerr.V("project", s),
			goerr.T(types.ErrTagConfiguration),
		)
	}

	project := &Project{AccountName: parts[0], Slug: parts[1]}
	if err := project.Validate(); err != nil {
		return nil, err
	}
	return project, nil
}

func (x *Project) Validate() error {
	if x.AccountName == "" {
		return goerr.New("project account name is empty", goerr.V("project", x.String()), goerr.T(types.ErrTagConfiguration))
	}
	if x.Slug == "" {
		return goerr.New("project slug is empty", goerr.V("project", x.String()), goerr.T(types.ErrTagConfiguration))
	}
	return nil
}

func (x Project) String() string {
	return x.AccountName + "/" + x.Slug
}

type Build struct {
	BuildID     int64             `json:"buildId,omitempty"`
	BuildNumber int               `json:"buildNumber,omitempty"`
	Version     string            `json:"version,omitempty"`
	Message     string            `json:"message,omitempty"`
	Branch      string            `json:"branch,omitempty"`
	CommitID    string            `json:"commitId,omitempty"`
	Status      types.BuildStatus `json:"status"`
	Created     *time.Time        `json:"created,omitempty"`
	Started     *time.Time        `json:"started,omitempty"`
	Finished    *time.Time        `json:"finished,omitempty"`
}

// ProjectBuild is the response of the last build endpoints.
type ProjectBuild struct {
	Project Project `json:"project"`
	Build   Build   `json:"build"`
}

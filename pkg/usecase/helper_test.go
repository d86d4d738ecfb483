package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/appveyor-status/pkg/domain/mock"
	"github.com/m-mizutani/appveyor-status/pkg/domain/model"
	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

const (
	commitA = "0123456789abcdef0123456789abcdef01234567"
	commitB = "89abcdef0123456789abcdef0123456789abcdef"
)

func mustProject(t *testing.T, s string) *model.Project {
	t.Helper()
	return gt.R1(model.ParseProject(s)).NoError(t)
}

func lastBuild(project *model.Project, status types.BuildStatus, commit string) *model.ProjectBuild {
	return &model.ProjectBuild{
		Project: *project,
		Build:   model.Build{Status: status, CommitID: commit, Version: "1.0." + string(status)},
	}
}

// gitRepo returns a git mock for a working copy on branch "main" tracking "upstream".
func gitRepo(remoteURL string) *mock.GitMock {
	return &mock.GitMock{
		CurrentBranchFunc: func(ctx context.Context, dir string) (string, error) {
			return "main", nil
		},
		BranchRemoteFunc: func(ctx context.Context, dir, branch string) (string, error) {
			return "upstream", nil
		},
		RemoteURLFunc: func(ctx context.Context, dir, name string) (string, error) {
			return remoteURL, nil
		},
		ResolveCommitFunc: func(ctx context.Context, dir, revision string) (string, error) {
			return commitA, nil
		},
	}
}

// fakeAppVeyor serves the AppVeyor endpoints used by status queries. statuses are returned in
// order by the last build endpoint, repeating the final one.
type fakeAppVeyor struct {
	projects []map[string]any
	statuses []types.BuildStatus
	commit   string
	badge    string
	calls    int
	auth     []string
}

func (x *fakeAppVeyor) serve(t *testing.T) *httptest.Server {
	t.Helper()
	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		gt.NoError(t, json.NewEncoder(w).Encode(v))
	}

	r := chi.NewRouter()
	r.Get("/projects", func(w http.ResponseWriter, r *http.Request) {
		x.auth = append(x.auth, r.Header.Get("Authorization"))
		writeJSON(w, x.projects)
	})
	r.Get("/projects/{account}/{slug}", func(w http.ResponseWriter, r *http.Request) {
		x.auth = append(x.auth, r.Header.Get("Authorization"))
		i := x.calls
		if i >= len(x.statuses) {
			i = len(x.statuses) - 1
		}
		x.calls++
		writeJSON(w, map[string]any{
			"project": map[string]any{"accountName": chi.URLParam(r, "account"), "slug": chi.URLParam(r, "slug")},
			"build":   map[string]any{"status": x.statuses[i], "commitId": x.commit},
		})
	})
	r.Get("/projects/status/{provider}/{account}/{slug}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/svg+xml")
		_, _ = w.Write([]byte(x.badge))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

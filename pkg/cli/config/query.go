package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/appveyor-status/pkg/domain/model"
	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Query holds the flags selecting which build to report.
type Query struct {
	branch        string
	currentBranch bool
	commit        string
	project       string
	repo          string
	webhookID     string
	wait          bool
	waitTimeout   time.Duration
}

func (x *Query) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "branch",
			Aliases:     []string{"b"},
			Usage:       "Report the last build of this branch",
			Category:    "Query",
			Destination: &x.branch,
		},
		&cli.BoolFlag{
			Name:        "current-branch",
			Aliases:     []string{"B"},
			Usage:       "Report the last build of the branch checked out in the repository",
			Category:    "Query",
			Destination: &x.currentBranch,
		},
		&cli.StringFlag{
			Name:        "commit",
			Aliases:     []string{"c"},
			Usage:       "Require the last build to be for this commit (hash or any git revision)",
			Category:    "Query",
			Destination: &x.commit,
		},
		&cli.StringFlag{
			Name:        "project",
			Aliases:     []string{"p"},
			Usage:       "AppVeyor project as account/slug",
			Category:    "Query",
			Destination: &x.project,
		},
		&cli.StringFlag{
			Name:        "repo",
			Aliases:     []string{"r"},
			Usage:       "Repository URL or local path (default: .)",
			Category:    "Query",
			Destination: &x.repo,
		},
		&cli.StringFlag{
			Name:        "webhook-id",
			Aliases:     []string{"status-badge-id"},
			Usage:       "Status badge (webhook) ID of the project",
			Category:    "Query",
			Destination: &x.webhookID,
		},
		&cli.BoolFlag{
			Name:        "wait",
			Aliases:     []string{"w"},
			Usage:       "Wait until the build is no longer queued or running",
			Category:    "Query",
			Destination: &x.wait,
		},
		&cli.DurationFlag{
			Name:        "wait-timeout",
			Aliases:     []string{"W"},
			Usage:       "Wait like --wait, giving up after this long (e.g. 10m)",
			Category:    "Query",
			Destination: &x.waitTimeout,
		},
	}
}

// StatusOptions builds the query options. verbosity is the number of verbose flags minus the number
// of quiet flags.
func (x *Query) StatusOptions(token types.AppVeyorToken, verbosity int) (model.StatusOptions, error) {
	opts := model.StatusOptions{
		Branch:        x.branch,
		CurrentBranch: x.currentBranch,
		Commit:        x.commit,
		Repo:          x.repo,
		WebhookID:     x.webhookID,
		Token:         token,
		Verbosity:     verbosity,
	}

	if x.project != "" {
		project, err := model.ParseProject(x.project)
		if err != nil {
			return model.StatusOptions{}, err
		}
		opts.Project = project
	}

	switch {
	case x.waitTimeout < 0:
		return model.StatusOptions{}, goerr.New("wait timeout must not be negative",
			goerr.V("wait_timeout", x.waitTimeout),
			goerr.T(types.ErrTagConfiguration),
		)
	case x.waitTimeout > 0:
		opts.Wait = x.waitTimeout
	case x.wait:
		opts.Wait = model.WaitForever
	}

	return opts, nil
}

func (x Query) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("branch", x.branch),
		slog.Bool("currentBranch", x.currentBranch),
		slog.String("commit", x.commit),
		slog.String("project", x.project),
		slog.String("repo", x.repo),
		slog.String("webhookID", x.webhookID),
		slog.Bool("wait", x.wait),
		slog.Duration("waitTimeout", x.waitTimeout),
	)
}

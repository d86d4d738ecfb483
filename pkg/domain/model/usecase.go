package model

import (
	"log/slog"
	"math"
	"time"

	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
)

// WaitForever makes a status query poll without a deadline.
const WaitForever = time.Duration(math.MaxInt64)

// StatusOptions configures a status query. Project, Repo, WebhookID and StatusBadgeID are mutually
// exclusive; Repo defaults to "." when none is given.
type StatusOptions struct {
	// Branch restricts the query to builds of this branch.
	Branch string
	// CurrentBranch uses the branch checked out in the working copy.
	CurrentBranch bool
	// Commit is a commit hash or any revision git can resolve. The build found must be for it.
	Commit string

	Project       *Project
	Repo          string
	WebhookID     string
	StatusBadgeID string

	Token     types.AppVeyorToken `masq:"secret"`
	Verbosity int
	// Wait polls while the build is pending, up to this long in total. Zero disables polling.
	Wait time.Duration
}

func (x StatusOptions) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("branch", x.Branch),
		slog.Bool("current_branch", x.CurrentBranch),
		slog.String("commit", x.Commit),
		slog.String("repo", x.Repo),
		slog.String("webhook_id", x.WebhookID),
		slog.String("status_badge_id", x.StatusBadgeID),
		slog.Int("token.len", len(x.Token)),
		slog.Int("verbosity", x.Verbosity),
		slog.Duration("wait", x.Wait),
	}
	if x.Project != nil {
		attrs = append(attrs, slog.String("project", x.Project.String()))
	}
	return slog.GroupValue(attrs...)
}

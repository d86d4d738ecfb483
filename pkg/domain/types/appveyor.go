package types

import "log/slog"

type (
	AppVeyorToken  string
	BuildStatus    string
	RepositoryType string
)

const (
	BuildStatusQueued     BuildStatus = "queued"
	BuildStatusStarting   BuildStatus = "starting"
	BuildStatusRunning    BuildStatus = "running"
	BuildStatusCancelling BuildStatus = "cancelling"
	BuildStatusCancelled  BuildStatus = "cancelled"
	BuildStatusSuccess    BuildStatus = "success"
	BuildStatusFailed     BuildStatus = "failed"
)

// BuildStatuses is the set of status words AppVeyor reports, in no particular order.
var BuildStatuses = []BuildStatus{
	BuildStatusQueued,
	BuildStatusStarting,
	BuildStatusRunning,
	BuildStatusCancelling,
	BuildStatusCancelled,
	BuildStatusSuccess,
	BuildStatusFailed,
}

// IsPending reports whether a build in this status is still expected to change without new activity.
func (x BuildStatus) IsPending() bool {
	switch x {
	case BuildStatusQueued, BuildStatusRunning, BuildStatusCancelling:
		return true
	}
	return false
}

func (x BuildStatus) String() string {
	return string(x)
}

const (
	RepositoryTypeGitHub    RepositoryType = "gitHub"
	RepositoryTypeBitBucket RepositoryType = "bitBucket"
	RepositoryTypeGitLab    RepositoryType = "gitLab"
	RepositoryTypeVSO       RepositoryType = "vso"
	// RepositoryTypeGit is any other git host. The repository name is then the full remote URL.
	RepositoryTypeGit RepositoryType = "git"
)

func (x AppVeyorToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x AppVeyorToken) String() string {
	return "***********"
}

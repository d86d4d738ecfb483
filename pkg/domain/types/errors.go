package types

import "github.com/m-mizutani/goerr/v2"

// Error kinds. Every error returned by this module carries at most one of these tags.
var (
	ErrTagConfiguration    = goerr.NewTag("configuration")
	ErrTagAmbiguousProject = goerr.NewTag("ambiguous_project")
	ErrTagCommitMismatch   = goerr.NewTag("commit_mismatch")
	ErrTagTransport        = goerr.NewTag("transport")
	ErrTagGit              = goerr.NewTag("git")
	ErrTagBuildFailed      = goerr.NewTag("build_failed")
)

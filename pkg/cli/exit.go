package cli

import (
	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	ExitSuccess        = 0
	ExitFailure        = 1
	ExitBuildFailed    = 2
	ExitCommitMismatch = 3
	ExitInvalidArgs    = 4
)

// ExitCode maps an error returned by Run to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case goerr.HasTag(err, types.ErrTagBuildFailed):
		return ExitBuildFailed
	case goerr.HasTag(err, types.ErrTagCommitMismatch):
		return ExitCommitMismatch
	case goerr.HasTag(err, types.ErrTagConfiguration):
		return ExitInvalidArgs
	}
	return ExitFailure
}

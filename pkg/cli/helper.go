package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/appveyor-status/pkg/domain/model"
	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

var (
	colorSuccess = color.New(color.FgGreen, color.Bold)
	colorFailure = color.New(color.FgRed, color.Bold)
	colorPending = color.New(color.FgYellow, color.Bold)
	colorError   = color.New(color.FgRed)
)

func statusColor(status types.BuildStatus) *color.Color {
	switch {
	case status == types.BuildStatusSuccess:
		return colorSuccess
	case status.IsPending(), status == types.BuildStatusStarting:
		return colorPending
	}
	return colorFailure
}

func printStatus(w io.Writer, status types.BuildStatus) {
	fmt.Fprintf(w, "AppVeyor build status: %s\n", statusColor(status).Sprint(status))
}

// statusError turns any status but success into an error carrying the build failure tag.
func statusError(status types.BuildStatus) error {
	if status == types.BuildStatusSuccess {
		return nil
	}
	return goerr.New("last build did not succeed",
		goerr.V("status", status),
		goerr.T(types.ErrTagBuildFailed),
	)
}

func printError(w io.Writer, err error) {
	msg := err.Error()

	if mismatch, ok := model.CommitMismatchOf(err); ok {
		msg = fmt.Sprintf("last build commit %s does not match %s", mismatch.Actual, mismatch.Expected)
		if mismatch.Build != nil {
			msg += fmt.Sprintf(" (build %s of %s)", mismatch.Build.Build.Version, mismatch.Build.Project.String())
		}
	} else if candidates, ok := model.AmbiguousCandidates(err); ok {
		msg = "multiple AppVeyor projects match the repository, select one with --project: " +
			strings.Join(candidates, ", ")
	}

	fmt.Fprintln(w, colorError.Sprint("Error: "+msg))
}

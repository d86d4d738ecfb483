package types_test

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestBuildStatusIsPending(t *testing.T) {
	pending := map[types.BuildStatus]bool{
		types.BuildStatusQueued:     true,
		types.BuildStatusRunning:    true,
		types.BuildStatusCancelling: true,
		types.BuildStatusStarting:   false,
		types.BuildStatusCancelled:  false,
		types.BuildStatusSuccess:    false,
		types.BuildStatusFailed:     false,
		types.BuildStatus("other"):  false,
	}

	for status, expected := range pending {
		t.Run(string(status), func(t *testing.T) {
			gt.V(t, status.IsPending()).Equal(expected)
		})
	}
}

func TestAppVeyorTokenIsMasked(t *testing.T) {
	token := types.AppVeyorToken("v2.secret-token")

	gt.V(t, fmt.Sprint(token)).Equal("***********")
	gt.V(t, token.LogValue().Kind()).Equal(slog.KindString)
	gt.V(t, token.LogValue().String()).Equal("***********")
}

func TestErrorKindTagsSurviveWrapping(t *testing.T) {
	inner := goerr.New("no upstream", goerr.T(types.ErrTagGit))

	gt.True(t, goerr.HasTag(inner, types.ErrTagGit))
	gt.True(t, goerr.HasTag(goerr.Wrap(inner, "outer"), types.ErrTagGit))
	gt.True(t, goerr.HasTag(fmt.Errorf("std wrap: %w", inner), types.ErrTagGit))
	gt.False(t, goerr.HasTag(inner, types.ErrTagTransport))

	outer := goerr.Wrap(fmt.Errorf("std wrap: %w", inner), "request failed", goerr.T(types.ErrTagTransport))
	gt.True(t, goerr.HasTag(outer, types.ErrTagTransport))
	gt.True(t, goerr.HasTag(outer, types.ErrTagGit))
	gt.False(t, goerr.HasTag(nil, types.ErrTagGit))
}

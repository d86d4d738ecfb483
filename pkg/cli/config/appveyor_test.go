package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/appveyor-status/pkg/cli/config"
	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"
)

func parseAppVeyor(t *testing.T, args ...string) *config.AppVeyor {
	t.Helper()
	var av config.AppVeyor
	cmd := &cli.Command{
		Name:   "test",
		Flags:  av.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error { return nil },
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
	return &av
}

func TestAppVeyorToken(t *testing.T) {
	t.Run("token flag", func(t *testing.T) {
		av := parseAppVeyor(t, "-t", "abc")
		gt.V(t, gt.R1(av.Token()).NoError(t)).Equal(types.AppVeyorToken("abc"))
		gt.A(t, av.ClientOptions()).Length(0)
	})

	t.Run("environment variable", func(t *testing.T) {
		t.Setenv("APPVEYOR_API_TOKEN", "from-env")
		av := parseAppVeyor(t)
		gt.V(t, gt.R1(av.Token()).NoError(t)).Equal(types.AppVeyorToken("from-env"))
	})

	t.Run("token file wins", func(t *testing.T) {
		t.Setenv("APPVEYOR_API_TOKEN", "from-env")
		path := filepath.Join(t.TempDir(), "token")
		gt.NoError(t, os.WriteFile(path, []byte("from-file\n"), 0600))

		av := parseAppVeyor(t, "-T", path)
		gt.V(t, gt.R1(av.Token()).NoError(t)).Equal(types.AppVeyorToken("from-file"))
	})

	t.Run("missing token file", func(t *testing.T) {
		av := parseAppVeyor(t, "--token-file", filepath.Join(t.TempDir(), "nope"))
		_, err := av.Token()
		gt.True(t, goerr.HasTag(err, types.ErrTagConfiguration))
	})

	t.Run("empty token file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "token")
		gt.NoError(t, os.WriteFile(path, []byte(" \n"), 0600))
		_, err := parseAppVeyor(t, "-T", path).Token()
		gt.True(t, goerr.HasTag(err, types.ErrTagConfiguration))
	})

	t.Run("base URL", func(t *testing.T) {
		av := parseAppVeyor(t, "--appveyor-url", "http://localhost:8080")
		gt.A(t, av.ClientOptions()).Length(1)
	})
}

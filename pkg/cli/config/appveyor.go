package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/appveyor-status/pkg/infra"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type AppVeyor struct {
	token     types.AppVeyorToken `masq:"secret"`
	tokenFile string
	baseURL   string
}

func (x *AppVeyor) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "token",
			Aliases:     []string{"t"},
			Usage:       "AppVeyor API access token",
			Category:    "AppVeyor",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("APPVEYOR_API_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "token-file",
			Aliases:     []string{"T"},
			Usage:       "File containing the AppVeyor API access token",
			Category:    "AppVeyor",
			Destination: &x.tokenFile,
		},
		&cli.StringFlag{
			Name:        "appveyor-url",
			Usage:       "AppVeyor API base URL",
			Category:    "AppVeyor",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("APPVEYOR_API_URL"),
		},
	}
}

// Token returns the token read from the token file when one is given, otherwise the token flag or
// environment variable.
func (x *AppVeyor) Token() (types.AppVeyorToken, error) {
	if x.tokenFile == "" {
		return x.token, nil
	}

	raw, err := os.ReadFile(filepath.Clean(x.tokenFile))
	if err != nil {
		return "", goerr.Wrap(err, "failed to read token file",
			goerr.V("path", x.tokenFile),
			goerr.T(types.ErrTagConfiguration),
		)
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", goerr.New("token file is empty",
			goerr.V("path", x.tokenFile),
			goerr.T(types.ErrTagConfiguration),
		)
	}
	return types.AppVeyorToken(token), nil
}

// ClientOptions returns the client options derived from flags.
func (x *AppVeyor) ClientOptions() []infra.Option {
	var opts []infra.Option
	if x.baseURL != "" {
		opts = append(opts, infra.WithBaseURL(x.baseURL))
	}
	return opts
}

func (x AppVeyor) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.String("tokenFile", x.tokenFile),
		slog.String("baseURL", x.baseURL),
	)
}

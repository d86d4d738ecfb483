package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/appveyor-status/pkg/cli/config"
	"github.com/m-mizutani/appveyor-status/pkg/domain/interfaces"
	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/appveyor-status/pkg/infra"
	"github.com/m-mizutani/appveyor-status/pkg/usecase"
	"github.com/m-mizutani/appveyor-status/pkg/utils/errutil"
	"github.com/m-mizutani/appveyor-status/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

const (
	defaultLogLevel = "warn"
	version         = "0.1.0"
)

func init() {
	// -v counts verbosity
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

type CLI struct {
	clientOptions []infra.Option
	useCase       interfaces.UseCase
	stdout        io.Writer
	stderr        io.Writer
}

type Option func(*CLI)

// WithClientOptions adds options applied to the clients of every query, after those derived from
// flags.
func WithClientOptions(options ...infra.Option) Option {
	return func(x *CLI) {
		x.clientOptions = append(x.clientOptions, options...)
	}
}

// WithUseCase replaces the status queries run by the command. Client options are ignored then.
func WithUseCase(uc interfaces.UseCase) Option {
	return func(x *CLI) {
		x.useCase = uc
	}
}

func WithWriter(stdout, stderr io.Writer) Option {
	return func(x *CLI) {
		x.stdout = stdout
		x.stderr = stderr
	}
}

func New(options ...Option) *CLI {
	x := &CLI{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
		verbose   int
		quiet     int
		noColor   bool

		appveyor config.AppVeyor
		query    config.Query
		sentry   config.Sentry
	)

	app := &cli.Command{
		Name:      "appveyor-status",
		Usage:     "Report the status of the last AppVeyor build of a project or repository",
		Version:   version,
		Writer:    x.stdout,
		ErrWriter: x.stderr,
		Flags: slice.Flatten([]cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Print more output, repeat for more",
				Config:  cli.BoolConfig{Count: &verbose},
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Print less output, repeat for less",
				Config:  cli.BoolConfig{Count: &quiet},
			},
			&cli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColor,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error], overrides -v and -q",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("APPVEYOR_STATUS_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       defaultLogLevel,
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("APPVEYOR_STATUS_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("APPVEYOR_STATUS_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "stderr",
			},
		}, query.Flags(), appveyor.Flags(), sentry.Flags()),

		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level := logLevel
			if !c.IsSet("log-level") {
				level = logging.ShiftLevel(defaultLogLevel, quiet-verbose)
			}
			if err := ConfigureLogging(logFormat, level, logOutput); err != nil {
				return ctx, err
			}
			if noColor {
				color.NoColor = true
			}

			ctx = logging.With(ctx, logging.Default())
			if err := sentry.Configure(ctx); err != nil {
				return ctx, err
			}
			return ctx, nil
		},

		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Present() {
				return goerr.New("unexpected arguments",
					goerr.V("args", c.Args().Slice()),
					goerr.T(types.ErrTagConfiguration),
				)
			}

			token, err := appveyor.Token()
			if err != nil {
				return err
			}
			opts, err := query.StatusOptions(token, verbose-quiet)
			if err != nil {
				return err
			}

			logging.From(ctx).Debug("starting query",
				slog.Any("query", query),
				slog.Any("appveyor", appveyor),
				slog.Any("sentry", &sentry),
			)

			uc := x.useCase
			if uc == nil {
				clientOptions := append(appveyor.ClientOptions(), x.clientOptions...)
				uc = usecase.New(infra.New(clientOptions...))
			}

			status, err := uc.GetStatus(ctx, opts)
			if err != nil {
				return err
			}

			if verbose-quiet >= 0 {
				printStatus(x.stdout, status)
			}
			return statusError(status)
		},

		OnUsageError: func(ctx context.Context, c *cli.Command, err error, isSubcommand bool) error {
			return goerr.Wrap(err, "invalid arguments", goerr.T(types.ErrTagConfiguration))
		},
		ExitErrHandler: func(ctx context.Context, c *cli.Command, err error) {},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		reportError(x.stderr, err)
		return err
	}

	return nil
}

// reportError tells the user why the run failed. A failed build is not an error of this program and
// is reported only by the status line and exit code.
func reportError(w io.Writer, err error) {
	ctx := logging.With(context.Background(), logging.Default())

	switch {
	case goerr.HasTag(err, types.ErrTagBuildFailed):
		return
	case goerr.HasTag(err, types.ErrTagConfiguration),
		goerr.HasTag(err, types.ErrTagCommitMismatch),
		goerr.HasTag(err, types.ErrTagAmbiguousProject):
		printError(w, err)
		logging.From(ctx).Debug("query failed", "error", err)
	default:
		printError(w, err)
		errutil.HandleError(ctx, "fatal error", err)
	}
}

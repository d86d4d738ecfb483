package infra

import (
	"github.com/m-mizutani/appveyor-status/pkg/domain/interfaces"
	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/appveyor-status/pkg/infra/appveyor"
	"github.com/m-mizutani/appveyor-status/pkg/infra/git"
	"github.com/m-mizutani/appveyor-status/pkg/retry"
)

// Clients holds the collaborators of a status query. AppVeyor is nil unless injected; the query
// then builds its own client from the query options.
type Clients struct {
	appveyor   interfaces.AppVeyor
	git        interfaces.Git
	httpClient interfaces.HTTPClient
	clock      retry.Clock
	baseURL    string
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		git:     git.New(),
		clock:   retry.SystemClock{},
		baseURL: appveyor.DefaultBaseURL,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) AppVeyor() interfaces.AppVeyor {
	return x.appveyor
}
func (x *Clients) Git() interfaces.Git {
	return x.git
}
func (x *Clients) HTTPClient() interfaces.HTTPClient {
	return x.httpClient
}
func (x *Clients) Clock() retry.Clock {
	return x.clock
}
func (x *Clients) BaseURL() string {
	return x.baseURL
}

// NewAppVeyor returns a client authenticated with token that sends requests through the injected
// HTTP client, if any. The caller must Close it.
func (x *Clients) NewAppVeyor(token types.AppVeyorToken) *appveyor.Client {
	opts := []appveyor.Option{
		appveyor.WithBaseURL(x.baseURL),
	}
	if token != "" {
		opts = append(opts, appveyor.WithToken(token))
	}
	if x.httpClient != nil {
		opts = append(opts, appveyor.WithHTTPClient(x.httpClient))
	}
	return appveyor.New(opts...)
}

// WithAppVeyor injects an API client. It is used as is and never closed.
func WithAppVeyor(client interfaces.AppVeyor) Option {
	return func(x *Clients) {
		x.appveyor = client
	}
}

func WithGit(client interfaces.Git) Option {
	return func(x *Clients) {
		x.git = client
	}
}

// WithHTTPClient makes AppVeyor clients built per query share httpClient.
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}

func WithClock(clock retry.Clock) Option {
	return func(x *Clients) {
		x.clock = clock
	}
}

func WithBaseURL(baseURL string) Option {
	return func(x *Clients) {
		x.baseURL = baseURL
	}
}

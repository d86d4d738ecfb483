package appveyor

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/m-mizutani/appveyor-status/pkg/domain/interfaces"
	"github.com/m-mizutani/appveyor-status/pkg/domain/model"
	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/appveyor-status/pkg/utils/logging"
	"github.com/m-mizutani/appveyor-status/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

const DefaultBaseURL = "https://ci.appveyor.com/api"

// maxErrorBody limits how much of an error response is kept in the error.
const maxErrorBody = 4096

type Client struct {
	baseURL    string
	token      types.AppVeyorToken
	httpClient interfaces.HTTPClient
	// transport is set only when the client created its own connection pool.
	transport *http.Transport
}

var _ interfaces.AppVeyor = (*Client)(nil)

type Option func(*Client)

func WithToken(token types.AppVeyorToken) Option {
	return func(x *Client) {
		x.token = token
	}
}

func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient makes the client send requests with httpClient. The client does not close it.
func WithHTTPClient(httpClient interfaces.HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = httpClient
	}
}

func New(options ...Option) *Client {
	client := &Client{
		baseURL: DefaultBaseURL,
	}
	for _, opt := range options {
		opt(client)
	}

	if client.httpClient == nil {
		client.transport = http.DefaultTransport.(*http.Transport).Clone()
		client.httpClient = &http.Client{Transport: client.transport}
	}

	return client
}

// Close releases the connection pool created by New. A client given by WithHTTPClient is left open.
func (x *Client) Close() {
	if x.transport != nil {
		x.transport.CloseIdleConnections()
	}
}

func (x *Client) endpoint(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return x.baseURL + "/" + strings.Join(escaped, "/")
}

func (x *Client) get(ctx context.Context, endpoint, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request",
			goerr.V("url", endpoint),
			goerr.T(types.ErrTagTransport),
		)
	}
	req.Header.Set("Accept", accept)
	if x.token != "" {
		req.Header.Set("Authorization", "Bearer "+string(x.token))
	}

	logging.From(ctx).Debug("sending AppVeyor request", slog.String("url", endpoint))

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to send request to AppVeyor",
			goerr.V("url", endpoint),
			goerr.T(types.ErrTagTransport),
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer safe.Close(resp.Body)
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, goerr.New("AppVeyor returned an error response",
			goerr.V("status", resp.StatusCode),
			goerr.V("url", endpoint),
			goerr.V("body", string(body)),
			goerr.T(types.ErrTagTransport),
		)
	}

	return resp, nil
}

func mediaType(resp *http.Response) string {
	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return strings.ToLower(mt)
}

func (x *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	resp, err := x.get(ctx, endpoint, "application/json")
	if err != nil {
		return err
	}
	defer safe.Close(resp.Body)

	if mt := mediaType(resp); mt != "application/json" && !strings.HasSuffix(mt, "+json") {
		return goerr.New("AppVeyor response is not JSON",
			goerr.V("content_type", resp.Header.Get("Content-Type")),
			goerr.V("url", endpoint),
			goerr.T(types.ErrTagTransport),
		)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode AppVeyor response",
			goerr.V("url", endpoint),
			goerr.T(types.ErrTagTransport),
		)
	}
	return nil
}

// ListProjects returns every project of the account the token belongs to, each with its most
// recent build.
func (x *Client) ListProjects(ctx context.Context) ([]*model.Project, error) {
	var projects []*model.Project
	if err := x.getJSON(ctx, x.endpoint("projects"), &projects); err != nil {
		return nil, err
	}

	logging.From(ctx).Debug("listed AppVeyor projects", slog.Int("count", len(projects)))
	return projects, nil
}

func (x *Client) GetProjectLastBuild(ctx context.Context, project *model.Project, branch string) (*model.ProjectBuild, error) {
	if project == nil {
		return nil, goerr.New("project is required", goerr.T(types.ErrTagConfiguration))
	}
	if err := project.Validate(); err != nil {
		return nil, err
	}

	segments := []string{"projects", project.AccountName, project.Slug}
	if branch != "" {
		segments = append(segments, "branch", branch)
	}

	var result model.ProjectBuild
	if err := x.getJSON(ctx, x.endpoint(segments...), &result); err != nil {
		return nil, err
	}

	logging.From(ctx).Debug("fetched last build",
		slog.String("project", project.String()),
		slog.String("branch", branch),
		slog.String("status", result.Build.Status.String()),
		slog.String("commit", result.Build.CommitID),
	)
	return &result, nil
}

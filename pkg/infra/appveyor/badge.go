package appveyor

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/appveyor-status/pkg/domain/model"
	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/appveyor-status/pkg/utils/logging"
	"github.com/m-mizutani/appveyor-status/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
)

const svgMediaType = "image/svg+xml"

// maxBadgeSize bounds the badge image read into memory.
const maxBadgeSize = 1 << 20

var ptnBadgeStatus = regexp.MustCompile(`\b(` + strings.Join(slice.Map(types.BuildStatuses, func(s types.BuildStatus) string {
	return regexp.QuoteMeta(string(s))
}), "|") + `)\b`)

// BadgeToStatus finds the build status word in a badge image. Exactly one distinct status word must
// appear.
func BadgeToStatus(svg []byte) (types.BuildStatus, error) {
	found := map[string]struct{}{}
	var status string
	for _, m := range ptnBadgeStatus.FindAllSubmatch(svg, -1) {
		status = string(m[1])
		found[status] = struct{}{}
	}

	switch len(found) {
	case 0:
		return "", goerr.New("no build status found in badge", goerr.T(types.ErrTagTransport))
	case 1:
		return types.BuildStatus(status), nil
	}

	words := make([]string, 0, len(found))
	for w := range found {
		words = append(words, w)
	}
	return "", goerr.New("multiple build statuses found in badge",
		goerr.V("statuses", words),
		goerr.T(types.ErrTagTransport),
	)
}

func (x *Client) badgeEndpoint(req *model.BadgeRequest) (string, error) {
	segments := []string{"projects", "status"}

	switch {
	case req.BadgeID != "" && req.Repo != nil:
		return "", goerr.New("badge id and repository are mutually exclusive", goerr.T(types.ErrTagConfiguration))
	case req.BadgeID != "":
		segments = append(segments, req.BadgeID)
	case req.Repo != nil:
		segments = append(segments, req.Repo.Provider, req.Repo.AccountName, req.Repo.Slug)
	default:
		return "", goerr.New("badge id or repository is required", goerr.T(types.ErrTagConfiguration))
	}

	if req.Branch != "" {
		segments = append(segments, "branch", req.Branch)
	}

	return x.endpoint(segments...) + "?svg=true", nil
}

func (x *Client) GetStatusBadge(ctx context.Context, req *model.BadgeRequest) (*model.StatusBadge, error) {
	if req == nil {
		return nil, goerr.New("badge request is required", goerr.T(types.ErrTagConfiguration))
	}

	endpoint, err := x.badgeEndpoint(req)
	if err != nil {
		return nil, err
	}

	resp, err := x.get(ctx, endpoint, svgMediaType)
	if err != nil {
		return nil, err
	}
	defer safe.Close(resp.Body)

	contentType := resp.Header.Get("Content-Type")
	if mediaType(resp) != svgMediaType {
		return nil, goerr.New("status badge is not an SVG image",
			goerr.V("content_type", contentType),
			goerr.V("url", endpoint),
			goerr.T(types.ErrTagTransport),
		)
	}

	image, err := io.ReadAll(io.LimitReader(resp.Body, maxBadgeSize))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read status badge",
			goerr.V("url", endpoint),
			goerr.T(types.ErrTagTransport),
		)
	}

	status, err := BadgeToStatus(image)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read build status from badge", goerr.V("url", endpoint))
	}

	logging.From(ctx).Debug("fetched status badge",
		slog.String("url", endpoint),
		slog.String("status", status.String()),
	)

	return &model.StatusBadge{
		Image:       image,
		ContentType: contentType,
		Status:      status,
	}, nil
}

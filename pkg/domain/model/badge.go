package model

import "github.com/m-mizutani/appveyor-status/pkg/domain/types"

// BadgeRequest selects a status badge by repository or by badge (webhook) id.
type BadgeRequest struct {
	Repo    *BadgeParams
	BadgeID string
	Branch  string
}

type StatusBadge struct {
	Image       []byte
	ContentType string
	Status      types.BuildStatus
}

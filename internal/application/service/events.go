package service

import (
	"context"

	"github.com/google/uuid"
)

// PortfolioEvent is published after every successful entity write so the
// worker can rebuild the cached public view.
type PortfolioEvent struct {
	OwnerID uuid.UUID `json:"owner_id"`
	Entity  string    `json:"entity"`
	Action  string    `json:"action"`
}

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

type EventPublisher interface {
	PublishPortfolioEvent(ctx context.Context, ev PortfolioEvent) error
}

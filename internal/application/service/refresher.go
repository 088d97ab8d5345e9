package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"devfolio/pkg/logger"
)

// ViewRefresher is the editors' hook back into the aggregation side: after
// a successful write it drops the cached public view and announces the
// change on the event bus so the worker re-primes the cache. Both effects
// are advisory; a failure is logged and never surfaced to the editor.
type ViewRefresher struct {
	cache  ViewCache
	events EventPublisher
	logger logger.Logger
}

func NewViewRefresher(cache ViewCache, events EventPublisher, log logger.Logger) *ViewRefresher {
	return &ViewRefresher{cache: cache, events: events, logger: log}
}

func (r *ViewRefresher) EntityChanged(ctx context.Context, ownerID uuid.UUID, entity, action string) {
	if r == nil {
		return
	}

	if r.cache != nil {
		if err := r.cache.InvalidatePublicView(ctx); err != nil {
			r.logger.Warn("Failed to invalidate portfolio view cache",
				zap.String("entity", entity), zap.Error(err))
		}
	}

	if r.events != nil {
		ev := PortfolioEvent{OwnerID: ownerID, Entity: entity, Action: action}
		if err := r.events.PublishPortfolioEvent(ctx, ev); err != nil {
			r.logger.Warn("Failed to publish portfolio event",
				zap.String("entity", entity), zap.String("action", action), zap.Error(err))
		}
	}
}

package service

import (
	"context"
	"time"

	"devfolio/internal/domain/portfolio"
)

// ViewCache holds the assembled public portfolio view. A miss returns
// (nil, nil); the cache is advisory and callers fall through to the
// repositories on any error.
type ViewCache interface {
	GetPublicView(ctx context.Context) (*portfolio.View, error)
	SetPublicView(ctx context.Context, v *portfolio.View, ttl time.Duration) error
	InvalidatePublicView(ctx context.Context) error
}

// TokenDenylist records signed-out token IDs until their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

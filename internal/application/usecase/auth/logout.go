package auth

import (
	"context"
	"time"

	"devfolio/internal/application/service"
	"devfolio/pkg/auth"
)

type LogoutUseCase struct {
	denylist service.TokenDenylist
}

func NewLogoutUseCase(denylist service.TokenDenylist) *LogoutUseCase {
	return &LogoutUseCase{denylist: denylist}
}

// Execute revokes the presented token until its natural expiry. Tokens
// carry a jti exactly for this.
func (uc *LogoutUseCase) Execute(ctx context.Context, claims *auth.CustomClaims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	return uc.denylist.Revoke(ctx, claims.ID, ttl)
}

package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Profile is the single row describing the owner. Its OwnerID doubles as
// the owner reference every other entity points at; the row is created by
// upsert the first time the owner saves the profile tab.
type Profile struct {
	OwnerID     uuid.UUID `json:"owner_id"`
	FullName    *string   `json:"full_name"`
	Title       *string   `json:"title"`
	Bio         *string   `json:"bio"`
	AvatarURL   *string   `json:"avatar_url"`
	Phone       *string   `json:"phone"`
	Location    *string   `json:"location"`
	GitHubURL   *string   `json:"github_url"`
	LinkedInURL *string   `json:"linkedin_url"`
	Email       *string   `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Repository interface {
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*Profile, error)
	// GetFirst resolves the owner shown on the public page. Stand-in for
	// slug-based routing: the deployment has a single owner.
	GetFirst(ctx context.Context) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
}

package interest

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Interest struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
}

var ErrInterestNotFound = errors.New("interest not found")

func (i *Interest) Validate() error {
	if i.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, i *Interest) error
	Update(ctx context.Context, i *Interest) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Interest, error)
	// ListByOwner returns interests ordered by creation time, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Interest, error)
}

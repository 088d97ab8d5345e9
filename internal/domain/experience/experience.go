package experience

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Experience struct {
	ID           uuid.UUID  `json:"id"`
	OwnerID      uuid.UUID  `json:"owner_id"`
	Title        string     `json:"title"`
	Company      string     `json:"company"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Description  *string    `json:"description"`
	Technologies []string   `json:"technologies"`
	CreatedAt    time.Time  `json:"created_at"`
}

var ErrExperienceNotFound = errors.New("experience entry not found")

func (e *Experience) Validate() error {
	if e.Title == "" {
		return errors.New("title is required")
	}
	if e.Company == "" {
		return errors.New("company is required")
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, e *Experience) error
	Update(ctx context.Context, e *Experience) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Experience, error)
	// ListByOwner returns entries ordered by start date, most recent first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Experience, error)
}

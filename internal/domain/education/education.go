package education

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Education struct {
	ID           uuid.UUID  `json:"id"`
	OwnerID      uuid.UUID  `json:"owner_id"`
	Degree       string     `json:"degree"`
	Institution  string     `json:"institution"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Description  *string    `json:"description"`
	GPA          *string    `json:"gpa"`
	Achievements []string   `json:"achievements"`
	CreatedAt    time.Time  `json:"created_at"`
}

var ErrEducationNotFound = errors.New("education entry not found")

func (e *Education) Validate() error {
	if e.Degree == "" {
		return errors.New("degree is required")
	}
	if e.Institution == "" {
		return errors.New("institution is required")
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, e *Education) error
	Update(ctx context.Context, e *Education) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Education, error)
	// ListByOwner returns entries ordered by start date, most recent first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Education, error)
}

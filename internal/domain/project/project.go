package project

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	Technologies []string  `json:"technologies"`
	GitHubURL    *string   `json:"github_url"`
	DemoURL      *string   `json:"demo_url"`
	ImageURL     *string   `json:"image_url"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
}

var ErrProjectNotFound = errors.New("project not found")

func (p *Project) Validate() error {
	if p.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Project, error)
	// ListByOwner returns projects ordered by creation time, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Project, error)
}

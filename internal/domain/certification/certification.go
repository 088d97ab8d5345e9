package certification

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Certification struct {
	ID            uuid.UUID  `json:"id"`
	OwnerID       uuid.UUID  `json:"owner_id"`
	Title         string     `json:"title"`
	Issuer        string     `json:"issuer"`
	IssueDate     *time.Time `json:"issue_date"`
	CredentialURL *string    `json:"credential_url"`
	CreatedAt     time.Time  `json:"created_at"`
}

var ErrCertificationNotFound = errors.New("certification not found")

func (c *Certification) Validate() error {
	if c.Title == "" {
		return errors.New("title is required")
	}
	if c.Issuer == "" {
		return errors.New("issuer is required")
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, c *Certification) error
	Update(ctx context.Context, c *Certification) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Certification, error)
	// ListByOwner returns certifications ordered by issue date, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Certification, error)
}

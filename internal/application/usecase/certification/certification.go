package certification

import (
	"context"
	"time"

	"github.com/google/uuid"

	"devfolio/internal/application/service"
	"devfolio/internal/domain/certification"
	"devfolio/pkg/apperror"
	"devfolio/pkg/logger"
)

type CertificationUseCase struct {
	repo      certification.Repository
	refresher *service.ViewRefresher
	logger    logger.Logger
}

func NewCertificationUseCase(r certification.Repository, refresher *service.ViewRefresher, log logger.Logger) *CertificationUseCase {
	return &CertificationUseCase{repo: r, refresher: refresher, logger: log}
}

type CertificationInput struct {
	OwnerID       uuid.UUID
	Title         string
	Issuer        string
	IssueDate     *time.Time
	CredentialURL *string
}

func (in CertificationInput) toDomain(id uuid.UUID, createdAt time.Time) *certification.Certification {
	return &certification.Certification{
		ID:            id,
		OwnerID:       in.OwnerID,
		Title:         in.Title,
		Issuer:        in.Issuer,
		IssueDate:     in.IssueDate,
		CredentialURL: in.CredentialURL,
		CreatedAt:     createdAt,
	}
}

func (uc *CertificationUseCase) Create(ctx context.Context, in CertificationInput) (*certification.Certification, error) {
	c := in.toDomain(uuid.New(), time.Now().UTC())
	if err := c.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("certification validation failed", err)
	}
	if err := uc.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	uc.refresher.EntityChanged(ctx, in.OwnerID, "certification", service.ActionCreated)
	return c, nil
}

func (uc *CertificationUseCase) Update(ctx context.Context, id uuid.UUID, in CertificationInput) (*certification.Certification, error) {
	existing, err := uc.repo.FindByID(ctx, id, in.OwnerID)
	if err != nil {
		return nil, err
	}

	c := in.toDomain(existing.ID, existing.CreatedAt)
	if err := c.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("certification validation failed", err)
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	uc.refresher.EntityChanged(ctx, in.OwnerID, "certification", service.ActionUpdated)
	return c, nil
}

func (uc *CertificationUseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	uc.refresher.EntityChanged(ctx, ownerID, "certification", service.ActionDeleted)
	return nil
}

func (uc *CertificationUseCase) Get(ctx context.Context, id, ownerID uuid.UUID) (*certification.Certification, error) {
	return uc.repo.FindByID(ctx, id, ownerID)
}

func (uc *CertificationUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]*certification.Certification, error) {
	return uc.repo.ListByOwner(ctx, ownerID)
}

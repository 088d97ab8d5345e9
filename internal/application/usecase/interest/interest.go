package interest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"devfolio/internal/application/service"
	"devfolio/internal/domain/interest"
	"devfolio/pkg/apperror"
	"devfolio/pkg/logger"
)

type InterestUseCase struct {
	repo      interest.Repository
	refresher *service.ViewRefresher
	logger    logger.Logger
}

func NewInterestUseCase(r interest.Repository, refresher *service.ViewRefresher, log logger.Logger) *InterestUseCase {
	return &InterestUseCase{repo: r, refresher: refresher, logger: log}
}

type InterestInput struct {
	OwnerID     uuid.UUID
	Title       string
	Description *string
	Icon        *string
}

func (in InterestInput) toDomain(id uuid.UUID, createdAt time.Time) *interest.Interest {
	return &interest.Interest{
		ID:          id,
		OwnerID:     in.OwnerID,
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		CreatedAt:   createdAt,
	}
}

func (uc *InterestUseCase) Create(ctx context.Context, in InterestInput) (*interest.Interest, error) {
	i := in.toDomain(uuid.New(), time.Now().UTC())
	if err := i.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("interest validation failed", err)
	}
	if err := uc.repo.Save(ctx, i); err != nil {
		return nil, err
	}
	uc.refresher.EntityChanged(ctx, in.OwnerID, "interest", service.ActionCreated)
	return i, nil
}

func (uc *InterestUseCase) Update(ctx context.Context, id uuid.UUID, in InterestInput) (*interest.Interest, error) {
	existing, err := uc.repo.FindByID(ctx, id, in.OwnerID)
	if err != nil {
		return nil, err
	}

	i := in.toDomain(existing.ID, existing.CreatedAt)
	if err := i.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("interest validation failed", err)
	}
	if err := uc.repo.Update(ctx, i); err != nil {
		return nil, err
	}
	uc.refresher.EntityChanged(ctx, in.OwnerID, "interest", service.ActionUpdated)
	return i, nil
}

func (uc *InterestUseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	uc.refresher.EntityChanged(ctx, ownerID, "interest", service.ActionDeleted)
	return nil
}

func (uc *InterestUseCase) Get(ctx context.Context, id, ownerID uuid.UUID) (*interest.Interest, error) {
	return uc.repo.FindByID(ctx, id, ownerID)
}

func (uc *InterestUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]*interest.Interest, error) {
	return uc.repo.ListByOwner(ctx, ownerID)
}

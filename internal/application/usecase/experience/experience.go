package experience

import (
	"context"
	"time"

	"github.com/google/uuid"

	"devfolio/internal/application/service"
	"devfolio/internal/domain/experience"
	"devfolio/pkg/apperror"
	"devfolio/pkg/logger"
)

type ExperienceUseCase struct {
	repo      experience.Repository
	refresher *service.ViewRefresher
	logger    logger.Logger
}

func NewExperienceUseCase(r experience.Repository, refresher *service.ViewRefresher, log logger.Logger) *ExperienceUseCase {
	return &ExperienceUseCase{repo: r, refresher: refresher, logger: log}
}

type ExperienceInput struct {
	OwnerID      uuid.UUID
	Title        string
	Company      string
	StartDate    *time.Time
	EndDate      *time.Time
	Description  *string
	Technologies []string
}

func (in ExperienceInput) toDomain(id uuid.UUID, createdAt time.Time) *experience.Experience {
	technologies := in.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	return &experience.Experience{
		ID:           id,
		OwnerID:      in.OwnerID,
		Title:        in.Title,
		Company:      in.Company,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Description:  in.Description,
		Technologies: technologies,
		CreatedAt:    createdAt,
	}
}

func (uc *ExperienceUseCase) Create(ctx context.Context, in ExperienceInput) (*experience.Experience, error) {
	e := in.toDomain(uuid.New(), time.Now().UTC())
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("experience validation failed", err)
	}
	if err := uc.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	uc.refresher.EntityChanged(ctx, in.OwnerID, "experience", service.ActionCreated)
	return e, nil
}

func (uc *ExperienceUseCase) Update(ctx context.Context, id uuid.UUID, in ExperienceInput) (*experience.Experience, error) {
	existing, err := uc.repo.FindByID(ctx, id, in.OwnerID)
	if err != nil {
		return nil, err
	}

	e := in.toDomain(existing.ID, existing.CreatedAt)
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("experience validation failed", err)
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	uc.refresher.EntityChanged(ctx, in.OwnerID, "experience", service.ActionUpdated)
	return e, nil
}

func (uc *ExperienceUseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	uc.refresher.EntityChanged(ctx, ownerID, "experience", service.ActionDeleted)
	return nil
}

func (uc *ExperienceUseCase) Get(ctx context.Context, id, ownerID uuid.UUID) (*experience.Experience, error) {
	return uc.repo.FindByID(ctx, id, ownerID)
}

func (uc *ExperienceUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]*experience.Experience, error) {
	return uc.repo.ListByOwner(ctx, ownerID)
}

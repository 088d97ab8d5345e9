package education

import (
	"context"
	"time"

	"github.com/google/uuid"

	"devfolio/internal/application/service"
	"devfolio/internal/domain/education"
	"devfolio/pkg/apperror"
	"devfolio/pkg/logger"
)

type EducationUseCase struct {
	repo      education.Repository
	refresher *service.ViewRefresher
	logger    logger.Logger
}

func NewEducationUseCase(r education.Repository, refresher *service.ViewRefresher, log logger.Logger) *EducationUseCase {
	return &EducationUseCase{repo: r, refresher: refresher, logger: log}
}

type EducationInput struct {
	OwnerID      uuid.UUID
	Degree       string
	Institution  string
	StartDate    *time.Time
	EndDate      *time.Time
	Description  *string
	GPA          *string
	Achievements []string
}

func (in EducationInput) toDomain(id uuid.UUID, createdAt time.Time) *education.Education {
	achievements := in.Achievements
	if achievements == nil {
		achievements = []string{}
	}
	return &education.Education{
		ID:           id,
		OwnerID:      in.OwnerID,
		Degree:       in.Degree,
		Institution:  in.Institution,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Description:  in.Description,
		GPA:          in.GPA,
		Achievements: achievements,
		CreatedAt:    createdAt,
	}
}

func (uc *EducationUseCase) Create(ctx context.Context, in EducationInput) (*education.Education, error) {
	e := in.toDomain(uuid.New(), time.Now().UTC())
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("education validation failed", err)
	}
	if err := uc.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	uc.refresher.EntityChanged(ctx, in.OwnerID, "education", service.ActionCreated)
	return e, nil
}

func (uc *EducationUseCase) Update(ctx context.Context, id uuid.UUID, in EducationInput) (*education.Education, error) {
	existing, err := uc.repo.FindByID(ctx, id, in.OwnerID)
	if err != nil {
		return nil, err
	}

	e := in.toDomain(existing.ID, existing.CreatedAt)
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("education validation failed", err)
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	uc.refresher.EntityChanged(ctx, in.OwnerID, "education", service.ActionUpdated)
	return e, nil
}

func (uc *EducationUseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	uc.refresher.EntityChanged(ctx, ownerID, "education", service.ActionDeleted)
	return nil
}

func (uc *EducationUseCase) Get(ctx context.Context, id, ownerID uuid.UUID) (*education.Education, error) {
	return uc.repo.FindByID(ctx, id, ownerID)
}

func (uc *EducationUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]*education.Education, error) {
	return uc.repo.ListByOwner(ctx, ownerID)
}

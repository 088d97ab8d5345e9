package skill

import (
	"context"
	"time"

	"github.com/google/uuid"

	"devfolio/internal/application/service"
	"devfolio/internal/domain/portfolio"
	"devfolio/internal/domain/skill"
	"devfolio/pkg/apperror"
	"devfolio/pkg/logger"
)

type SkillUseCase struct {
	repo      skill.Repository
	refresher *service.ViewRefresher
	logger    logger.Logger
}

func NewSkillUseCase(r skill.Repository, refresher *service.ViewRefresher, log logger.Logger) *SkillUseCase {
	return &SkillUseCase{repo: r, refresher: refresher, logger: log}
}

type SkillInput struct {
	OwnerID  uuid.UUID
	Category string
	Name     string
	Level    int
}

// toDomain clamps out-of-range levels rather than rejecting them: the
// display is a fixed 5-slot indicator.
func (in SkillInput) toDomain(id uuid.UUID, createdAt time.Time) *skill.Skill {
	return &skill.Skill{
		ID:        id,
		OwnerID:   in.OwnerID,
		Category:  in.Category,
		Name:      in.Name,
		Level:     skill.ClampLevel(in.Level),
		CreatedAt: createdAt,
	}
}

func (uc *SkillUseCase) Create(ctx context.Context, in SkillInput) (*skill.Skill, error) {
	s := in.toDomain(uuid.New(), time.Now().UTC())
	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("skill validation failed", err)
	}
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	uc.refresher.EntityChanged(ctx, in.OwnerID, "skill", service.ActionCreated)
	return s, nil
}

func (uc *SkillUseCase) Update(ctx context.Context, id uuid.UUID, in SkillInput) (*skill.Skill, error) {
	existing, err := uc.repo.FindByID(ctx, id, in.OwnerID)
	if err != nil {
		return nil, err
	}

	s := in.toDomain(existing.ID, existing.CreatedAt)
	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("skill validation failed", err)
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	uc.refresher.EntityChanged(ctx, in.OwnerID, "skill", service.ActionUpdated)
	return s, nil
}

func (uc *SkillUseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	uc.refresher.EntityChanged(ctx, ownerID, "skill", service.ActionDeleted)
	return nil
}

func (uc *SkillUseCase) Get(ctx context.Context, id, ownerID uuid.UUID) (*skill.Skill, error) {
	return uc.repo.FindByID(ctx, id, ownerID)
}

func (uc *SkillUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]*skill.Skill, error) {
	return uc.repo.ListByOwner(ctx, ownerID)
}

// ListGrouped reshapes the owner's skills into per-category display groups.
func (uc *SkillUseCase) ListGrouped(ctx context.Context, ownerID uuid.UUID) ([]portfolio.SkillGroup, error) {
	skills, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return portfolio.GroupSkillsByCategory(skills), nil
}

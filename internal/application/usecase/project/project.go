package project

import (
	"context"
	"time"

	"github.com/google/uuid"

	"devfolio/internal/application/service"
	"devfolio/internal/domain/project"
	"devfolio/pkg/apperror"
	"devfolio/pkg/logger"
)

type ProjectUseCase struct {
	repo      project.Repository
	refresher *service.ViewRefresher
	logger    logger.Logger
}

func NewProjectUseCase(r project.Repository, refresher *service.ViewRefresher, log logger.Logger) *ProjectUseCase {
	return &ProjectUseCase{repo: r, refresher: refresher, logger: log}
}

type ProjectInput struct {
	OwnerID      uuid.UUID
	Title        string
	Description  *string
	Technologies []string
	GitHubURL    *string
	DemoURL      *string
	ImageURL     *string
	Featured     bool
}

func (in ProjectInput) toDomain(id uuid.UUID, createdAt time.Time) *project.Project {
	technologies := in.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	return &project.Project{
		ID:           id,
		OwnerID:      in.OwnerID,
		Title:        in.Title,
		Description:  in.Description,
		Technologies: technologies,
		GitHubURL:    in.GitHubURL,
		DemoURL:      in.DemoURL,
		ImageURL:     in.ImageURL,
		Featured:     in.Featured,
		CreatedAt:    createdAt,
	}
}

func (uc *ProjectUseCase) Create(ctx context.Context, in ProjectInput) (*project.Project, error) {
	p := in.toDomain(uuid.New(), time.Now().UTC())
	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("project validation failed", err)
	}
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	uc.refresher.EntityChanged(ctx, in.OwnerID, "project", service.ActionCreated)
	return p, nil
}

func (uc *ProjectUseCase) Update(ctx context.Context, id uuid.UUID, in ProjectInput) (*project.Project, error) {
	existing, err := uc.repo.FindByID(ctx, id, in.OwnerID)
	if err != nil {
		return nil, err
	}

	p := in.toDomain(existing.ID, existing.CreatedAt)
	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("project validation failed", err)
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	uc.refresher.EntityChanged(ctx, in.OwnerID, "project", service.ActionUpdated)
	return p, nil
}

func (uc *ProjectUseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	uc.refresher.EntityChanged(ctx, ownerID, "project", service.ActionDeleted)
	return nil
}

func (uc *ProjectUseCase) Get(ctx context.Context, id, ownerID uuid.UUID) (*project.Project, error) {
	return uc.repo.FindByID(ctx, id, ownerID)
}

func (uc *ProjectUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	return uc.repo.ListByOwner(ctx, ownerID)
}

package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"devfolio/internal/application/service"
	"devfolio/internal/domain/profile"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
	refresher   *service.ViewRefresher
}

func NewProfileUseCase(repo profile.Repository, refresher *service.ViewRefresher) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		refresher:   refresher,
	}
}

type GetProfileInput struct {
	OwnerID uuid.UUID
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.GetByOwnerID(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	return &GetProfileOutput{Profile: p}, nil
}

type UpdateProfileInput struct {
	OwnerID     uuid.UUID
	FullName    *string
	Title       *string
	Bio         *string
	AvatarURL   *string
	Phone       *string
	Location    *string
	GitHubURL   *string
	LinkedInURL *string
	Email       *string
}

type UpdateProfileOutput struct {
	Profile *profile.Profile
}

// ExecuteUpdateProfile upserts the owner's single profile row: the row is
// created implicitly on first save.
func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	p := &profile.Profile{
		OwnerID:     input.OwnerID,
		FullName:    input.FullName,
		Title:       input.Title,
		Bio:         input.Bio,
		AvatarURL:   input.AvatarURL,
		Phone:       input.Phone,
		Location:    input.Location,
		GitHubURL:   input.GitHubURL,
		LinkedInURL: input.LinkedInURL,
		Email:       input.Email,
	}

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("update profile failed: %w", err)
	}

	uc.refresher.EntityChanged(ctx, input.OwnerID, "profile", service.ActionUpdated)

	return &UpdateProfileOutput{Profile: p}, nil
}

package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"devfolio/internal/domain/profile"
	"devfolio/internal/domain/user"
	"devfolio/pkg/apperror"
	"devfolio/pkg/auth"
	"devfolio/pkg/logger"
)

type RegisterUseCase struct {
	userRepo    user.Repository
	profileRepo profile.Repository
	logger      logger.Logger
}

func NewRegisterUseCase(userRepo user.Repository, profileRepo profile.Repository, log logger.Logger) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		logger:      log,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

type RegisterOutput struct {
	User *user.User
}

func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" {
		return nil, apperror.NewInvalidInput("email is required", nil)
	}
	if len(input.Password) < 8 {
		return nil, apperror.NewInvalidInput("password must be at least 8 characters", nil)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	u := &user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if name := strings.TrimSpace(input.FullName); name != "" {
		u.FullName = &name
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		return nil, err
	}

	// Seed the profile row so the dashboard opens on a real (if empty)
	// record; failure here is non-fatal since the profile tab upserts.
	p := &profile.Profile{OwnerID: u.ID, FullName: u.FullName, Email: &u.Email}
	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		uc.logger.Warn("Failed to seed profile for new user", zap.String("user_id", u.ID.String()), zap.Error(err))
	}

	return &RegisterOutput{User: u}, nil
}

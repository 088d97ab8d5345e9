// Package upload pushes owner-supplied images to the media store and hands
// back the URL the profile or project row should point at.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"devfolio/internal/application/service"
	"devfolio/pkg/apperror"
	"devfolio/pkg/logger"
)

// Kinds map to storage folders so avatar and project images stay separated.
const (
	KindAvatar  = "avatar"
	KindProject = "project"
)

type UploadImageUseCase struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewUploadImageUseCase(uploader service.Uploader, log logger.Logger) *UploadImageUseCase {
	return &UploadImageUseCase{uploader: uploader, logger: log}
}

type UploadImageInput struct {
	OwnerID uuid.UUID
	Kind    string
	File    io.Reader
}

type UploadImageOutput struct {
	URL string
}

func (uc *UploadImageUseCase) Execute(ctx context.Context, input UploadImageInput) (*UploadImageOutput, error) {
	if input.Kind != KindAvatar && input.Kind != KindProject {
		return nil, apperror.NewInvalidInput("kind must be 'avatar' or 'project'", errors.New("unknown upload kind"))
	}

	folder := "devfolio/" + input.Kind
	publicID := fmt.Sprintf("%s-%s", input.OwnerID, uuid.NewString())

	url, err := uc.uploader.Upload(ctx, input.File, folder, publicID)
	if err != nil {
		uc.logger.Error("Image upload failed", err, zap.String("kind", input.Kind))
		return nil, apperror.NewInternal("image upload failed", err)
	}

	return &UploadImageOutput{URL: url}, nil
}

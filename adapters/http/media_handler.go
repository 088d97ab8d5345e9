package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	uploadUC "devfolio/internal/application/usecase/upload"
	"devfolio/pkg/apperror"
	"devfolio/pkg/logger"
)

type MediaHandler struct {
	uploadImageUC *uploadUC.UploadImageUseCase
	logger        logger.Logger
}

func NewMediaHandler(uploadUC *uploadUC.UploadImageUseCase, log logger.Logger) *MediaHandler {
	return &MediaHandler{uploadImageUC: uploadUC, logger: log}
}

// UploadImage accepts a multipart form with a 'file' part and a 'kind'
// field ("avatar" or "project") and returns the stored image URL. The
// caller saves the URL onto the profile or project through the normal
// editing endpoints.
func (h *MediaHandler) UploadImage(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'file' is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open file", err))
		return
	}
	defer file.Close()

	input := uploadUC.UploadImageInput{
		OwnerID: ownerID,
		Kind:    c.PostForm("kind"),
		File:    file,
	}

	output, err := h.uploadImageUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": output.URL})
}

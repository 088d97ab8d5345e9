package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	educationUC "devfolio/internal/application/usecase/education"
	"devfolio/pkg/apperror"
	"devfolio/pkg/commalist"
	"devfolio/pkg/logger"
)

type EducationHandler struct {
	educationUseCase *educationUC.EducationUseCase
	logger           logger.Logger
}

func NewEducationHandler(uc *educationUC.EducationUseCase, log logger.Logger) *EducationHandler {
	return &EducationHandler{educationUseCase: uc, logger: log}
}

func (h *EducationHandler) toInput(ownerID uuid.UUID, req EducationRequest) (educationUC.EducationInput, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return educationUC.EducationInput{}, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return educationUC.EducationInput{}, err
	}
	return educationUC.EducationInput{
		OwnerID:      ownerID,
		Degree:       req.Degree,
		Institution:  req.Institution,
		StartDate:    start,
		EndDate:      end,
		Description:  req.Description,
		GPA:          req.GPA,
		Achievements: commalist.Split(req.Achievements),
	}, nil
}

func (h *EducationHandler) Create(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input, err := h.toInput(ownerID, req)
	if err != nil {
		c.Error(err)
		return
	}

	e, err := h.educationUseCase.Create(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToEducationDTO(e))
}

func (h *EducationHandler) List(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	entries, err := h.educationUseCase.List(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]EducationDTO, len(entries))
	for i, e := range entries {
		dtos[i] = ToEducationDTO(e)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *EducationHandler) Get(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid education ID", err))
		return
	}

	e, err := h.educationUseCase.Get(c.Request.Context(), id, ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToEducationDTO(e))
}

func (h *EducationHandler) Update(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid education ID", err))
		return
	}
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input, err := h.toInput(ownerID, req)
	if err != nil {
		c.Error(err)
		return
	}

	e, err := h.educationUseCase.Update(c.Request.Context(), id, input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToEducationDTO(e))
}

func (h *EducationHandler) Delete(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid education ID", err))
		return
	}

	if err := h.educationUseCase.Delete(c.Request.Context(), id, ownerID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

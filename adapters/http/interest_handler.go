package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	interestUC "devfolio/internal/application/usecase/interest"
	"devfolio/pkg/apperror"
	"devfolio/pkg/logger"
)

type InterestHandler struct {
	interestUseCase *interestUC.InterestUseCase
	logger          logger.Logger
}

func NewInterestHandler(uc *interestUC.InterestUseCase, log logger.Logger) *InterestHandler {
	return &InterestHandler{interestUseCase: uc, logger: log}
}

func (h *InterestHandler) Create(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	var req InterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := interestUC.InterestInput{OwnerID: ownerID, Title: req.Title, Description: req.Description, Icon: req.Icon}
	i, err := h.interestUseCase.Create(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToInterestDTO(i))
}

func (h *InterestHandler) List(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	interests, err := h.interestUseCase.List(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]InterestDTO, len(interests))
	for i, in := range interests {
		dtos[i] = ToInterestDTO(in)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *InterestHandler) Get(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid interest ID", err))
		return
	}

	i, err := h.interestUseCase.Get(c.Request.Context(), id, ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToInterestDTO(i))
}

func (h *InterestHandler) Update(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid interest ID", err))
		return
	}
	var req InterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := interestUC.InterestInput{OwnerID: ownerID, Title: req.Title, Description: req.Description, Icon: req.Icon}
	i, err := h.interestUseCase.Update(c.Request.Context(), id, input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToInterestDTO(i))
}

func (h *InterestHandler) Delete(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid interest ID", err))
		return
	}

	if err := h.interestUseCase.Delete(c.Request.Context(), id, ownerID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

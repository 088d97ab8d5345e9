package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	certificationUC "devfolio/internal/application/usecase/certification"
	"devfolio/pkg/apperror"
	"devfolio/pkg/logger"
)

type CertificationHandler struct {
	certificationUseCase *certificationUC.CertificationUseCase
	logger               logger.Logger
}

func NewCertificationHandler(uc *certificationUC.CertificationUseCase, log logger.Logger) *CertificationHandler {
	return &CertificationHandler{certificationUseCase: uc, logger: log}
}

func (h *CertificationHandler) toInput(ownerID uuid.UUID, req CertificationRequest) (certificationUC.CertificationInput, error) {
	issued, err := parseDate(req.IssueDate)
	if err != nil {
		return certificationUC.CertificationInput{}, err
	}
	return certificationUC.CertificationInput{
		OwnerID:       ownerID,
		Title:         req.Title,
		Issuer:        req.Issuer,
		IssueDate:     issued,
		CredentialURL: req.CredentialURL,
	}, nil
}

func (h *CertificationHandler) Create(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	var req CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input, err := h.toInput(ownerID, req)
	if err != nil {
		c.Error(err)
		return
	}

	cert, err := h.certificationUseCase.Create(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToCertificationDTO(cert))
}

func (h *CertificationHandler) List(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	certs, err := h.certificationUseCase.List(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]CertificationDTO, len(certs))
	for i, cert := range certs {
		dtos[i] = ToCertificationDTO(cert)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *CertificationHandler) Get(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid certification ID", err))
		return
	}

	cert, err := h.certificationUseCase.Get(c.Request.Context(), id, ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToCertificationDTO(cert))
}

func (h *CertificationHandler) Update(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid certification ID", err))
		return
	}
	var req CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input, err := h.toInput(ownerID, req)
	if err != nil {
		c.Error(err)
		return
	}

	cert, err := h.certificationUseCase.Update(c.Request.Context(), id, input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToCertificationDTO(cert))
}

func (h *CertificationHandler) Delete(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid certification ID", err))
		return
	}

	if err := h.certificationUseCase.Delete(c.Request.Context(), id, ownerID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portfolioUC "devfolio/internal/application/usecase/portfolio"
	"devfolio/pkg/apperror"
	"devfolio/pkg/logger"
)

type PortfolioHandler struct {
	aggregateUseCase *portfolioUC.AggregateUseCase
	logger           logger.Logger
}

func NewPortfolioHandler(uc *portfolioUC.AggregateUseCase, log logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{aggregateUseCase: uc, logger: log}
}

// GetPublicPortfolio serves the whole public page in one payload. No auth:
// visibility is the point of the page.
func (h *PortfolioHandler) GetPublicPortfolio(c *gin.Context) {
	view, err := h.aggregateUseCase.ExecutePublic(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPortfolioViewDTO(view))
}

// GetDashboardOverview is the signed-in owner's view of their own data,
// assembled the same way but always fresh.
func (h *PortfolioHandler) GetDashboardOverview(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	view, err := h.aggregateUseCase.ExecuteForOwner(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPortfolioViewDTO(view))
}

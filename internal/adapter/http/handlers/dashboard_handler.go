package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "os_pro/internal/adapter/http/dto/response"
	"os_pro/internal/usecase"
	"os_pro/pkg"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetStats answers with the aggregated dashboard metrics. Pure read:
// nothing here ever mutates order state, including the stale-blocked
// detection.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStats(stats))
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "os_pro/internal/adapter/http/dto/request"
	response "os_pro/internal/adapter/http/dto/response"
	"os_pro/internal/usecase"
	"os_pro/pkg"
)

type AdvisoryHandler struct {
	usecase usecase.IAdvisoryUseCase
}

func NewAdvisoryHandler(uc usecase.IAdvisoryUseCase) *AdvisoryHandler {
	return &AdvisoryHandler{usecase: uc}
}

// SummarizeOrder produces the customer-facing summary for a saved
// order. Provider failures come back as the fixed fallback text with a
// 200, never as an error.
func (h *AdvisoryHandler) SummarizeOrder(c *gin.Context) {
	summary, err := h.usecase.SummarizeOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.AdvisoryResponse{Text: summary})
}

func (h *AdvisoryHandler) SuggestFix(c *gin.Context) {
	var payload request.SuggestFixRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_ADVISORY_INPUT", "Invalid advisory payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	suggestion, err := h.usecase.SuggestFix(c.Request.Context(), payload.Problem)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyProblem) {
			appErr := pkg.NewDomainError("ADVISORY_VALIDATION_FAILED", err.Error(), err, http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.AdvisoryResponse{Text: suggestion})
}

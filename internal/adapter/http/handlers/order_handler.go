package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "os_pro/internal/adapter/http/dto/request"
	response "os_pro/internal/adapter/http/dto/response"
	"os_pro/internal/adapter/messaging"
	"os_pro/internal/infrastructure/document"
	"os_pro/internal/usecase"
	"os_pro/internal/usecase/interfaces"
	"os_pro/pkg"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid service order payload", http.StatusBadRequest)

// OrderHandler handles the service-order lifecycle plus the document
// and share hand-offs derived from a saved order.
type OrderHandler struct {
	usecase   usecase.IOrderUseCase
	company   usecase.ICompanyUseCase
	documents interfaces.IDocumentGenerator
}

func NewOrderHandler(uc usecase.IOrderUseCase, company usecase.ICompanyUseCase, documents interfaces.IDocumentGenerator) *OrderHandler {
	return &OrderHandler{usecase: uc, company: company, documents: documents}
}

// SaveOrder commits a draft order. New drafts (no id) receive their
// identity and order number; existing ids are full-record overwrites.
func (h *OrderHandler) SaveOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	draft := payload.ToEntity()
	if id := c.Param("id"); id != "" {
		draft.ID = id
	}

	created := draft.ID == ""
	saved, err := h.usecase.Save(c.Request.Context(), draft)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromOrder(saved))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	os, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(os))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// ShareOrder builds the WhatsApp message and wa.me link for an order.
func (h *OrderHandler) ShareOrder(c *gin.Context) {
	os, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	company, err := h.company.Get(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	text := messaging.BuildShareText(os, company)
	c.JSON(http.StatusOK, response.ShareResponse{Text: text, URL: messaging.ShareURL(text)})
}

// DownloadOrderPDF streams the rendered OS document.
func (h *OrderHandler) DownloadOrderPDF(c *gin.Context) {
	os, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	company, err := h.company.Get(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	payload, err := h.documents.GenerateOrderPDF(os, company)
	if err != nil {
		appErr := pkg.NewDomainError("DOCUMENT_ERROR", "Could not render the order document", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+document.DocumentFileName(os)+`"`)
	c.Data(http.StatusOK, "application/pdf", payload)
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingCustomer),
		errors.Is(err, usecase.ErrUnknownCustomer),
		errors.Is(err, usecase.ErrNoLineItems),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainError("ORDER_VALIDATION_FAILED", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

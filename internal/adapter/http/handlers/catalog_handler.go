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

var errInvalidItemPayload = pkg.NewDomainErrorSimple("INVALID_ITEM_INPUT", "Invalid catalog item payload", http.StatusBadRequest)

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListItems(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogItems(items))
}

func (h *CatalogHandler) GetItem(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogItem(item))
}

func (h *CatalogHandler) CreateItem(c *gin.Context) {
	h.save(c, "", http.StatusCreated)
}

func (h *CatalogHandler) UpdateItem(c *gin.Context) {
	h.save(c, c.Param("id"), http.StatusOK)
}

func (h *CatalogHandler) save(c *gin.Context, id string, okStatus int) {
	var payload request.CatalogItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item := payload.ToEntity()
	if id != "" {
		item.ID = id
	}

	saved, err := h.usecase.Save(c.Request.Context(), item)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(okStatus, response.FromCatalogItem(saved))
}

func (h *CatalogHandler) DeleteItem(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItemID),
		errors.Is(err, usecase.ErrInvalidItemName),
		errors.Is(err, usecase.ErrNegativeItemPrice),
		errors.Is(err, usecase.ErrInvalidItemType):
		return pkg.NewDomainError("ITEM_VALIDATION_FAILED", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCatalogItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"net/http"

	request "servicedesk/internal/adapter/http/dto/request"
	"servicedesk/internal/domain/entities"
	"servicedesk/internal/usecase"
	"servicedesk/internal/usecase/interfaces"
	"servicedesk/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles HTTP requests for the service catalog.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var payload request.CatalogCategoryCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	cat, err := h.usecase.CreateCategory(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	cat, err := h.usecase.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	p := pageParams(c)
	items, count, err := h.usecase.ListCategories(c.Request.Context(), p)
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	respondList(c, count, p, items)
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	var payload request.CatalogCategoryUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	cat, err := h.usecase.UpdateCategory(c.Request.Context(), c.Param("id"), payload.Name, payload.Description, payload.DisplayOrder)
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.usecase.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) CreateItem(c *gin.Context) {
	var payload request.CatalogItemCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	view, err := h.usecase.CreateItem(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *CatalogHandler) GetItem(c *gin.Context) {
	view, err := h.usecase.GetItemByKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CatalogHandler) ListItems(c *gin.Context) {
	query := usecase.CatalogItemListQuery{
		Filter: interfaces.CatalogItemFilter{
			Status:     entities.CatalogItemStatus(c.Query("status")),
			CategoryID: c.Query("category"),
		},
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
		Page:     pageParams(c),
	}

	page, err := h.usecase.ListItems(c.Request.Context(), query)
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	respondList(c, page.Count, query.Page, page.Results)
}

func (h *CatalogHandler) UpdateItem(c *gin.Context) {
	var payload request.CatalogItemUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	view, err := h.usecase.UpdateItem(c.Request.Context(), c.Param("key"), payload.ToPatch())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CatalogHandler) DeleteItem(c *gin.Context) {
	if err := h.usecase.DeleteItem(c.Request.Context(), c.Param("key")); err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCatalogCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_CATEGORY_NOT_FOUND", "Catalog category not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCatalogItemNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLookupNameTaken):
		return pkg.NewDomainErrorSimple("NAME_TAKEN", "Name already in use", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCatalogInput), errors.Is(err, usecase.ErrInvalidOrdering):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

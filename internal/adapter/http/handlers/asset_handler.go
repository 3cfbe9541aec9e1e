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

// AssetHandler handles HTTP requests for hardware assets.

type AssetHandler struct {
	usecase usecase.IAssetUseCase
}

func NewAssetHandler(uc usecase.IAssetUseCase) *AssetHandler {
	return &AssetHandler{usecase: uc}
}

func (h *AssetHandler) Create(c *gin.Context) {
	var payload request.AssetCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	view, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapAssetError(err))
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *AssetHandler) Get(c *gin.Context) {
	view, err := h.usecase.GetByKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, mapAssetError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *AssetHandler) List(c *gin.Context) {
	query := usecase.AssetListQuery{
		Filter: interfaces.AssetFilter{
			Status:       entities.AssetStatus(c.Query("status")),
			CategoryID:   c.Query("category"),
			LocationID:   c.Query("location"),
			VendorID:     c.Query("vendor"),
			AssignedToID: c.Query("assigned_to"),
		},
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
		Page:     pageParams(c),
	}

	page, err := h.usecase.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, mapAssetError(err))
		return
	}
	respondList(c, page.Count, query.Page, page.Results)
}

func (h *AssetHandler) Update(c *gin.Context) {
	var payload request.AssetUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	view, err := h.usecase.Update(c.Request.Context(), c.Param("key"), payload.ToPatch())
	if err != nil {
		respondError(c, mapAssetError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *AssetHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("key")); err != nil {
		respondError(c, mapAssetError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapAssetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAssetNotFound):
		return pkg.NewDomainErrorSimple("ASSET_NOT_FOUND", "Asset not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssetRefNotFound),
		errors.Is(err, usecase.ErrCategoryNotFound),
		errors.Is(err, usecase.ErrLocationNotFound),
		errors.Is(err, usecase.ErrVendorNotFound),
		errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("REFERENCE_NOT_FOUND", "Referenced record not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAssetInput), errors.Is(err, usecase.ErrInvalidOrdering):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

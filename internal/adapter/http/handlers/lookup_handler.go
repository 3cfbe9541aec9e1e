package handlers

import (
	"errors"
	"net/http"

	request "servicedesk/internal/adapter/http/dto/request"
	"servicedesk/internal/usecase"
	"servicedesk/pkg"

	"github.com/gin-gonic/gin"
)

// LookupHandler serves the flat reference data behind dropdowns: asset
// categories, office locations and vendors.

type LookupHandler struct {
	categories usecase.ICategoryUseCase
	locations  usecase.ILocationUseCase
	vendors    usecase.IVendorUseCase
}

func NewLookupHandler(categories usecase.ICategoryUseCase, locations usecase.ILocationUseCase, vendors usecase.IVendorUseCase) *LookupHandler {
	return &LookupHandler{categories: categories, locations: locations, vendors: vendors}
}

func (h *LookupHandler) CreateCategory(c *gin.Context) {
	var payload request.CategoryCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	cat, err := h.categories.Create(c.Request.Context(), payload.Name, payload.Description)
	if err != nil {
		respondError(c, mapLookupError(err))
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *LookupHandler) GetCategory(c *gin.Context) {
	cat, err := h.categories.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapLookupError(err))
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *LookupHandler) ListCategories(c *gin.Context) {
	p := pageParams(c)
	items, count, err := h.categories.List(c.Request.Context(), p)
	if err != nil {
		respondError(c, mapLookupError(err))
		return
	}
	respondList(c, count, p, items)
}

func (h *LookupHandler) UpdateCategory(c *gin.Context) {
	var payload request.CategoryUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	cat, err := h.categories.Update(c.Request.Context(), c.Param("id"), payload.Name, payload.Description)
	if err != nil {
		respondError(c, mapLookupError(err))
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *LookupHandler) DeleteCategory(c *gin.Context) {
	if err := h.categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapLookupError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LookupHandler) CreateLocation(c *gin.Context) {
	var payload request.LocationCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	loc, err := h.locations.Create(c.Request.Context(), payload.Name, payload.Address)
	if err != nil {
		respondError(c, mapLookupError(err))
		return
	}
	c.JSON(http.StatusCreated, loc)
}

func (h *LookupHandler) GetLocation(c *gin.Context) {
	loc, err := h.locations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapLookupError(err))
		return
	}
	c.JSON(http.StatusOK, loc)
}

func (h *LookupHandler) ListLocations(c *gin.Context) {
	p := pageParams(c)
	items, count, err := h.locations.List(c.Request.Context(), p)
	if err != nil {
		respondError(c, mapLookupError(err))
		return
	}
	respondList(c, count, p, items)
}

func (h *LookupHandler) UpdateLocation(c *gin.Context) {
	var payload request.LocationUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	loc, err := h.locations.Update(c.Request.Context(), c.Param("id"), payload.Name, payload.Address)
	if err != nil {
		respondError(c, mapLookupError(err))
		return
	}
	c.JSON(http.StatusOK, loc)
}

func (h *LookupHandler) DeleteLocation(c *gin.Context) {
	if err := h.locations.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapLookupError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LookupHandler) CreateVendor(c *gin.Context) {
	var payload request.VendorCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	v, err := h.vendors.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapLookupError(err))
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *LookupHandler) GetVendor(c *gin.Context) {
	v, err := h.vendors.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapLookupError(err))
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *LookupHandler) ListVendors(c *gin.Context) {
	p := pageParams(c)
	items, count, err := h.vendors.List(c.Request.Context(), p)
	if err != nil {
		respondError(c, mapLookupError(err))
		return
	}
	respondList(c, count, p, items)
}

func (h *LookupHandler) UpdateVendor(c *gin.Context) {
	var payload request.VendorUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	v, err := h.vendors.Update(c.Request.Context(), c.Param("id"), payload.Name, payload.Email, payload.Phone)
	if err != nil {
		respondError(c, mapLookupError(err))
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *LookupHandler) DeleteVendor(c *gin.Context) {
	if err := h.vendors.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapLookupError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapLookupError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLocationNotFound):
		return pkg.NewDomainErrorSimple("LOCATION_NOT_FOUND", "Location not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVendorNotFound):
		return pkg.NewDomainErrorSimple("VENDOR_NOT_FOUND", "Vendor not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLookupNameTaken):
		return pkg.NewDomainErrorSimple("NAME_TAKEN", "Name already in use", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidLookupName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

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

// ConfigurationItemHandler handles HTTP requests for CMDB configuration
// items.

type ConfigurationItemHandler struct {
	usecase usecase.IConfigurationItemUseCase
}

func NewConfigurationItemHandler(uc usecase.IConfigurationItemUseCase) *ConfigurationItemHandler {
	return &ConfigurationItemHandler{usecase: uc}
}

func (h *ConfigurationItemHandler) Create(c *gin.Context) {
	var payload request.ConfigurationItemCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	view, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapConfigItemError(err))
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *ConfigurationItemHandler) Get(c *gin.Context) {
	view, err := h.usecase.GetByKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, mapConfigItemError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ConfigurationItemHandler) List(c *gin.Context) {
	query := usecase.ConfigurationItemListQuery{
		Filter: interfaces.ConfigurationItemFilter{
			Type:        entities.CIType(c.Query("type")),
			Status:      entities.CIStatus(c.Query("status")),
			Environment: entities.CIEnvironment(c.Query("environment")),
			OwnerID:     c.Query("owner"),
		},
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
		Page:     pageParams(c),
	}

	page, err := h.usecase.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, mapConfigItemError(err))
		return
	}
	respondList(c, page.Count, query.Page, page.Results)
}

func (h *ConfigurationItemHandler) Update(c *gin.Context) {
	var payload request.ConfigurationItemUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	view, err := h.usecase.Update(c.Request.Context(), c.Param("key"), payload.ToPatch())
	if err != nil {
		respondError(c, mapConfigItemError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ConfigurationItemHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("key")); err != nil {
		respondError(c, mapConfigItemError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapConfigItemError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrConfigItemNotFound):
		return pkg.NewDomainErrorSimple("CONFIGURATION_ITEM_NOT_FOUND", "Configuration item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssetNotFound), errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("REFERENCE_NOT_FOUND", "Referenced record not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCIInput), errors.Is(err, usecase.ErrInvalidOrdering):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

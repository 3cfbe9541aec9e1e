package handlers

import (
	"errors"
	"net/http"

	request "servicedesk/internal/adapter/http/dto/request"
	"servicedesk/internal/adapter/http/middleware"
	"servicedesk/internal/domain/entities"
	"servicedesk/internal/usecase"
	"servicedesk/internal/usecase/interfaces"
	"servicedesk/pkg"

	"github.com/gin-gonic/gin"
)

// ServiceRequestHandler handles HTTP requests for service requests, the
// core ticket type of the desk.

type ServiceRequestHandler struct {
	usecase usecase.IServiceRequestUseCase
}

func NewServiceRequestHandler(uc usecase.IServiceRequestUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{usecase: uc}
}

func (h *ServiceRequestHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var payload request.ServiceRequestCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	view, err := h.usecase.Create(c.Request.Context(), user.ID, payload.ToInput())
	if err != nil {
		respondError(c, mapServiceRequestError(err))
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *ServiceRequestHandler) Get(c *gin.Context) {
	view, err := h.usecase.GetByKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, mapServiceRequestError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ServiceRequestHandler) List(c *gin.Context) {
	query := usecase.ServiceRequestListQuery{
		Filter: interfaces.ServiceRequestFilter{
			Status:        entities.ServiceRequestStatus(c.Query("status")),
			Category:      entities.ServiceRequestCategory(c.Query("category")),
			Priority:      entities.Priority(c.Query("priority")),
			RequestedByID: c.Query("requested_by"),
			AssignedToID:  c.Query("assigned_to"),
		},
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
		Page:     pageParams(c),
	}

	page, err := h.usecase.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, mapServiceRequestError(err))
		return
	}
	respondList(c, page.Count, query.Page, page.Results)
}

func (h *ServiceRequestHandler) Update(c *gin.Context) {
	var payload request.ServiceRequestUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	view, err := h.usecase.Update(c.Request.Context(), c.Param("key"), payload.ToPatch())
	if err != nil {
		respondError(c, mapServiceRequestError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ServiceRequestHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("key")); err != nil {
		respondError(c, mapServiceRequestError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapServiceRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrServiceRequestNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_REQUEST_NOT_FOUND", "Service request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidRequestInput), errors.Is(err, usecase.ErrInvalidOrdering):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssigneeNotFound), errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("ASSIGNEE_NOT_FOUND", "Assignee not found", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

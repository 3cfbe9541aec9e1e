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

// ChangeRequestHandler handles HTTP requests for change requests.
// Approval and rejection run through Update; the acting user is recorded
// as the approver.

type ChangeRequestHandler struct {
	usecase usecase.IChangeRequestUseCase
}

func NewChangeRequestHandler(uc usecase.IChangeRequestUseCase) *ChangeRequestHandler {
	return &ChangeRequestHandler{usecase: uc}
}

func (h *ChangeRequestHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var payload request.ChangeRequestCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	view, err := h.usecase.Create(c.Request.Context(), user.ID, payload.ToInput())
	if err != nil {
		respondError(c, mapChangeRequestError(err))
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *ChangeRequestHandler) Get(c *gin.Context) {
	view, err := h.usecase.GetByKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, mapChangeRequestError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ChangeRequestHandler) List(c *gin.Context) {
	query := usecase.ChangeRequestListQuery{
		Filter: interfaces.ChangeRequestFilter{
			Status:        entities.ChangeRequestStatus(c.Query("status")),
			Impact:        entities.ChangeImpact(c.Query("impact")),
			RequestedByID: c.Query("requested_by"),
		},
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
		Page:     pageParams(c),
	}

	page, err := h.usecase.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, mapChangeRequestError(err))
		return
	}
	respondList(c, page.Count, query.Page, page.Results)
}

func (h *ChangeRequestHandler) Update(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var payload request.ChangeRequestUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	view, err := h.usecase.Update(c.Request.Context(), c.Param("key"), user.ID, payload.ToPatch())
	if err != nil {
		respondError(c, mapChangeRequestError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ChangeRequestHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("key")); err != nil {
		respondError(c, mapChangeRequestError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapChangeRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrChangeRequestNotFound):
		return pkg.NewDomainErrorSimple("CHANGE_REQUEST_NOT_FOUND", "Change request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidChangeInput), errors.Is(err, usecase.ErrInvalidOrdering):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

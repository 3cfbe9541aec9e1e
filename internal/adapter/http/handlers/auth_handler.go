package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "servicedesk/internal/adapter/http/dto/request"
	response "servicedesk/internal/adapter/http/dto/response"
	"servicedesk/internal/adapter/http/middleware"
	"servicedesk/internal/usecase"
	"servicedesk/pkg"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login, logout and user administration.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	token, user, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		respondError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLogin(token, user))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
	if err := h.usecase.Logout(c.Request.Context(), token); err != nil {
		respondError(c, mapAuthError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication credentials were not provided or are invalid", http.StatusUnauthorized))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *AuthHandler) CreateUser(c *gin.Context) {
	var payload request.CreateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	user, err := h.usecase.CreateUser(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(user))
}

func (h *AuthHandler) GetUser(c *gin.Context) {
	user, err := h.usecase.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.usecase.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, mapAuthError(err))
		return
	}
	p := pageParams(c)
	// Users are a small administrative set; paginate in the handler.
	pageUsers, count := usecase.PaginateUsers(users, p)
	respondList(c, count, p, response.FromUsers(pageUsers))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrTokenInvalid):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication credentials were not provided or are invalid", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUsernameTaken):
		return pkg.NewDomainErrorSimple("USERNAME_TAKEN", "Username already in use", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidUserInput):
		return pkg.NewDomainErrorSimple("INVALID_USER_INPUT", "Invalid user payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

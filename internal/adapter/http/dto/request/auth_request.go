package request

import (
	"servicedesk/internal/domain/entities"
	"servicedesk/internal/usecase"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (r CreateUserRequest) ToInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Username: r.Username,
		Password: r.Password,
		FullName: r.FullName,
		Email:    r.Email,
		Role:     entities.UserRole(r.Role),
	}
}

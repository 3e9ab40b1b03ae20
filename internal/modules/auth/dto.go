package auth

import "rentalhub/internal/domain"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

type CreateUserRequest struct {
	Name     string          `json:"name" binding:"required,max=120"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     domain.UserRole `json:"role" binding:"required,oneof=admin staff"`
}

type UpdateUserRequest struct {
	Name     *string          `json:"name" binding:"omitempty,min=1,max=120"`
	Role     *domain.UserRole `json:"role" binding:"omitempty,oneof=admin staff"`
	Active   *bool            `json:"active"`
	Password *string          `json:"password" binding:"omitempty,min=8"`
}

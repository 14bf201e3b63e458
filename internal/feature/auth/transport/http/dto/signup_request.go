// Package dto defines data transfer objects for the auth feature's HTTP
// transport layer.
package dto

import (
	"time"

	"carebridge_backend/internal/feature/auth/domain/entity"
)

// SignupReq represents the request body for POST /auth/signup.
// Gin's binding tags validate the fields, including the role whitelist.
type SignupReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=PATIENT DOCTOR"`
}

// UserSummary is the safe subset of a user returned after signup.
type UserSummary struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserSummary maps a user entity to its response form.
func NewUserSummary(u *entity.User) UserSummary {
	return UserSummary{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// SignupResponse is the 201 body for POST /auth/signup.
type SignupResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"carebridge_backend/internal/feature/auth/domain/entity"
	"carebridge_backend/internal/feature/auth/transport/http/dto"
	"carebridge_backend/internal/platform/apperr"
	"carebridge_backend/internal/platform/httpx"
)

// AuthUsecase defines the auth operations the handler depends on.
// Following Go convention, the consumer (handler) defines the interface.
type AuthUsecase interface {
	// Signup registers a new user and returns the created row.
	Signup(ctx context.Context, name, email, password string, role entity.Role) (*entity.User, error)
	// Login authenticates a user and returns a session token plus the user.
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
}

// AuthHandler handles HTTP requests for signup and login.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles POST /auth/signup.
// - 400 on missing fields or a role outside {PATIENT, DOCTOR}
// - 409 on a duplicate email
// - 201 with the created user on success
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		httpx.Error(c, apperr.E(apperr.Validation, "name, email, password and a role of PATIENT or DOCTOR are required"))
		return
	}
	user, err := h.auth.Signup(c.Request.Context(), req.Name, req.Email, req.Password, entity.Role(req.Role))
	if err != nil {
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		httpx.Error(c, err)
		return
	}
	slog.Info("user signup successful", "email", req.Email, "role", req.Role, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.SignupResponse{
		Message: "User created successfully",
		User:    dto.NewUserSummary(user),
	})
}

// Login handles POST /auth/login.
// - 400 on missing fields
// - 401 with one generic message for unknown email and wrong password alike
// - 200 with token, role and name on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		httpx.Error(c, apperr.E(apperr.Validation, "email and password are required"))
		return
	}
	tok, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		httpx.Error(c, err)
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: tok,
		Role:  string(user.Role),
		Name:  user.Name,
	})
}

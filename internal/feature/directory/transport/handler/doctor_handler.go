// Package handler provides the HTTP handlers for the doctor directory.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"carebridge_backend/internal/feature/directory/transport/http/dto"
	"carebridge_backend/internal/feature/directory/usecase"
	"carebridge_backend/internal/platform/apperr"
	"carebridge_backend/internal/platform/gate"
	"carebridge_backend/internal/platform/httpx"
	"carebridge_backend/internal/platform/token"
)

// DirectoryUsecase defines the directory operations the handler depends on.
type DirectoryUsecase interface {
	ListDoctors(ctx context.Context, p token.Principal) ([]usecase.DoctorSummary, error)
}

// DoctorHandler handles HTTP requests for the doctor directory.
type DoctorHandler struct {
	directory DirectoryUsecase
}

// NewDoctorHandler creates a new DoctorHandler instance.
func NewDoctorHandler(directory DirectoryUsecase) *DoctorHandler {
	return &DoctorHandler{directory: directory}
}

// List handles GET /doctors.
func (h *DoctorHandler) List(c *gin.Context) {
	p, ok := gate.PrincipalFrom(c)
	if !ok {
		httpx.Error(c, apperr.E(apperr.Unauthorized, "missing principal"))
		return
	}

	doctors, err := h.directory.ListDoctors(c.Request.Context(), p)
	if err != nil {
		slog.Warn("list doctors failed", "error", err, "user_id", p.UserID)
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DoctorsResponse{
		Doctors:    doctors,
		TotalFound: len(doctors),
	})
}

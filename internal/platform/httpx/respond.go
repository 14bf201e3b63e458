// Package httpx translates taxonomy errors into HTTP responses.
// Every handler funnels failures through Error so the status/message
// contract stays uniform across features.
package httpx

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"carebridge_backend/internal/platform/apperr"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error writes the response for err. Taxonomy members keep their own
// status and message; anything else degrades to a generic 500 so internal
// detail never reaches the client.
func Error(c *gin.Context, err error) {
	if kind, ok := apperr.KindOf(err); ok {
		c.JSON(statusOf(kind), ErrorResponse{Error: err.Error()})
		return
	}
	slog.Error("unexpected error", "error", err, "path", c.FullPath(), "method", c.Request.Method)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

func statusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.Validation:
		return http.StatusBadRequest
	case apperr.Unauthorized:
		return http.StatusUnauthorized
	case apperr.Forbidden:
		return http.StatusForbidden
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

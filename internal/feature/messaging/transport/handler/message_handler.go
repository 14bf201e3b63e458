// Package handler provides the HTTP handlers for the conversation channel.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"carebridge_backend/internal/feature/messaging/transport/http/dto"
	"carebridge_backend/internal/feature/messaging/usecase"
	"carebridge_backend/internal/platform/apperr"
	"carebridge_backend/internal/platform/gate"
	"carebridge_backend/internal/platform/httpx"
	"carebridge_backend/internal/platform/token"
)

// MessagingUsecase defines the channel operations the handler depends on.
type MessagingUsecase interface {
	ListMessages(ctx context.Context, p token.Principal, doctorID uint, limit int, markRead bool) ([]usecase.MessageView, error)
	SendMessage(ctx context.Context, p token.Principal, doctorID uint, content string) (*usecase.MessageView, error)
}

// MessageHandler handles HTTP requests for the patient-side channel.
type MessageHandler struct {
	messaging MessagingUsecase
}

// NewMessageHandler creates a new MessageHandler instance.
func NewMessageHandler(messaging MessagingUsecase) *MessageHandler {
	return &MessageHandler{messaging: messaging}
}

// List handles GET /patient/messages?doctorId&limit&markRead.
// An absent doctorId yields an empty list; markRead=1 transitions unread
// messages from the doctor before listing.
func (h *MessageHandler) List(c *gin.Context) {
	p, ok := gate.PrincipalFrom(c)
	if !ok {
		httpx.Error(c, apperr.E(apperr.Unauthorized, "missing principal"))
		return
	}

	doctorID, _ := strconv.ParseUint(c.Query("doctorId"), 10, 64)
	limit, _ := strconv.Atoi(c.Query("limit"))
	markRead := c.Query("markRead") == "1"

	msgs, err := h.messaging.ListMessages(c.Request.Context(), p, uint(doctorID), limit, markRead)
	if err != nil {
		slog.Warn("list messages failed", "error", err, "user_id", p.UserID, "doctor_id", doctorID)
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessagesResponse{Messages: msgs})
}

// Send handles POST /patient/messages.
func (h *MessageHandler) Send(c *gin.Context) {
	p, ok := gate.PrincipalFrom(c)
	if !ok {
		httpx.Error(c, apperr.E(apperr.Unauthorized, "missing principal"))
		return
	}

	var req dto.SendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, usecase.ErrMissingFields)
		return
	}

	view, err := h.messaging.SendMessage(c.Request.Context(), p, req.DoctorID, req.Content)
	if err != nil {
		slog.Warn("send message failed", "error", err, "user_id", p.UserID, "doctor_id", req.DoctorID)
		httpx.Error(c, err)
		return
	}
	slog.Info("message sent", "user_id", p.UserID, "doctor_id", req.DoctorID)
	c.JSON(http.StatusCreated, dto.SendMessageResponse{
		Message:     "Message sent successfully",
		MessageData: *view,
	})
}

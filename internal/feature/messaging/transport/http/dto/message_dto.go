// Package dto defines data transfer objects for the messaging feature's
// HTTP transport layer.
package dto

import "carebridge_backend/internal/feature/messaging/usecase"

// SendMessageReq represents the request body for POST /patient/messages.
type SendMessageReq struct {
	DoctorID uint   `json:"doctorId" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

// MessagesResponse is the 200 body for GET /patient/messages.
type MessagesResponse struct {
	Messages []usecase.MessageView `json:"messages"`
}

// SendMessageResponse is the 201 body for POST /patient/messages.
type SendMessageResponse struct {
	Message     string              `json:"message"`
	MessageData usecase.MessageView `json:"messageData"`
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carebridge_backend/internal/feature/messaging/domain/entity"
	"carebridge_backend/internal/feature/messaging/transport/http/dto"
	"carebridge_backend/internal/feature/messaging/usecase"
	"carebridge_backend/internal/platform/gate"
	"carebridge_backend/internal/platform/token"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockMessagingUsecase is a mock implementation of the MessagingUsecase
// interface.
type mockMessagingUsecase struct {
	ListMessagesFunc func(ctx context.Context, p token.Principal, doctorID uint, limit int, markRead bool) ([]usecase.MessageView, error)
	SendMessageFunc  func(ctx context.Context, p token.Principal, doctorID uint, content string) (*usecase.MessageView, error)
}

func (m *mockMessagingUsecase) ListMessages(ctx context.Context, p token.Principal, doctorID uint, limit int, markRead bool) ([]usecase.MessageView, error) {
	return m.ListMessagesFunc(ctx, p, doctorID, limit, markRead)
}

func (m *mockMessagingUsecase) SendMessage(ctx context.Context, p token.Principal, doctorID uint, content string) (*usecase.MessageView, error) {
	return m.SendMessageFunc(ctx, p, doctorID, content)
}

// newMessageRouter wires the handler behind a stub middleware that injects
// the principal the way the gate would.
func newMessageRouter(uc *mockMessagingUsecase, p *token.Principal) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if p != nil {
			c.Set(gate.ContextPrincipal, *p)
		}
		c.Next()
	})
	h := NewMessageHandler(uc)
	r.GET("/patient/messages", h.List)
	r.POST("/patient/messages", h.Send)
	return r
}

var patient = token.Principal{UserID: 1, Role: "PATIENT"}

func TestMessageHandler_List(t *testing.T) {
	t.Run("query params are parsed and forwarded", func(t *testing.T) {
		uc := &mockMessagingUsecase{
			ListMessagesFunc: func(ctx context.Context, p token.Principal, doctorID uint, limit int, markRead bool) ([]usecase.MessageView, error) {
				assert.Equal(t, uint(1), p.UserID)
				assert.Equal(t, uint(5), doctorID)
				assert.Equal(t, 10, limit)
				assert.True(t, markRead)
				return []usecase.MessageView{
					{Message: entity.Message{ID: 1, SenderID: 1, ReceiverID: 5, Content: "hi"}, SentBy: "PATIENT"},
				}, nil
			},
		}
		r := newMessageRouter(uc, &patient)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/patient/messages?doctorId=5&limit=10&markRead=1", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.MessagesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Messages, 1)
		assert.Equal(t, "PATIENT", resp.Messages[0].SentBy)
	})

	t.Run("absent params default to zero values", func(t *testing.T) {
		uc := &mockMessagingUsecase{
			ListMessagesFunc: func(ctx context.Context, p token.Principal, doctorID uint, limit int, markRead bool) ([]usecase.MessageView, error) {
				assert.Zero(t, doctorID)
				assert.Zero(t, limit)
				assert.False(t, markRead)
				return []usecase.MessageView{}, nil
			},
		}
		r := newMessageRouter(uc, &patient)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/patient/messages", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("markRead is strict: only the literal 1 enables it", func(t *testing.T) {
		uc := &mockMessagingUsecase{
			ListMessagesFunc: func(ctx context.Context, p token.Principal, doctorID uint, limit int, markRead bool) ([]usecase.MessageView, error) {
				assert.False(t, markRead)
				return []usecase.MessageView{}, nil
			},
		}
		r := newMessageRouter(uc, &patient)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/patient/messages?doctorId=5&markRead=true", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no assignment maps to 403", func(t *testing.T) {
		uc := &mockMessagingUsecase{
			ListMessagesFunc: func(ctx context.Context, p token.Principal, doctorID uint, limit int, markRead bool) ([]usecase.MessageView, error) {
				return nil, usecase.ErrNoAssignment
			},
		}
		r := newMessageRouter(uc, &patient)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/patient/messages?doctorId=5", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "no assignment found with this doctor")
	})

	t.Run("missing principal returns 401", func(t *testing.T) {
		uc := &mockMessagingUsecase{
			ListMessagesFunc: func(ctx context.Context, p token.Principal, doctorID uint, limit int, markRead bool) ([]usecase.MessageView, error) {
				t.Fatal("usecase should not be reached")
				return nil, nil
			},
		}
		r := newMessageRouter(uc, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/patient/messages", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestMessageHandler_Send(t *testing.T) {
	t.Run("successful send returns 201 with the annotated message", func(t *testing.T) {
		uc := &mockMessagingUsecase{
			SendMessageFunc: func(ctx context.Context, p token.Principal, doctorID uint, content string) (*usecase.MessageView, error) {
				assert.Equal(t, uint(5), doctorID)
				assert.Equal(t, "hello doctor", content)
				return &usecase.MessageView{
					Message: entity.Message{ID: 42, SenderID: p.UserID, ReceiverID: doctorID, Content: content},
					SentBy:  "PATIENT",
				}, nil
			},
		}
		r := newMessageRouter(uc, &patient)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/patient/messages",
			bytes.NewBufferString(`{"doctorId":5,"content":"hello doctor"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp dto.SendMessageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Message sent successfully", resp.Message)
		assert.Equal(t, uint(42), resp.MessageData.ID)
		assert.Equal(t, "PATIENT", resp.MessageData.SentBy)
	})

	t.Run("binding failure returns the missing-fields 400", func(t *testing.T) {
		uc := &mockMessagingUsecase{
			SendMessageFunc: func(ctx context.Context, p token.Principal, doctorID uint, content string) (*usecase.MessageView, error) {
				t.Fatal("usecase should not be reached")
				return nil, nil
			},
		}
		r := newMessageRouter(uc, &patient)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/patient/messages",
			bytes.NewBufferString(`{"doctorId":5}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "missing required fields")
	})

	t.Run("no assignment maps to 403", func(t *testing.T) {
		uc := &mockMessagingUsecase{
			SendMessageFunc: func(ctx context.Context, p token.Principal, doctorID uint, content string) (*usecase.MessageView, error) {
				return nil, usecase.ErrNoAssignment
			},
		}
		r := newMessageRouter(uc, &patient)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/patient/messages",
			bytes.NewBufferString(`{"doctorId":5,"content":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

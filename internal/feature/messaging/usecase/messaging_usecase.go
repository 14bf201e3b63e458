// Package usecase implements the conversation channel business logic.
// The channel is strictly binary: one patient, one doctor, authorized by
// the existence of an assignment between them.
package usecase

import (
	"context"

	authentity "carebridge_backend/internal/feature/auth/domain/entity"
	"carebridge_backend/internal/feature/messaging/domain/entity"
	"carebridge_backend/internal/platform/apperr"
	"carebridge_backend/internal/platform/token"
)

const defaultMessageLimit = 50

var (
	// ErrPatientRoleRequired is returned when a non-patient principal calls
	// the patient-side channel.
	ErrPatientRoleRequired = apperr.E(apperr.Forbidden, "access denied, patient role required")

	// ErrNoAssignment is returned when no assignment links the caller to
	// the requested doctor.
	ErrNoAssignment = apperr.E(apperr.Forbidden, "no assignment found with this doctor")

	// ErrMissingFields is returned when doctorId or content is absent.
	ErrMissingFields = apperr.E(apperr.Validation, "missing required fields: doctorId, content")
)

// AssignmentRegistry answers whether a patient-doctor link exists.
type AssignmentRegistry interface {
	Exists(ctx context.Context, patientID, doctorID uint) (bool, error)
}

// MessageRepository abstracts message persistence.
type MessageRepository interface {
	// Create appends a new message with ReadAt unset.
	Create(ctx context.Context, m *entity.Message) error

	// ListBetween returns messages exchanged between the two users, ordered
	// by creation time ascending (insertion order on ties), up to limit.
	ListBetween(ctx context.Context, userA, userB uint, limit int) ([]entity.Message, error)

	// MarkRead transitions every unread message from sender to receiver to
	// read in one conditional update.
	MarkRead(ctx context.Context, senderID, receiverID uint) error
}

// MessageView is a message annotated with the side of the pair that
// authored it.
type MessageView struct {
	entity.Message
	SentBy string `json:"sentBy"`
}

type messagingUsecase struct {
	assignments AssignmentRegistry
	messages    MessageRepository
}

// NewMessagingUsecase creates a new messagingUsecase instance.
func NewMessagingUsecase(assignments AssignmentRegistry, messages MessageRepository) *messagingUsecase {
	return &messagingUsecase{assignments: assignments, messages: messages}
}

// ListMessages returns the caller's conversation with the given doctor.
// A zero doctorID means no conversation is selected and yields an empty
// list, not an error. When markRead is set, unread messages from the doctor
// are transitioned first; the bulk update is a single conditional statement
// and is not serialized against concurrent inserts.
func (u *messagingUsecase) ListMessages(ctx context.Context, p token.Principal, doctorID uint, limit int, markRead bool) ([]MessageView, error) {
	if p.Role != string(authentity.RolePatient) {
		return nil, ErrPatientRoleRequired
	}
	if doctorID == 0 {
		return []MessageView{}, nil
	}
	linked, err := u.assignments.Exists(ctx, p.UserID, doctorID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, ErrNoAssignment
	}
	if markRead {
		if err := u.messages.MarkRead(ctx, doctorID, p.UserID); err != nil {
			return nil, err
		}
	}
	if limit <= 0 {
		limit = defaultMessageLimit
	}
	msgs, err := u.messages.ListBetween(ctx, p.UserID, doctorID, limit)
	if err != nil {
		return nil, err
	}
	views := make([]MessageView, 0, len(msgs))
	for _, m := range msgs {
		views = append(views, annotate(m, p.UserID))
	}
	return views, nil
}

// SendMessage appends a message from the caller to the given doctor.
func (u *messagingUsecase) SendMessage(ctx context.Context, p token.Principal, doctorID uint, content string) (*MessageView, error) {
	if p.Role != string(authentity.RolePatient) {
		return nil, ErrPatientRoleRequired
	}
	if doctorID == 0 || content == "" {
		return nil, ErrMissingFields
	}
	linked, err := u.assignments.Exists(ctx, p.UserID, doctorID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, ErrNoAssignment
	}
	m := &entity.Message{
		SenderID:   p.UserID,
		ReceiverID: doctorID,
		Content:    content,
	}
	if err := u.messages.Create(ctx, m); err != nil {
		return nil, err
	}
	view := annotate(*m, p.UserID)
	return &view, nil
}

// annotate derives sentBy from the caller's perspective: the caller is
// always the patient on this side of the channel.
func annotate(m entity.Message, callerID uint) MessageView {
	sentBy := string(authentity.RoleDoctor)
	if m.SenderID == callerID {
		sentBy = string(authentity.RolePatient)
	}
	return MessageView{Message: m, SentBy: sentBy}
}

// Package adapters provides the repository implementations for the
// messaging feature.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"carebridge_backend/internal/feature/messaging/domain/entity"
	"carebridge_backend/internal/feature/messaging/usecase"
)

type messageGorm struct {
	db *gorm.DB
}

var _ usecase.MessageRepository = (*messageGorm)(nil)

// NewMessageGorm creates a messageGorm backed by the given connection.
func NewMessageGorm(db *gorm.DB) *messageGorm {
	return &messageGorm{db: db}
}

// Create appends the message. CreatedAt is set by gorm, ReadAt stays nil.
func (r *messageGorm) Create(ctx context.Context, m *entity.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// ListBetween returns messages exchanged between the two users ordered by
// created_at ascending; the id tiebreak keeps insertion order stable when
// timestamps collide.
func (r *messageGorm) ListBetween(ctx context.Context, userA, userB uint, limit int) ([]entity.Message, error) {
	var msgs []entity.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// MarkRead stamps every unread message from sender to receiver in one
// conditional update. Already-read rows keep their original timestamp, so
// repeated calls are no-ops.
func (r *messageGorm) MarkRead(ctx context.Context, senderID, receiverID uint) error {
	return r.db.WithContext(ctx).Model(&entity.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND read_at IS NULL", senderID, receiverID).
		Update("read_at", time.Now()).Error
}

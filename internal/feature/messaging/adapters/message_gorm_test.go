package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"carebridge_backend/internal/feature/messaging/domain/entity"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Message{}))
	return db
}

func seedMessage(t *testing.T, db *gorm.DB, sender, receiver uint, content string, at time.Time) *entity.Message {
	t.Helper()

	m := &entity.Message{SenderID: sender, ReceiverID: receiver, Content: content, CreatedAt: at}
	require.NoError(t, db.Create(m).Error)
	return m
}

func TestMessageGorm_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageGorm(db)
	ctx := context.Background()

	m := &entity.Message{SenderID: 1, ReceiverID: 2, Content: "hello"}
	err := repo.Create(ctx, m)

	require.NoError(t, err)
	assert.NotZero(t, m.ID)
	assert.Nil(t, m.ReadAt)
	assert.False(t, m.CreatedAt.IsZero())
}

func TestMessageGorm_ListBetween(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageGorm(db)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seedMessage(t, db, 1, 2, "second", base.Add(time.Minute))
	seedMessage(t, db, 2, 1, "first", base)
	seedMessage(t, db, 1, 2, "third", base.Add(2*time.Minute))
	// Unrelated conversation must not leak in.
	seedMessage(t, db, 1, 3, "other channel", base)

	t.Run("both directions in ascending order", func(t *testing.T) {
		msgs, err := repo.ListBetween(ctx, 1, 2, 50)

		require.NoError(t, err)
		require.Len(t, msgs, 3)
		assert.Equal(t, "first", msgs[0].Content)
		assert.Equal(t, "second", msgs[1].Content)
		assert.Equal(t, "third", msgs[2].Content)
	})

	t.Run("limit applies", func(t *testing.T) {
		msgs, err := repo.ListBetween(ctx, 1, 2, 2)

		require.NoError(t, err)
		assert.Len(t, msgs, 2)
	})

	t.Run("equal timestamps keep insertion order", func(t *testing.T) {
		tied := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
		a := seedMessage(t, db, 4, 5, "tie a", tied)
		b := seedMessage(t, db, 5, 4, "tie b", tied)

		msgs, err := repo.ListBetween(ctx, 4, 5, 50)

		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, a.ID, msgs[0].ID)
		assert.Equal(t, b.ID, msgs[1].ID)
	})
}

func TestMessageGorm_MarkRead(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageGorm(db)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	unread1 := seedMessage(t, db, 2, 1, "from doctor 1", base)
	unread2 := seedMessage(t, db, 2, 1, "from doctor 2", base.Add(time.Minute))
	outbound := seedMessage(t, db, 1, 2, "from patient", base)

	require.NoError(t, repo.MarkRead(ctx, 2, 1))

	var got entity.Message
	require.NoError(t, db.First(&got, unread1.ID).Error)
	require.NotNil(t, got.ReadAt)
	firstStamp := *got.ReadAt

	got = entity.Message{}
	require.NoError(t, db.First(&got, unread2.ID).Error)
	assert.NotNil(t, got.ReadAt)

	// Messages sent by the receiver are untouched.
	got = entity.Message{}
	require.NoError(t, db.First(&got, outbound.ID).Error)
	assert.Nil(t, got.ReadAt)

	// Second call is a no-op: already-read rows keep their timestamp.
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.MarkRead(ctx, 2, 1))

	got = entity.Message{}
	require.NoError(t, db.First(&got, unread1.ID).Error)
	require.NotNil(t, got.ReadAt)
	assert.True(t, got.ReadAt.Equal(firstStamp))
}

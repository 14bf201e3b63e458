// Package entity defines the conversation channel entities.
package entity

import "time"

// Message is one entry in a patient-doctor conversation. It is immutable
// after creation except for the one-way ReadAt nil-to-timestamp transition.
type Message struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	SenderID   uint       `gorm:"not null;index" json:"senderId"`
	ReceiverID uint       `gorm:"not null;index" json:"receiverId"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time  `json:"createdAt"`
	ReadAt     *time.Time `json:"readAt"`
}

// Package entity defines the assignment relationship entity.
package entity

import "time"

// Assignment links exactly one patient to one doctor. Its existence is the
// sole authorization for messaging between the pair. Rows are created by the
// external assignment-request flow; this service only reads them.
// The composite unique index rules out duplicate links for the same pair.
type Assignment struct {
	ID        uint `gorm:"primaryKey"`
	PatientID uint `gorm:"not null;uniqueIndex:idx_assignment_pair"`
	DoctorID  uint `gorm:"not null;uniqueIndex:idx_assignment_pair"`
	CreatedAt time.Time
}

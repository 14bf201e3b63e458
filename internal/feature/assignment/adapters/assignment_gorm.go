// Package adapters provides the gorm-backed assignment registry.
// Messaging and the doctor directory each define the subset of this
// adapter's methods they consume.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"carebridge_backend/internal/feature/assignment/domain/entity"
)

type assignmentGorm struct {
	db *gorm.DB
}

// NewAssignmentGorm creates an assignmentGorm backed by the given connection.
func NewAssignmentGorm(db *gorm.DB) *assignmentGorm {
	return &assignmentGorm{db: db}
}

// Exists reports whether a (patient, doctor) link is recorded.
func (r *assignmentGorm) Exists(ctx context.Context, patientID, doctorID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.Assignment{}).
		Where("patient_id = ? AND doctor_id = ?", patientID, doctorID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListDoctorIDsForPatient returns the id of every doctor linked to the
// patient, in one query, so callers can annotate whole listings without a
// lookup per doctor.
func (r *assignmentGorm) ListDoctorIDsForPatient(ctx context.Context, patientID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&entity.Assignment{}).
		Where("patient_id = ?", patientID).
		Pluck("doctor_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

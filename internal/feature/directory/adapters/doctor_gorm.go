// Package adapters provides the repository implementations for the
// directory feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"carebridge_backend/internal/feature/auth/domain/entity"
	"carebridge_backend/internal/feature/directory/usecase"
)

type doctorGorm struct {
	db *gorm.DB
}

var _ usecase.DoctorRepository = (*doctorGorm)(nil)

// NewDoctorGorm creates a doctorGorm backed by the given connection.
func NewDoctorGorm(db *gorm.DB) *doctorGorm {
	return &doctorGorm{db: db}
}

// FindVetted returns every doctor whose profile has reached the vetted
// tier, profiles preloaded. The id ordering keeps retrieval stable; the
// usecase applies the experience ranking on top.
func (r *doctorGorm) FindVetted(ctx context.Context) ([]entity.User, error) {
	var doctors []entity.User
	err := r.db.WithContext(ctx).
		Preload("DoctorProfile").
		Where("role = ? AND profile_level = ?", entity.RoleDoctor, usecase.VettedProfileLevel).
		Order("id ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

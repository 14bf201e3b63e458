// Package di wires optional infrastructure into feature repositories.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"carebridge_backend/internal/feature/directory/adapters"
	"carebridge_backend/internal/feature/directory/usecase"
	"carebridge_backend/internal/platform/cache"
)

// NewDoctorRepository creates the directory's doctor repository.
// If Redis is available, the repository is wrapped with a caching
// decorator; otherwise the plain gorm repository is used.
func NewDoctorRepository(rdb *redis.Client, db *gorm.DB) usecase.DoctorRepository {
	repo := adapters.NewDoctorGorm(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingDoctorRepository(rdb, 5*time.Minute, repo, "doctors")
}

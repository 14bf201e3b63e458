// Package cache provides caching decorators for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"carebridge_backend/internal/feature/auth/domain/entity"
	"carebridge_backend/internal/feature/directory/usecase"
)

// CachingDoctorRepository decorates a DoctorRepository with Redis caching.
// The vetted-doctor set only changes through the external verification
// workflow, so invalidation is left to the TTL. A nil client bypasses the
// cache entirely, which is how the no-cache configuration is expressed.
type CachingDoctorRepository struct {
	inner usecase.DoctorRepository
	rdb   *redis.Client
	ttl   time.Duration
	key   string
}

var _ usecase.DoctorRepository = (*CachingDoctorRepository)(nil)

// NewCachingDoctorRepository decorates inner with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses
// "doctors".
func NewCachingDoctorRepository(rdb *redis.Client, ttl time.Duration, inner usecase.DoctorRepository, namespace string) *CachingDoctorRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "doctors"
	}
	return &CachingDoctorRepository{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
		key:   namespace + ":vetted",
	}
}

// FindVetted checks the cache first and falls back to the database.
// Cache writes are best effort; a redis failure never fails the request.
func (c *CachingDoctorRepository) FindVetted(ctx context.Context) ([]entity.User, error) {
	if c.rdb == nil {
		return c.inner.FindVetted(ctx)
	}

	if b, err := c.rdb.Get(ctx, c.key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.User
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Corrupted entry: drop it and fall through to the database.
		_ = c.rdb.Del(ctx, c.key).Err()
	}

	out, err := c.inner.FindVetted(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, c.key, b, c.ttl).Err()
	}

	return out, nil
}

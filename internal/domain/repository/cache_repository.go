package repository

import (
	"context"
	"time"

	"github.com/asmit-inzanist/medic-all-sub000/internal/domain"
)

// CacheRepository is the byte-level cache port plus typed helpers for
// reverse-geocode results. Nearby search results, routes and inventory
// listings are recomputed per query and must not be cached.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	GetAddress(ctx context.Context, lat, lon float64) (*domain.Address, error)
	SetAddress(ctx context.Context, lat, lon float64, addr *domain.Address, ttl time.Duration) error
}

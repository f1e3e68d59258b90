package usecase

import (
	"context"
	"time"
)

// QueryCache stores serialized read results. Implementations degrade to a
// miss when their backend is unavailable.
type QueryCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

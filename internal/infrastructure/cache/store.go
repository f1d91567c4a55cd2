package cache

import (
	"context"
	"time"

	"github.com/truthos/meeting-intel/internal/domain/entities"
)

// SessionStore holds active sessions keyed by their opaque token.
// Implementations must return (nil, nil) for a missing or expired
// session so callers can distinguish "not logged in" from store errors.
type SessionStore interface {
	Set(ctx context.Context, token string, session *entities.Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (*entities.Session, error)
	Delete(ctx context.Context, token string) error
}

package interfaces

import (
	"context"
	"time"

	"depannel_dispatch/internal/domain/entities"
)

// ISessionStore maps bearer tokens to principals. Lookup returns false for
// unknown or expired tokens.
type ISessionStore interface {
	Save(ctx context.Context, p entities.Principal, ttl time.Duration) error
	Lookup(ctx context.Context, token string) (entities.Principal, bool, error)
	Invalidate(ctx context.Context, token string) error
}

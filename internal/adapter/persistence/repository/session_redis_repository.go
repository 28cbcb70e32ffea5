package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/usecase/interfaces"

	redis "github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "depannel:session:"

type redisSession struct {
	UserID string        `json:"user_id"`
	Name   string        `json:"name,omitempty"`
	Role   entities.Role `json:"role"`
}

// SessionRedisRepository shares sessions between API replicas. Expiry is
// delegated to the key TTL.
type SessionRedisRepository struct {
	rdb *redis.Client
}

var _ interfaces.ISessionStore = (*SessionRedisRepository)(nil)

func NewSessionRedisRepository(rdb *redis.Client) *SessionRedisRepository {
	return &SessionRedisRepository{rdb: rdb}
}

func (r *SessionRedisRepository) Save(ctx context.Context, p entities.Principal, ttl time.Duration) error {
	if p.Token == "" {
		return errors.New("session token is required")
	}
	data, err := json.Marshal(redisSession{UserID: p.UserID, Name: p.Name, Role: p.Role})
	if err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, sessionKey(p.Token), data, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *SessionRedisRepository) Lookup(ctx context.Context, token string) (entities.Principal, bool, error) {
	data, err := r.rdb.Get(ctx, sessionKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.Principal{}, false, nil
	}
	if err != nil {
		return entities.Principal{}, false, fmt.Errorf("lookup session: %w", err)
	}
	var s redisSession
	if err := json.Unmarshal(data, &s); err != nil {
		return entities.Principal{}, false, fmt.Errorf("decode session: %w", err)
	}
	return entities.Principal{UserID: s.UserID, Name: s.Name, Role: s.Role, Token: token}, true, nil
}

func (r *SessionRedisRepository) Invalidate(ctx context.Context, token string) error {
	if err := r.rdb.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("invalidate session: %w", err)
	}
	return nil
}

// sessionKey hashes the token so bearer credentials never appear in key
// listings.
func sessionKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return sessionKeyPrefix + hex.EncodeToString(sum[:])
}

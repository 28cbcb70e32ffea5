package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/domain/lifecycle"
	"depannel_dispatch/internal/usecase/interfaces"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// DefaultSessionTTL bounds how long a login is honoured locally.
const DefaultSessionTTL = 12 * time.Hour

// ISessionUseCase authenticates users against the backing service and keeps
// the resulting principals.
type ISessionUseCase interface {
	Login(ctx context.Context, email, password string) (entities.Principal, error)
	Logout(ctx context.Context, p entities.Principal) error
	Resolve(ctx context.Context, token string) (entities.Principal, error)
}

type SessionUseCase struct {
	auth  interfaces.IAuthGateway
	store interfaces.ISessionStore
	ttl   time.Duration
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(auth interfaces.IAuthGateway, store interfaces.ISessionStore, ttl time.Duration) *SessionUseCase {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionUseCase{auth: auth, store: store, ttl: ttl}
}

func (u *SessionUseCase) Login(ctx context.Context, email, password string) (entities.Principal, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return entities.Principal{}, ErrInvalidCredentials
	}
	p, err := u.auth.Login(ctx, email, password)
	if err != nil {
		log.Printf("[session][usecase] login failed email=%s err=%v", email, err)
		return entities.Principal{}, err
	}
	if p.Token == "" || (p.Role != entities.RoleAgent && p.Role != entities.RoleManager) {
		log.Printf("[session][usecase] login rejected email=%s role=%q", email, p.Role)
		return entities.Principal{}, ErrInvalidCredentials
	}
	if err := u.store.Save(ctx, p, u.ttl); err != nil {
		return entities.Principal{}, err
	}
	log.Printf("[session][usecase] login ok user=%s role=%s", p.UserID, p.Role)
	return p, nil
}

// Logout signs out at the backing service and always drops the local
// session, even when the remote call fails.
func (u *SessionUseCase) Logout(ctx context.Context, p entities.Principal) error {
	if p.Token == "" {
		return ErrUnauthenticated
	}
	if err := u.auth.Logout(ctx, p); err != nil && !errors.Is(err, lifecycle.ErrSessionExpired) {
		log.Printf("[session][usecase] remote logout failed user=%s err=%v", p.UserID, err)
	}
	return u.store.Invalidate(ctx, p.Token)
}

func (u *SessionUseCase) Resolve(ctx context.Context, token string) (entities.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Principal{}, ErrUnauthenticated
	}
	p, ok, err := u.store.Lookup(ctx, token)
	if err != nil {
		return entities.Principal{}, err
	}
	if !ok {
		return entities.Principal{}, lifecycle.ErrSessionExpired
	}
	return p, nil
}

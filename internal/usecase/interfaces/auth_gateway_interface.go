package interfaces

import (
	"context"

	"depannel_dispatch/internal/domain/entities"
)

// IAuthGateway authenticates against the backing service. Login returns a
// principal carrying the issued bearer token.
type IAuthGateway interface {
	Login(ctx context.Context, email, password string) (entities.Principal, error)
	Logout(ctx context.Context, p entities.Principal) error
}

package interfaces

import (
	"context"

	"depannel_dispatch/internal/domain/entities"
)

// IQuoteGateway abstracts quote persistence at the backing service.
// Implementations must not trust a Total read from the wire.
type IQuoteGateway interface {
	ListByIntervention(ctx context.Context, p entities.Principal, interventionID string) ([]entities.Quote, error)
	Create(ctx context.Context, p entities.Principal, q entities.Quote) (entities.Quote, error)
	Update(ctx context.Context, p entities.Principal, q entities.Quote) (entities.Quote, error)
	Delete(ctx context.Context, p entities.Principal, id string) error
}

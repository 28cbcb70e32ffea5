package interfaces

import (
	"context"

	"depannel_dispatch/internal/domain/entities"
)

// IInterventionViewRepository stores the last server-confirmed record of
// each intervention. It never holds speculative state.
//
// Get returns a zero Intervention (empty ID) when the record is unknown.
type IInterventionViewRepository interface {
	Get(ctx context.Context, id string) (entities.Intervention, error)
	List(ctx context.Context) ([]entities.Intervention, error)
	Put(ctx context.Context, iv entities.Intervention) error
}

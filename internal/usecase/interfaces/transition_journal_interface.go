package interfaces

import (
	"context"

	"depannel_dispatch/internal/domain/entities"
)

// ITransitionJournal is the append-only log of transition attempts.
type ITransitionJournal interface {
	Record(ctx context.Context, rec entities.TransitionRecord) error
	ListByIntervention(ctx context.Context, interventionID string, limit int) ([]entities.TransitionRecord, error)
}

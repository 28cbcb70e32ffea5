package repository

import (
	"context"
	"sync"

	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/usecase/interfaces"
)

// InterventionMemoryRepository is the in-process view store. It applies
// the same ordering rule as the DynamoDB store: a record older than the
// stored one is ignored. Records without UpdatedAt always overwrite.
type InterventionMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Intervention
}

var _ interfaces.IInterventionViewRepository = (*InterventionMemoryRepository)(nil)

func NewInterventionMemoryRepository() *InterventionMemoryRepository {
	return &InterventionMemoryRepository{items: make(map[string]entities.Intervention)}
}

func (r *InterventionMemoryRepository) Get(_ context.Context, id string) (entities.Intervention, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *InterventionMemoryRepository) List(_ context.Context) ([]entities.Intervention, error) {
	r.mu.RLock()
	out := make([]entities.Intervention, 0, len(r.items))
	for _, iv := range r.items {
		out = append(out, iv)
	}
	r.mu.RUnlock()
	sortByCreatedAt(out)
	return out, nil
}

func (r *InterventionMemoryRepository) Put(_ context.Context, iv entities.Intervention) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.items[iv.ID]; ok && !iv.UpdatedAt.IsZero() && cur.UpdatedAt.After(iv.UpdatedAt) {
		return nil
	}
	r.items[iv.ID] = iv
	return nil
}

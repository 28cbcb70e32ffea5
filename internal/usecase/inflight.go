package usecase

import (
	"sync"
	"time"
)

// inflightRegistry tracks interventions with an outstanding mutation and
// the time of the last locally committed transition per record.
type inflightRegistry struct {
	mu        sync.Mutex
	pending   map[string]struct{}
	committed map[string]time.Time
}

func newInflightRegistry() *inflightRegistry {
	return &inflightRegistry{
		pending:   make(map[string]struct{}),
		committed: make(map[string]time.Time),
	}
}

// acquire marks id as in flight. It returns false when a mutation on id is
// already outstanding.
func (r *inflightRegistry) acquire(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, busy := r.pending[id]; busy {
		return false
	}
	r.pending[id] = struct{}{}
	return true
}

func (r *inflightRegistry) release(id string) {
	r.mu.Lock()
	delete(r.pending, id)
	r.mu.Unlock()
}

func (r *inflightRegistry) markCommitted(id string, at time.Time) {
	r.mu.Lock()
	r.committed[id] = at
	r.mu.Unlock()
}

// claim marks id as in flight for a poll result fetched at fetchedAt. It
// returns false, leaving id untouched, when a mutation is outstanding or one
// was committed after the fetch started. A successful claim is released with
// release.
func (r *inflightRegistry) claim(id string, fetchedAt time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, busy := r.pending[id]; busy {
		return false
	}
	if at, ok := r.committed[id]; ok && !at.Before(fetchedAt) {
		return false
	}
	r.pending[id] = struct{}{}
	return true
}

// prune drops commit marks older than before.
func (r *inflightRegistry) prune(before time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, at := range r.committed {
		if at.Before(before) {
			delete(r.committed, id)
		}
	}
}

func (r *inflightRegistry) inFlight(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, busy := r.pending[id]
	return busy
}

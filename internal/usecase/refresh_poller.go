package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/domain/lifecycle"
)

// DefaultPollInterval is the refresh cadence used when none is configured.
const DefaultPollInterval = 30 * time.Second

// Sync refreshes the view from the backing service. Records with a mutation
// in flight, or committed locally after the fetch started, keep their local
// state for this cycle. While a record is merged it counts as in flight, so
// a concurrent Apply on it is rejected rather than overwritten.
func (u *InterventionUseCase) Sync(ctx context.Context, p entities.Principal) (SyncResult, error) {
	return u.sync(ctx, p, true)
}

func (u *InterventionUseCase) sync(ctx context.Context, p entities.Principal, notify bool) (SyncResult, error) {
	fetchedAt := u.now()
	started := time.Now()

	list, err := u.gateway.ListInterventions(ctx, p)
	if err != nil {
		if u.metrics != nil {
			u.metrics.ObservePoll("failed", 0, 0)
		}
		return SyncResult{}, err
	}

	// the first cycle only primes the view
	first := !u.primed.Load()
	res := SyncResult{Fetched: len(list)}
	var events []entities.Notification
	for _, polled := range list {
		if polled.ID == "" {
			continue
		}
		if !u.inflight.claim(polled.ID, fetchedAt) {
			res.Skipped++
			continue
		}
		local, merged, err := u.adopt(ctx, polled)
		u.inflight.release(polled.ID)
		if err != nil {
			continue
		}
		res.Adopted++
		if notify && !first {
			work := u.pendingWork(local, merged)
			res.NewWork += len(work)
			events = append(events, work...)
		}
	}
	u.primed.Store(true)
	u.inflight.prune(fetchedAt)
	u.publish(ctx, events)

	res.Duration = time.Since(started)
	if u.metrics != nil {
		u.metrics.ObservePoll("ok", res.Adopted, res.Skipped)
	}
	return res, nil
}

// adopt merges one polled record into the view. The caller holds the
// record's in-flight claim so no transition can commit in between.
func (u *InterventionUseCase) adopt(ctx context.Context, polled entities.Intervention) (entities.Intervention, entities.Intervention, error) {
	local, err := u.view.Get(ctx, polled.ID)
	if err != nil {
		log.Printf("[intervention][poller] view read failed id=%s err=%v", polled.ID, err)
		return entities.Intervention{}, entities.Intervention{}, err
	}
	merged := lifecycle.Normalize(polled)
	if local.ID != "" {
		merged = lifecycle.Refresh(local, polled)
	}
	if err := u.view.Put(ctx, merged); err != nil {
		log.Printf("[intervention][poller] view write failed id=%s err=%v", polled.ID, err)
		return entities.Intervention{}, entities.Intervention{}, err
	}
	return local, merged, nil
}

// Poller drives InterventionUseCase.Sync at a fixed interval with its own
// service principal.
type Poller struct {
	uc        IInterventionUseCase
	principal entities.Principal
	interval  time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewPoller(uc IInterventionUseCase, principal entities.Principal, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{uc: uc, principal: principal, interval: interval}
}

// Start runs one cycle immediately and then one per interval until Stop is
// called or ctx is done. Calling Start twice is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}
	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})
	go p.loop(ctx, p.done)
	log.Printf("[intervention][poller] started interval=%s principal=%s", p.interval, p.principal.UserID)
}

// Stop halts the loop and waits for the running cycle to return.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
	log.Printf("[intervention][poller] stopped")
}

func (p *Poller) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.RunOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single refresh cycle. Errors are logged; the next
// cycle retries.
func (p *Poller) RunOnce(ctx context.Context) (SyncResult, error) {
	res, err := p.uc.Sync(ctx, p.principal)
	if err != nil {
		log.Printf("[intervention][poller] cycle failed err=%v", err)
		return res, err
	}
	log.Printf("[intervention][poller] cycle ok fetched=%d adopted=%d skipped=%d new_work=%d took=%s",
		res.Fetched, res.Adopted, res.Skipped, res.NewWork, res.Duration)
	return res, nil
}

// Package notification fans confirmed-transition alerts out to connected
// clients. Audiences are AudienceManagers or entities.AgentAudience(id).
package notification

import (
	"context"
	"sync"

	"depannel_dispatch/internal/domain/entities"
)

const subscriberBuffer = 16

// IBroker routes notifications to the subscribers of an audience. Publish
// never blocks on a slow subscriber; its events are dropped instead.
type IBroker interface {
	Subscribe(audience string) chan entities.Notification
	Unsubscribe(audience string, ch chan entities.Notification)
	Publish(ctx context.Context, n entities.Notification) error
}

// Broker is the in-process IBroker.
type Broker struct {
	mu   sync.Mutex
	subs map[string]map[chan entities.Notification]struct{}
}

var _ IBroker = (*Broker)(nil)

func NewBroker() *Broker {
	return &Broker{subs: map[string]map[chan entities.Notification]struct{}{}}
}

func (b *Broker) Subscribe(audience string) chan entities.Notification {
	ch := make(chan entities.Notification, subscriberBuffer)
	b.mu.Lock()
	if b.subs[audience] == nil {
		b.subs[audience] = map[chan entities.Notification]struct{}{}
	}
	b.subs[audience][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *Broker) Unsubscribe(audience string, ch chan entities.Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()
	m := b.subs[audience]
	if m == nil {
		return
	}
	if _, ok := m[ch]; !ok {
		return
	}
	delete(m, ch)
	if len(m) == 0 {
		delete(b.subs, audience)
	}
	close(ch)
}

func (b *Broker) Publish(_ context.Context, n entities.Notification) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs[n.Audience] {
		select {
		case ch <- n:
		default:
		}
	}
	return nil
}

// Subscribers reports the number of live subscriptions for audience.
func (b *Broker) Subscribers(audience string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[audience])
}

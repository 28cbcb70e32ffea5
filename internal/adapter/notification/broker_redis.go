package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"depannel_dispatch/internal/domain/entities"

	redis "github.com/redis/go-redis/v9"
)

const redisChannelPrefix = "depannel:notifications:"

// RedisBroker implements IBroker over Redis Pub/Sub so that every API
// replica delivers alerts raised by any other.
type RedisBroker struct {
	rdb *redis.Client

	mu   sync.Mutex
	subs map[chan entities.Notification]*redis.PubSub
}

var _ IBroker = (*RedisBroker)(nil)

func NewRedisBroker(rdb *redis.Client) *RedisBroker {
	return &RedisBroker{rdb: rdb, subs: map[chan entities.Notification]*redis.PubSub{}}
}

func (b *RedisBroker) Subscribe(audience string) chan entities.Notification {
	ch := make(chan entities.Notification, subscriberBuffer)
	ctx := context.Background()
	ps := b.rdb.Subscribe(ctx, b.chanName(audience))
	// wait for the subscription confirmation
	if _, err := ps.Receive(ctx); err != nil {
		log.Printf("[notification][redis] subscribe failed audience=%s err=%v", audience, err)
	}

	b.mu.Lock()
	b.subs[ch] = ps
	b.mu.Unlock()

	go func() {
		defer close(ch)
		for msg := range ps.Channel() {
			var n entities.Notification
			if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
				continue
			}
			select {
			case ch <- n:
			default:
			}
		}
	}()
	return ch
}

// Unsubscribe closes the underlying PubSub; ch is closed once its reader
// goroutine drains.
func (b *RedisBroker) Unsubscribe(_ string, ch chan entities.Notification) {
	b.mu.Lock()
	ps, ok := b.subs[ch]
	delete(b.subs, ch)
	b.mu.Unlock()
	if ok {
		_ = ps.Close()
	}
}

func (b *RedisBroker) Publish(ctx context.Context, n entities.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	if err := b.rdb.Publish(ctx, b.chanName(n.Audience), data).Err(); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}

func (b *RedisBroker) chanName(audience string) string { return redisChannelPrefix + audience }

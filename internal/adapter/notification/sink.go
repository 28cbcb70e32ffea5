package notification

import (
	"context"
	"errors"
	"log"
	"time"

	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/usecase/interfaces"
)

const publishTimeout = 2 * time.Second

// Sink adapts an IBroker to the use-case notification port.
type Sink struct {
	broker IBroker
}

var _ interfaces.INotificationSink = (*Sink)(nil)

func NewSink(broker IBroker) *Sink {
	return &Sink{broker: broker}
}

func (s *Sink) Publish(ctx context.Context, n entities.Notification) error {
	if n.Audience == "" {
		return errors.New("notification audience is required")
	}
	pctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := s.broker.Publish(pctx, n); err != nil {
		return err
	}
	log.Printf("[notification][sink] published type=%s audience=%s intervention=%s", n.Type, n.Audience, n.InterventionID)
	return nil
}

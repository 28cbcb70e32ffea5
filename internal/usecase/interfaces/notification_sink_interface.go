package interfaces

import (
	"context"

	"depannel_dispatch/internal/domain/entities"
)

// INotificationSink receives user-facing alerts. Delivery to devices is
// the sink's concern.
type INotificationSink interface {
	Publish(ctx context.Context, n entities.Notification) error
}

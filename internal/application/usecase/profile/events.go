package profile

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/dev-network/adapters/event"
	"github.com/khoahotran/dev-network/pkg/logger"
)

// EventPublisher is what the profile use cases need from the kafka producer.
type EventPublisher interface {
	PublishProfileEvent(ctx context.Context, payload event.ProfileEventPayload) error
}

// publishProfileEvent fires the event in the background; a broker failure is
// logged and never surfaced to the caller.
func publishProfileEvent(publisher EventPublisher, log logger.Logger, eventType string, ownerID uuid.UUID) {
	go func() {
		err := publisher.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType: eventType,
			OwnerID:   ownerID,
		})
		if err != nil {
			log.Warn("failed to publish profile event",
				zap.String("event_type", eventType),
				zap.String("owner_id", ownerID.String()),
				zap.Error(err))
		}
	}()
}

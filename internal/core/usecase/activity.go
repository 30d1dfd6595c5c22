package usecase

import (
	"context"
	"time"

	"github.com/Stalyer/six-cities/internal/contextkeys"
	"github.com/Stalyer/six-cities/internal/core/domain"
	"github.com/Stalyer/six-cities/internal/core/port"
)

// publishActivity отправляет событие, если публикатор настроен. Ошибка публикации только логируется.
func publishActivity(ctx context.Context, publisher port.ActivityPublisherPort, event domain.ActivityEvent) {
	if publisher == nil {
		return
	}
	event.TraceID = contextkeys.TraceIDFromContext(ctx)
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	if err := publisher.Publish(ctx, event); err != nil {
		contextkeys.LoggerFromContext(ctx).Warn("Failed to publish activity event", port.Fields{
			"event_type": event.Type,
			"error":      err.Error(),
		})
	}
}

package port

import (
	"context"

	"github.com/Stalyer/six-cities/internal/core/domain"
)

// ActivityPublisherPort - контракт для публикации пользовательских событий во внешнюю шину.
type ActivityPublisherPort interface {
	Publish(ctx context.Context, event domain.ActivityEvent) error
}

package port

import (
	"context"

	"github.com/Stalyer/six-cities/internal/core/domain"
)

// OffersAPIPort - контракт клиента удаленного API для чтения предложений.
// Токен авторизации, если он есть, берется из контекста.
type OffersAPIPort interface {
	FetchOffers(ctx context.Context) ([]domain.Offer, error)
	// FetchOffer возвращает domain.ErrNotFound, если предложения с таким id нет.
	FetchOffer(ctx context.Context, offerID int) (*domain.Offer, error)
	FetchNearbyOffers(ctx context.Context, offerID int) ([]domain.Offer, error)
}

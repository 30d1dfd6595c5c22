package port

import (
	"context"

	"github.com/Stalyer/six-cities/internal/core/domain"
)

type FavoritesAPIPort interface {
	FetchFavorites(ctx context.Context) ([]domain.Offer, error)
	// ChangeFavoriteStatus выставляет флаг избранного и возвращает обновленное предложение.
	ChangeFavoriteStatus(ctx context.Context, offerID int, isFavorite bool) (*domain.Offer, error)
}

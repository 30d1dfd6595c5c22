package usecases_port

import (
	"context"

	"github.com/Stalyer/six-cities/internal/core/domain"
	"github.com/Stalyer/six-cities/internal/core/store"
)

type FetchFavoritesUseCasePort interface {
	Execute(ctx context.Context, st *store.Store) error
}

type ToggleFavoriteUseCasePort interface {
	// isFavorite - текущее значение флага, которое нужно инвертировать
	Execute(ctx context.Context, st *store.Store, offerID int, isFavorite bool) (*domain.Offer, error)
}

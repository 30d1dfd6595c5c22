package usecase

import (
	"context"
	"fmt"

	"github.com/Stalyer/six-cities/internal/contextkeys"
	"github.com/Stalyer/six-cities/internal/core/domain"
	"github.com/Stalyer/six-cities/internal/core/port"
	"github.com/Stalyer/six-cities/internal/core/store"
)

type FetchFavoritesUseCase struct {
	api port.FavoritesAPIPort
}

func NewFetchFavoritesUseCase(api port.FavoritesAPIPort) *FetchFavoritesUseCase {
	return &FetchFavoritesUseCase{api: api}
}

func (uc *FetchFavoritesUseCase) Execute(ctx context.Context, st *store.Store) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "FetchFavorites",
	})

	if !store.IsAuthorized(st.GetState()) {
		return domain.ErrNotAuthorized
	}

	st.Dispatch(store.SetFavoritesLoading{Loading: true})

	offers, err := uc.api.FetchFavorites(ctx)
	if err != nil {
		st.Dispatch(store.SetFavoritesLoading{Loading: false})
		ucLogger.Error("Failed to fetch favorites", err, nil)
		return fmt.Errorf("failed to fetch favorites: %w", err)
	}

	st.Dispatch(store.LoadFavorites{Offers: offers})
	ucLogger.Info("Use case finished successfully", port.Fields{"favorites_count": len(offers)})
	return nil
}

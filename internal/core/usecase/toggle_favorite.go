package usecase

import (
	"context"
	"fmt"

	"github.com/Stalyer/six-cities/internal/contextkeys"
	"github.com/Stalyer/six-cities/internal/core/domain"
	"github.com/Stalyer/six-cities/internal/core/port"
	"github.com/Stalyer/six-cities/internal/core/store"
)

type ToggleFavoriteUseCase struct {
	api       port.FavoritesAPIPort
	publisher port.ActivityPublisherPort
}

func NewToggleFavoriteUseCase(api port.FavoritesAPIPort, publisher port.ActivityPublisherPort) *ToggleFavoriteUseCase {
	return &ToggleFavoriteUseCase{api: api, publisher: publisher}
}

// Execute инвертирует флаг избранного: isFavorite - текущее значение флага.
// Неавторизованный пользователь получает domain.ErrNotAuthorized, запрос к API не выполняется.
// При ошибке API состояние не меняется.
func (uc *ToggleFavoriteUseCase) Execute(ctx context.Context, st *store.Store, offerID int, isFavorite bool) (*domain.Offer, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":     "ToggleFavorite",
		"offer_id":     offerID,
		"was_favorite": isFavorite,
	})

	if !store.IsAuthorized(st.GetState()) {
		ucLogger.Info("Unauthorized user tried to change favorites", nil)
		return nil, domain.ErrNotAuthorized
	}

	offer, err := uc.api.ChangeFavoriteStatus(ctx, offerID, !isFavorite)
	if err != nil {
		ucLogger.Error("Failed to change favorite status", err, nil)
		return nil, fmt.Errorf("failed to change favorite status: %w", err)
	}

	st.Dispatch(store.UpdateOffer{Offer: *offer})

	var email string
	if user := store.GetUser(st.GetState()); user != nil {
		email = user.Email
	}
	publishActivity(ctx, uc.publisher, domain.ActivityEvent{
		Type:       domain.ActivityFavoriteToggled,
		OfferID:    offerID,
		IsFavorite: offer.IsFavorite,
		UserEmail:  email,
	})

	ucLogger.Info("Use case finished successfully", port.Fields{"is_favorite": offer.IsFavorite})
	return offer, nil
}

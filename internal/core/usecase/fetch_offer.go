package usecase

import (
	"context"
	"fmt"

	"github.com/Stalyer/six-cities/internal/contextkeys"
	"github.com/Stalyer/six-cities/internal/core/domain"
	"github.com/Stalyer/six-cities/internal/core/port"
	"github.com/Stalyer/six-cities/internal/core/store"
)

type FetchOfferUseCase struct {
	api port.OffersAPIPort
}

func NewFetchOfferUseCase(api port.OffersAPIPort) *FetchOfferUseCase {
	return &FetchOfferUseCase{api: api}
}

// Execute запрашивает предложение для поколения generation.
// При любой ошибке в стор записывается пустое предложение - страница покажет "не найдено".
func (uc *FetchOfferUseCase) Execute(ctx context.Context, st *store.Store, generation uint64, offerID int) (*domain.Offer, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "FetchOffer",
		"offer_id":   offerID,
		"generation": generation,
	})

	offer, err := uc.api.FetchOffer(ctx, offerID)
	if err != nil {
		st.Dispatch(store.LoadOffer{Generation: generation, Offer: nil})
		ucLogger.Warn("Offer is not available", port.Fields{"error": err.Error()})
		return nil, fmt.Errorf("failed to fetch offer %d: %w", offerID, err)
	}

	st.Dispatch(store.LoadOffer{Generation: generation, Offer: offer})
	ucLogger.Debug("Offer loaded", nil)
	return offer, nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/Stalyer/six-cities/internal/contextkeys"
	"github.com/Stalyer/six-cities/internal/core/port"
	"github.com/Stalyer/six-cities/internal/core/store"
)

type FetchNearbyOffersUseCase struct {
	api port.OffersAPIPort
}

func NewFetchNearbyOffersUseCase(api port.OffersAPIPort) *FetchNearbyOffersUseCase {
	return &FetchNearbyOffersUseCase{api: api}
}

func (uc *FetchNearbyOffersUseCase) Execute(ctx context.Context, st *store.Store, generation uint64, offerID int) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "FetchNearbyOffers",
		"offer_id":   offerID,
		"generation": generation,
	})

	offers, err := uc.api.FetchNearbyOffers(ctx, offerID)
	if err != nil {
		ucLogger.Error("Failed to fetch nearby offers", err, nil)
		return fmt.Errorf("failed to fetch nearby offers: %w", err)
	}

	st.Dispatch(store.LoadNearbyOffers{Generation: generation, Offers: offers})
	ucLogger.Debug("Nearby offers loaded", port.Fields{"offers_count": len(offers)})
	return nil
}

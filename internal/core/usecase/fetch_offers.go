package usecase

import (
	"context"
	"fmt"

	"github.com/Stalyer/six-cities/internal/contextkeys"
	"github.com/Stalyer/six-cities/internal/core/port"
	"github.com/Stalyer/six-cities/internal/core/store"
)

type FetchOffersUseCase struct {
	api port.OffersAPIPort
}

func NewFetchOffersUseCase(api port.OffersAPIPort) *FetchOffersUseCase {
	return &FetchOffersUseCase{api: api}
}

// Execute загружает весь список предложений и заменяет им срез Data.
func (uc *FetchOffersUseCase) Execute(ctx context.Context, st *store.Store) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "FetchOffers",
	})
	ucLogger.Debug("Use case started", nil)

	st.Dispatch(store.SetOffersLoading{Loading: true})

	offers, err := uc.api.FetchOffers(ctx)
	if err != nil {
		st.Dispatch(store.SetOffersLoading{Loading: false})
		ucLogger.Error("Failed to fetch offers", err, nil)
		return fmt.Errorf("failed to fetch offers: %w", err)
	}

	st.Dispatch(store.LoadOffers{Offers: offers})

	ucLogger.Info("Use case finished successfully", port.Fields{"offers_count": len(offers)})
	return nil
}

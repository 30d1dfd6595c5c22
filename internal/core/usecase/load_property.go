package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/Stalyer/six-cities/internal/contextkeys"
	"github.com/Stalyer/six-cities/internal/core/port"
	"github.com/Stalyer/six-cities/internal/core/store"
)

// LoadPropertyUseCase - загрузка данных страницы предложения:
// сначала само предложение, и только если оно нашлось - соседние предложения и отзывы (параллельно).
type LoadPropertyUseCase struct {
	fetchOffer   *FetchOfferUseCase
	fetchNearby  *FetchNearbyOffersUseCase
	fetchReviews *FetchReviewsUseCase
}

func NewLoadPropertyUseCase(
	fetchOffer *FetchOfferUseCase,
	fetchNearby *FetchNearbyOffersUseCase,
	fetchReviews *FetchReviewsUseCase,
) *LoadPropertyUseCase {
	return &LoadPropertyUseCase{
		fetchOffer:   fetchOffer,
		fetchNearby:  fetchNearby,
		fetchReviews: fetchReviews,
	}
}

// Execute возвращает ошибку основного запроса как есть (errors.Is(err, domain.ErrNotFound) работает),
// а ошибки зависимых запросов объединяет через errors.Join.
// Новый вызов для того же стора отменяет предыдущий и делает его результаты устаревшими.
func (uc *LoadPropertyUseCase) Execute(ctx context.Context, st *store.Store, offerID int) error {
	loadCtx, generation := st.StartOfferLoad(ctx, offerID)
	defer st.FinishOfferLoad(generation)

	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "LoadProperty",
		"offer_id":   offerID,
		"generation": generation,
	})
	ucLogger.Info("Use case started", nil)

	if _, err := uc.fetchOffer.Execute(loadCtx, st, generation, offerID); err != nil {
		return err
	}

	var (
		wg                    sync.WaitGroup
		nearbyErr, reviewsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		nearbyErr = uc.fetchNearby.Execute(loadCtx, st, generation, offerID)
	}()
	go func() {
		defer wg.Done()
		reviewsErr = uc.fetchReviews.Execute(loadCtx, st, generation, offerID)
	}()
	wg.Wait()

	if err := errors.Join(nearbyErr, reviewsErr); err != nil {
		ucLogger.Warn("Property loaded partially", port.Fields{"error": err.Error()})
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

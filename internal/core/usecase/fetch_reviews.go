package usecase

import (
	"context"
	"fmt"

	"github.com/Stalyer/six-cities/internal/contextkeys"
	"github.com/Stalyer/six-cities/internal/core/port"
	"github.com/Stalyer/six-cities/internal/core/store"
)

type FetchReviewsUseCase struct {
	api port.ReviewsAPIPort
}

func NewFetchReviewsUseCase(api port.ReviewsAPIPort) *FetchReviewsUseCase {
	return &FetchReviewsUseCase{api: api}
}

func (uc *FetchReviewsUseCase) Execute(ctx context.Context, st *store.Store, generation uint64, offerID int) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "FetchReviews",
		"offer_id":   offerID,
		"generation": generation,
	})

	reviews, err := uc.api.FetchReviews(ctx, offerID)
	if err != nil {
		ucLogger.Error("Failed to fetch reviews", err, nil)
		return fmt.Errorf("failed to fetch reviews: %w", err)
	}

	st.Dispatch(store.LoadReviews{Generation: generation, Reviews: reviews})
	ucLogger.Debug("Reviews loaded", port.Fields{"reviews_count": len(reviews)})
	return nil
}

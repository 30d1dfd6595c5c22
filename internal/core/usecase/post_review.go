package usecase

import (
	"context"
	"fmt"

	"github.com/Stalyer/six-cities/internal/contextkeys"
	"github.com/Stalyer/six-cities/internal/core/domain"
	"github.com/Stalyer/six-cities/internal/core/port"
	"github.com/Stalyer/six-cities/internal/core/store"
)

type PostReviewUseCase struct {
	api       port.ReviewsAPIPort
	publisher port.ActivityPublisherPort
}

func NewPostReviewUseCase(api port.ReviewsAPIPort, publisher port.ActivityPublisherPort) *PostReviewUseCase {
	return &PostReviewUseCase{api: api, publisher: publisher}
}

func (uc *PostReviewUseCase) Execute(ctx context.Context, st *store.Store, review domain.NewReview) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "PostReview",
		"offer_id": review.OfferID,
		"rating":   review.Rating,
	})

	if !store.IsAuthorized(st.GetState()) {
		return domain.ErrNotAuthorized
	}
	if err := review.Validate(); err != nil {
		ucLogger.Warn("Review rejected by validation", nil)
		return err
	}

	st.Dispatch(store.SetReviewSending{Sending: true})
	reviews, err := uc.api.PostReview(ctx, review)
	st.Dispatch(store.SetReviewSending{Sending: false})
	if err != nil {
		ucLogger.Error("Failed to post review", err, nil)
		return fmt.Errorf("failed to post review: %w", err)
	}

	st.Dispatch(store.UpdateReviews{OfferID: review.OfferID, Reviews: reviews})

	var email string
	if user := store.GetUser(st.GetState()); user != nil {
		email = user.Email
	}
	publishActivity(ctx, uc.publisher, domain.ActivityEvent{
		Type:      domain.ActivityReviewPosted,
		OfferID:   review.OfferID,
		UserEmail: email,
	})

	ucLogger.Info("Use case finished successfully", port.Fields{"reviews_count": len(reviews)})
	return nil
}

package port

import (
	"context"

	"github.com/Stalyer/six-cities/internal/core/domain"
)

type ReviewsAPIPort interface {
	FetchReviews(ctx context.Context, offerID int) ([]domain.Review, error)
	// PostReview возвращает актуальный список отзывов к предложению.
	PostReview(ctx context.Context, review domain.NewReview) ([]domain.Review, error)
}

package api_client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Stalyer/six-cities/internal/contracts"
	"github.com/Stalyer/six-cities/internal/core/domain"
	"github.com/Stalyer/six-cities/internal/core/port"
)

// FetchReviews - GET /comments/{id}
func (c *SixCitiesAPIClient) FetchReviews(ctx context.Context, offerID int) ([]domain.Review, error) {
	body, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/comments/%d", offerID), nil)
	if err != nil {
		c.logger(ctx, "FetchReviews").Error("Failed to fetch reviews", err, port.Fields{"offer_id": offerID})
		return nil, err
	}

	var dtos []reviewDTO
	if err := decode(ctx, contracts.ReviewsResponse, body, &dtos); err != nil {
		return nil, err
	}
	return toDomainReviews(offerID, dtos), nil
}

// PostReview - POST /comments/{id}. Сервер отвечает полным списком отзывов.
func (c *SixCitiesAPIClient) PostReview(ctx context.Context, review domain.NewReview) ([]domain.Review, error) {
	path := fmt.Sprintf("/comments/%d", review.OfferID)
	body, err := c.doRequest(ctx, http.MethodPost, path, postReviewRequest{
		Comment: review.Comment,
		Rating:  review.Rating,
	})
	if err != nil {
		c.logger(ctx, "PostReview").Error("Failed to post review", err, port.Fields{"offer_id": review.OfferID})
		return nil, err
	}

	var dtos []reviewDTO
	if err := decode(ctx, contracts.ReviewsResponse, body, &dtos); err != nil {
		return nil, err
	}
	return toDomainReviews(review.OfferID, dtos), nil
}

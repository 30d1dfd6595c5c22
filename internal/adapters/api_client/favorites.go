package api_client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Stalyer/six-cities/internal/contracts"
	"github.com/Stalyer/six-cities/internal/core/domain"
	"github.com/Stalyer/six-cities/internal/core/port"
)

// FetchFavorites - GET /favorite
func (c *SixCitiesAPIClient) FetchFavorites(ctx context.Context) ([]domain.Offer, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/favorite", nil)
	if err != nil {
		c.logger(ctx, "FetchFavorites").Error("Failed to fetch favorites", err, nil)
		return nil, err
	}

	var dtos []offerDTO
	if err := decode(ctx, contracts.OffersResponse, body, &dtos); err != nil {
		return nil, err
	}
	return toDomainOffers(dtos), nil
}

// ChangeFavoriteStatus - POST /favorite/{id}/{status}, где status 1 - добавить, 0 - убрать.
func (c *SixCitiesAPIClient) ChangeFavoriteStatus(ctx context.Context, offerID int, isFavorite bool) (*domain.Offer, error) {
	status := 0
	if isFavorite {
		status = 1
	}

	body, err := c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/favorite/%d/%d", offerID, status), nil)
	if err != nil {
		c.logger(ctx, "ChangeFavoriteStatus").Error("Failed to change favorite status", err, port.Fields{
			"offer_id": offerID,
			"status":   status,
		})
		return nil, err
	}

	var dto offerDTO
	if err := decode(ctx, contracts.OfferResponse, body, &dto); err != nil {
		return nil, err
	}
	offer := toDomainOffer(dto)
	return &offer, nil
}

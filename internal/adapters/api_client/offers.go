package api_client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Stalyer/six-cities/internal/contracts"
	"github.com/Stalyer/six-cities/internal/core/domain"
	"github.com/Stalyer/six-cities/internal/core/port"
)

// FetchOffers - GET /hotels
func (c *SixCitiesAPIClient) FetchOffers(ctx context.Context) ([]domain.Offer, error) {
	clientLogger := c.logger(ctx, "FetchOffers")

	body, err := c.doRequest(ctx, http.MethodGet, "/hotels", nil)
	if err != nil {
		clientLogger.Error("Failed to fetch offers", err, nil)
		return nil, err
	}

	var dtos []offerDTO
	if err := decode(ctx, contracts.OffersResponse, body, &dtos); err != nil {
		return nil, err
	}

	clientLogger.Debug("Offers received", port.Fields{"offers_count": len(dtos)})
	return toDomainOffers(dtos), nil
}

// FetchOffer - GET /hotels/{id}
func (c *SixCitiesAPIClient) FetchOffer(ctx context.Context, offerID int) (*domain.Offer, error) {
	body, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/hotels/%d", offerID), nil)
	if err != nil {
		c.logger(ctx, "FetchOffer").Warn("Failed to fetch offer", port.Fields{"offer_id": offerID, "error": err.Error()})
		return nil, err
	}

	var dto offerDTO
	if err := decode(ctx, contracts.OfferResponse, body, &dto); err != nil {
		return nil, err
	}

	offer := toDomainOffer(dto)
	return &offer, nil
}

// FetchNearbyOffers - GET /hotels/{id}/nearby
func (c *SixCitiesAPIClient) FetchNearbyOffers(ctx context.Context, offerID int) ([]domain.Offer, error) {
	body, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/hotels/%d/nearby", offerID), nil)
	if err != nil {
		c.logger(ctx, "FetchNearbyOffers").Error("Failed to fetch nearby offers", err, port.Fields{"offer_id": offerID})
		return nil, err
	}

	var dtos []offerDTO
	if err := decode(ctx, contracts.OffersResponse, body, &dtos); err != nil {
		return nil, err
	}
	return toDomainOffers(dtos), nil
}

package api_client

import "github.com/Stalyer/six-cities/internal/core/domain"

func toDomainLocation(dto locationDTO) domain.Location {
	return domain.Location{Latitude: dto.Latitude, Longitude: dto.Longitude, Zoom: dto.Zoom}
}

func toDomainOffer(dto offerDTO) domain.Offer {
	return domain.Offer{
		ID:     dto.ID,
		Title:  dto.Title,
		Type:   domain.OfferType(dto.Type),
		Price:  dto.Price,
		Rating: dto.Rating,
		City: domain.City{
			Name:     dto.City.Name,
			Location: toDomainLocation(dto.City.Location),
		},
		Location:     toDomainLocation(dto.Location),
		PreviewImage: dto.PreviewImage,
		Images:       dto.Images,
		IsPremium:    dto.IsPremium,
		IsFavorite:   dto.IsFavorite,
		Host: domain.Host{
			ID:        dto.Host.ID,
			Name:      dto.Host.Name,
			AvatarURL: dto.Host.AvatarURL,
			IsPro:     dto.Host.IsPro,
		},
		Description: dto.Description,
		Goods:       dto.Goods,
		Bedrooms:    dto.Bedrooms,
		MaxAdults:   dto.MaxAdults,
	}
}

func toDomainOffers(dtos []offerDTO) []domain.Offer {
	result := make([]domain.Offer, len(dtos))
	for i, dto := range dtos {
		result[i] = toDomainOffer(dto)
	}
	return result
}

func toDomainReviews(offerID int, dtos []reviewDTO) []domain.Review {
	result := make([]domain.Review, len(dtos))
	for i, dto := range dtos {
		result[i] = domain.Review{
			ID:      dto.ID,
			OfferID: offerID,
			User: domain.Reviewer{
				ID:        dto.User.ID,
				Name:      dto.User.Name,
				AvatarURL: dto.User.AvatarURL,
				IsPro:     dto.User.IsPro,
			},
			Rating:  dto.Rating,
			Comment: dto.Comment,
			Date:    dto.Date,
		}
	}
	return result
}

func toDomainAuthInfo(dto authInfoDTO) *domain.AuthInfo {
	return &domain.AuthInfo{
		ID:        dto.ID,
		Email:     dto.Email,
		Name:      dto.Name,
		AvatarURL: dto.AvatarURL,
		IsPro:     dto.IsPro,
		Token:     dto.Token,
	}
}

package store

import "github.com/Stalyer/six-cities/internal/core/domain"

// UpdateOffer применяет новый флаг избранного ко всем местам, где встречается предложение с тем же id.
type UpdateOffer struct {
	Offer domain.Offer
}

func (a UpdateOffer) Reduce(state *State) {
	id, isFavorite := a.Offer.ID, a.Offer.IsFavorite

	for i := range state.Data.Offers {
		if state.Data.Offers[i].ID == id {
			state.Data.Offers[i].IsFavorite = isFavorite
		}
	}
	if state.OfferProcess.Offer != nil && state.OfferProcess.Offer.ID == id {
		state.OfferProcess.Offer.IsFavorite = isFavorite
	}
	for i := range state.OfferProcess.OffersNearby {
		if state.OfferProcess.OffersNearby[i].ID == id {
			state.OfferProcess.OffersNearby[i].IsFavorite = isFavorite
		}
	}

	idx := -1
	for i := range state.Data.Favorites {
		if state.Data.Favorites[i].ID == id {
			idx = i
			break
		}
	}
	switch {
	case isFavorite && idx < 0:
		state.Data.Favorites = append(state.Data.Favorites, a.Offer.Clone())
	case isFavorite:
		state.Data.Favorites[idx].IsFavorite = true
	case idx >= 0:
		state.Data.Favorites = append(state.Data.Favorites[:idx], state.Data.Favorites[idx+1:]...)
	}
}

package store

import "github.com/Stalyer/six-cities/internal/core/domain"

type RequireAuthorization struct {
	Status domain.AuthorizationStatus
}

func (a RequireAuthorization) Reduce(state *State) {
	state.User.AuthorizationStatus = a.Status
}

// SetUser сохраняет данные пользователя. Токен в стор не попадает, он живет в cookie.
type SetUser struct {
	User *domain.AuthInfo
}

func (a SetUser) Reduce(state *State) {
	if a.User == nil {
		state.User.User = nil
		return
	}
	u := *a.User
	u.Token = ""
	state.User.User = &u
}

// ResetUser сбрасывает пользовательский срез при выходе.
// Флаги избранного принадлежат пользователю, поэтому снимаются во всех срезах.
type ResetUser struct{}

func (ResetUser) Reduce(state *State) {
	state.User = UserProcess{AuthorizationStatus: domain.AuthorizationNoAuth}
	state.Data.Favorites = nil
	state.Data.IsFavoritesDataLoading = false
	for i := range state.Data.Offers {
		state.Data.Offers[i].IsFavorite = false
	}
	if state.OfferProcess.Offer != nil {
		state.OfferProcess.Offer.IsFavorite = false
	}
	for i := range state.OfferProcess.OffersNearby {
		state.OfferProcess.OffersNearby[i].IsFavorite = false
	}
}

package store

import "github.com/Stalyer/six-cities/internal/core/domain"

type SetOffersLoading struct {
	Loading bool
}

func (a SetOffersLoading) Reduce(state *State) {
	state.Data.IsOffersDataLoading = a.Loading
}

// LoadOffers заменяет список предложений целиком.
type LoadOffers struct {
	Offers []domain.Offer
}

func (a LoadOffers) Reduce(state *State) {
	state.Data.Offers = domain.CloneOffers(a.Offers)
	state.Data.IsOffersDataLoading = false
}

type SetFavoritesLoading struct {
	Loading bool
}

func (a SetFavoritesLoading) Reduce(state *State) {
	state.Data.IsFavoritesDataLoading = a.Loading
}

type LoadFavorites struct {
	Offers []domain.Offer
}

func (a LoadFavorites) Reduce(state *State) {
	state.Data.Favorites = domain.CloneOffers(a.Offers)
	state.Data.IsFavoritesDataLoading = false
}

// ChangeCity переключает вкладку города; неизвестные города игнорируются.
type ChangeCity struct {
	City string
}

func (a ChangeCity) Reduce(state *State) {
	if IsKnownCity(a.City) {
		state.Data.City = a.City
	}
}

type ChangeSortType struct {
	SortType SortType
}

func (a ChangeSortType) Reduce(state *State) {
	state.Data.SortType = ParseSortType(string(a.SortType))
}

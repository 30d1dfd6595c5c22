package store

import (
	"sort"

	"github.com/Stalyer/six-cities/internal/core/domain"
)

// Селекторы - чистые функции над копией состояния.

func GetAuthorizationStatus(s State) domain.AuthorizationStatus {
	return s.User.AuthorizationStatus
}

func IsAuthorized(s State) bool {
	return s.User.AuthorizationStatus == domain.AuthorizationAuth
}

func GetUser(s State) *domain.AuthInfo {
	return s.User.User
}

func GetOffers(s State) []domain.Offer {
	return s.Data.Offers
}

func GetOffersLoadingStatus(s State) bool {
	return s.Data.IsOffersDataLoading
}

func GetFavorites(s State) []domain.Offer {
	return s.Data.Favorites
}

func GetFavoritesLoadingStatus(s State) bool {
	return s.Data.IsFavoritesDataLoading
}

func GetCity(s State) string {
	return s.Data.City
}

func GetSortType(s State) SortType {
	return s.Data.SortType
}

// GetCityOffers возвращает предложения активного города в выбранном порядке.
// Для SortPopular сохраняется порядок ответа сервера.
func GetCityOffers(s State) []domain.Offer {
	result := make([]domain.Offer, 0)
	for _, o := range s.Data.Offers {
		if o.City.Name == s.Data.City {
			result = append(result, o)
		}
	}

	switch s.Data.SortType {
	case SortPriceLowToHigh:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceHighToLow:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case SortTopRated:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Rating > result[j].Rating })
	}
	return result
}

// CityGroup - предложения одного города на странице избранного.
type CityGroup struct {
	City   string
	Offers []domain.Offer
}

// GetFavoritesByCity группирует избранное по городам в порядке первого появления города.
func GetFavoritesByCity(s State) []CityGroup {
	var groups []CityGroup
	index := make(map[string]int)
	for _, o := range s.Data.Favorites {
		i, ok := index[o.City.Name]
		if !ok {
			i = len(groups)
			index[o.City.Name] = i
			groups = append(groups, CityGroup{City: o.City.Name})
		}
		groups[i].Offers = append(groups[i].Offers, o)
	}
	return groups
}

func GetOffer(s State) *domain.Offer {
	return s.OfferProcess.Offer
}

func GetRequestedOfferID(s State) int {
	return s.OfferProcess.RequestedOfferID
}

func GetOffersNearby(s State) []domain.Offer {
	nearby := s.OfferProcess.OffersNearby
	if len(nearby) > MaxNearbyOffers {
		nearby = nearby[:MaxNearbyOffers]
	}
	return nearby
}

// GetReviews возвращает не больше MaxReviews отзывов, новые сверху.
func GetReviews(s State) []domain.Review {
	reviews := append([]domain.Review(nil), s.OfferProcess.Reviews...)
	sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].Date.After(reviews[j].Date) })
	if len(reviews) > MaxReviews {
		reviews = reviews[:MaxReviews]
	}
	return reviews
}

func GetReviewsCount(s State) int {
	return len(s.OfferProcess.Reviews)
}

// GetLoadedDataStatus - true, пока основной запрос предложения не завершился.
func GetLoadedDataStatus(s State) bool {
	return s.OfferProcess.IsDataLoading
}

func GetReviewSendingStatus(s State) bool {
	return s.OfferProcess.IsReviewSending
}

func GetGeneration(s State) uint64 {
	return s.OfferProcess.Generation
}

package store

import "github.com/Stalyer/six-cities/internal/core/domain"

type UserProcess struct {
	AuthorizationStatus domain.AuthorizationStatus
	User                *domain.AuthInfo
}

// OffersData - срез со списком предложений и избранным.
type OffersData struct {
	Offers                 []domain.Offer
	IsOffersDataLoading    bool
	Favorites              []domain.Offer
	IsFavoritesDataLoading bool
	City                   string
	SortType               SortType
}

// OfferProcess - срез страницы конкретного предложения.
// Generation растет с каждым новым запросом предложения; ответы старых поколений отбрасываются.
type OfferProcess struct {
	Offer            *domain.Offer
	OffersNearby     []domain.Offer
	Reviews          []domain.Review
	IsDataLoading    bool
	IsReviewSending  bool
	RequestedOfferID int
	Generation       uint64
}

type State struct {
	User         UserProcess
	Data         OffersData
	OfferProcess OfferProcess
}

// InitialState - состояние новой сессии.
func InitialState() State {
	return State{
		User: UserProcess{AuthorizationStatus: domain.AuthorizationUnknown},
		Data: OffersData{
			City:     DefaultCity,
			SortType: SortPopular,
		},
	}
}

// clone делает глубокую копию, чтобы селекторы не делили память со стором.
func (s State) clone() State {
	c := s
	if s.User.User != nil {
		u := *s.User.User
		c.User.User = &u
	}
	c.Data.Offers = domain.CloneOffers(s.Data.Offers)
	c.Data.Favorites = domain.CloneOffers(s.Data.Favorites)
	if s.OfferProcess.Offer != nil {
		o := s.OfferProcess.Offer.Clone()
		c.OfferProcess.Offer = &o
	}
	c.OfferProcess.OffersNearby = domain.CloneOffers(s.OfferProcess.OffersNearby)
	if s.OfferProcess.Reviews != nil {
		c.OfferProcess.Reviews = append([]domain.Review(nil), s.OfferProcess.Reviews...)
	}
	return c
}

package store

import "github.com/Stalyer/six-cities/internal/core/domain"

// RequestOffer начинает новое поколение загрузки страницы предложения.
type RequestOffer struct {
	OfferID int
}

func (a RequestOffer) Reduce(state *State) {
	state.OfferProcess = OfferProcess{
		RequestedOfferID: a.OfferID,
		IsDataLoading:    true,
		Generation:       state.OfferProcess.Generation + 1,
	}
}

// LoadOffer фиксирует результат основного запроса. Offer == nil означает, что предложение не найдено.
type LoadOffer struct {
	Generation uint64
	Offer      *domain.Offer
}

func (a LoadOffer) Reduce(state *State) {
	if a.Generation != state.OfferProcess.Generation {
		return
	}
	if a.Offer != nil {
		o := a.Offer.Clone()
		state.OfferProcess.Offer = &o
	} else {
		state.OfferProcess.Offer = nil
	}
	state.OfferProcess.IsDataLoading = false
}

type LoadNearbyOffers struct {
	Generation uint64
	Offers     []domain.Offer
}

func (a LoadNearbyOffers) Reduce(state *State) {
	if a.Generation != state.OfferProcess.Generation {
		return
	}
	state.OfferProcess.OffersNearby = domain.CloneOffers(a.Offers)
}

type LoadReviews struct {
	Generation uint64
	Reviews    []domain.Review
}

func (a LoadReviews) Reduce(state *State) {
	if a.Generation != state.OfferProcess.Generation {
		return
	}
	state.OfferProcess.Reviews = append([]domain.Review(nil), a.Reviews...)
}

type SetReviewSending struct {
	Sending bool
}

func (a SetReviewSending) Reduce(state *State) {
	state.OfferProcess.IsReviewSending = a.Sending
}

// UpdateReviews заменяет отзывы после успешной отправки, если пользователь все еще на той же странице.
type UpdateReviews struct {
	OfferID int
	Reviews []domain.Review
}

func (a UpdateReviews) Reduce(state *State) {
	if state.OfferProcess.RequestedOfferID != a.OfferID {
		return
	}
	state.OfferProcess.Reviews = append([]domain.Review(nil), a.Reviews...)
}

package web

import (
	"errors"
	"net/http"

	"github.com/Stalyer/six-cities/internal/contextkeys"
	"github.com/Stalyer/six-cities/internal/core/domain"
	"github.com/Stalyer/six-cities/internal/core/port"
	"github.com/Stalyer/six-cities/internal/core/store"
)

// JSON-ответы для скриптов страницы.

type favoriteResponse struct {
	ID         int  `json:"id"`
	IsFavorite bool `json:"isFavorite"`
}

type stateResponse struct {
	AuthorizationStatus string `json:"authorizationStatus"`
	Email               string `json:"email,omitempty"`
	City                string `json:"city"`
	SortType            string `json:"sortType"`
	OffersCount         int    `json:"offersCount"`
	FavoritesCount      int    `json:"favoritesCount"`
	RequestedOfferID    int    `json:"requestedOfferId,omitempty"`
	IsOfferLoading      bool   `json:"isOfferLoading"`
}

func (h *Handlers) APIToggleFavorite(w http.ResponseWriter, r *http.Request) {
	offerID, ok := offerIDParam(r)
	target, okStatus := favoriteStatusParam(r)
	if !ok || !okStatus {
		WriteJSONError(w, http.StatusBadRequest, "invalid offer id or status")
		return
	}

	st := storeFromContext(r.Context())
	offer, err := h.uc.ToggleFavorite.Execute(r.Context(), st, offerID, !target)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotAuthorized):
			WriteJSONError(w, http.StatusUnauthorized, "authorization required")
		case errors.Is(err, domain.ErrNotFound):
			WriteJSONError(w, http.StatusNotFound, "offer not found")
		default:
			contextkeys.LoggerFromContext(r.Context()).Error("Favorite toggle failed", err, port.Fields{"offer_id": offerID})
			WriteJSONError(w, http.StatusBadGateway, "failed to change favorite status")
		}
		return
	}

	RespondWithJSON(w, http.StatusOK, favoriteResponse{ID: offer.ID, IsFavorite: offer.IsFavorite})
}

func (h *Handlers) APIState(w http.ResponseWriter, r *http.Request) {
	state := storeFromContext(r.Context()).GetState()

	resp := stateResponse{
		AuthorizationStatus: string(store.GetAuthorizationStatus(state)),
		City:                store.GetCity(state),
		SortType:            string(store.GetSortType(state)),
		OffersCount:         len(store.GetOffers(state)),
		FavoritesCount:      len(store.GetFavorites(state)),
		RequestedOfferID:    store.GetRequestedOfferID(state),
		IsOfferLoading:      store.GetLoadedDataStatus(state),
	}
	if user := store.GetUser(state); user != nil {
		resp.Email = user.Email
	}
	RespondWithJSON(w, http.StatusOK, resp)
}

package web

import (
	"errors"
	"net/http"

	"github.com/Stalyer/six-cities/internal/contextkeys"
	"github.com/Stalyer/six-cities/internal/core/domain"
	"github.com/Stalyer/six-cities/internal/core/port"
	"github.com/Stalyer/six-cities/internal/core/store"
)

// Favorites - избранное, сгруппированное по городам. Доступно только после входа.
func (h *Handlers) Favorites(w http.ResponseWriter, r *http.Request) {
	st := storeFromContext(r.Context())

	if err := h.uc.FetchFavorites.Execute(r.Context(), st); err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			st.Dispatch(store.RequireAuthorization{Status: domain.AuthorizationNoAuth})
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		st.Notify("Failed to load favorites. Please try again later.")
	}

	view := newFavoritesView(st.GetState())
	pageClass := ""
	if view.IsEmpty {
		pageClass = "page--favorites-empty"
	}
	h.render(w, r, http.StatusOK, pageFavorites, "6 cities: favorites", pageClass, view)
}

// ToggleFavorite - форма кнопки «в закладки». {status} - новое значение флага.
// Неавторизованный пользователь отправляется на /login без запроса к API.
func (h *Handlers) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	offerID, ok := offerIDParam(r)
	target, okStatus := favoriteStatusParam(r)
	if !ok || !okStatus {
		h.NotFound(w, r)
		return
	}

	st := storeFromContext(r.Context())
	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":  "ToggleFavorite",
		"offer_id": offerID,
	})

	if _, err := h.uc.ToggleFavorite.Execute(r.Context(), st, offerID, !target); err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			if store.IsAuthorized(st.GetState()) {
				// Токен протух на стороне API.
				st.Dispatch(store.RequireAuthorization{Status: domain.AuthorizationNoAuth})
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		handlerLogger.Warn("Favorite status was not changed", port.Fields{"error": err.Error()})
		st.Notify("Failed to update favorites. Please try again.")
	}

	redirectBack(w, r, "/")
}

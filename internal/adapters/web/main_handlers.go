package web

import (
	"net/http"

	"github.com/Stalyer/six-cities/internal/contextkeys"
	"github.com/Stalyer/six-cities/internal/core/store"
)

// Main - список предложений выбранного города. ?city= и ?sort= меняют состояние сессии.
func (h *Handlers) Main(w http.ResponseWriter, r *http.Request) {
	st := storeFromContext(r.Context())
	logger := contextkeys.LoggerFromContext(r.Context())

	query := r.URL.Query()
	if city := query.Get("city"); city != "" {
		st.Dispatch(store.ChangeCity{City: city})
	}
	if sortType := query.Get("sort"); sortType != "" {
		st.Dispatch(store.ChangeSortType{SortType: store.ParseSortType(sortType)})
	}

	// Первая загрузка сессии могла не удаться.
	if len(store.GetOffers(st.GetState())) == 0 {
		if err := h.uc.FetchOffers.Execute(r.Context(), st); err != nil {
			logger.Warn("Offers are still unavailable", nil)
			st.Notify("Failed to load offers. Please try again later.")
		}
	}

	state := st.GetState()
	view := newMainView(state)
	pageClass := "page--gray page--main"
	h.render(w, r, http.StatusOK, pageMain, "6 cities", pageClass, view)
}

package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Stalyer/six-cities/internal/contextkeys"
	"github.com/Stalyer/six-cities/internal/core/domain"
	"github.com/Stalyer/six-cities/internal/core/port"
	"github.com/Stalyer/six-cities/internal/core/store"
)

const loadingRefreshSeconds = 1

// Property - страница предложения.
// Загрузка идет в фоне: если она не уложилась в propertyRenderTimeout,
// отдается экран загрузки, который сам обновится. Повторный запрос того же
// предложения, пока загрузка не закончена, снова получает экран загрузки.
// ?ready=1 показывает уже загруженные данные без нового запроса к API.
func (h *Handlers) Property(w http.ResponseWriter, r *http.Request) {
	offerID, ok := offerIDParam(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	st := storeFromContext(r.Context())
	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":  "Property",
		"offer_id": offerID,
	})

	state := st.GetState()
	if store.GetRequestedOfferID(state) == offerID {
		if store.GetLoadedDataStatus(state) {
			h.renderLoading(w, r, offerID)
			return
		}
		if r.URL.Query().Get("ready") == "1" {
			h.renderProperty(w, r, offerID)
			return
		}
	}

	// Загрузка не должна прерываться, когда запрос отдаст экран загрузки.
	loadCtx := context.WithoutCancel(r.Context())
	done := make(chan error, 1)
	go func() {
		done <- h.uc.LoadProperty.Execute(loadCtx, st, offerID)
	}()

	timer := time.NewTimer(h.propertyRenderTimeout)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			handlerLogger.Warn("Property loaded with errors", port.Fields{"error": err.Error()})
			if store.GetOffer(st.GetState()) != nil {
				st.Notify("Some property details could not be loaded.")
			}
		}
		h.renderProperty(w, r, offerID)
	case <-timer.C:
		handlerLogger.Info("Property is still loading, rendering loading view", nil)
		h.renderLoading(w, r, offerID)
	}
}

// renderProperty выводит состояние стора: предложение, экран «не найдено»
// или экран загрузки, если стор уже занят другим предложением.
func (h *Handlers) renderProperty(w http.ResponseWriter, r *http.Request, offerID int) {
	state := storeFromContext(r.Context()).GetState()

	if store.GetRequestedOfferID(state) != offerID || store.GetLoadedDataStatus(state) {
		h.renderLoading(w, r, offerID)
		return
	}

	offer := store.GetOffer(state)
	if offer == nil {
		h.NotFound(w, r)
		return
	}

	view := newPropertyView(state, *offer)
	h.render(w, r, http.StatusOK, pageProperty, fmt.Sprintf("6 cities: %s", offer.Title), "", view)
}

func (h *Handlers) renderLoading(w http.ResponseWriter, r *http.Request, offerID int) {
	view := loadingView{
		RefreshURL:     fmt.Sprintf("/offer/%d?ready=1", offerID),
		RefreshSeconds: loadingRefreshSeconds,
	}
	h.render(w, r, http.StatusOK, pageLoading, "6 cities: loading", "", view)
}

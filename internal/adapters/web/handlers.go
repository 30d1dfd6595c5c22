package web

import (
	"net/http"
	"time"

	"github.com/Stalyer/six-cities/internal/core/port/usecases_port"
	"github.com/Stalyer/six-cities/internal/core/store"
)

// UseCases - сценарии, которые вызывают обработчики страниц.
type UseCases struct {
	FetchOffers    usecases_port.FetchOffersUseCasePort
	LoadProperty   usecases_port.LoadPropertyUseCasePort
	FetchFavorites usecases_port.FetchFavoritesUseCasePort
	ToggleFavorite usecases_port.ToggleFavoriteUseCasePort
	PostReview     usecases_port.PostReviewUseCasePort
	Login          usecases_port.LoginUseCasePort
	Logout         usecases_port.LogoutUseCasePort
}

type Handlers struct {
	uc    UseCases
	views *Views

	propertyRenderTimeout time.Duration
	cookieSecure          bool
}

func NewHandlers(uc UseCases, views *Views, propertyRenderTimeout time.Duration, cookieSecure bool) *Handlers {
	return &Handlers{
		uc:                    uc,
		views:                 views,
		propertyRenderTimeout: propertyRenderTimeout,
		cookieSecure:          cookieSecure,
	}
}

// render дополняет контент данными шапки и забирает накопленные уведомления сессии.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, page, title, pageClass string, content interface{}) {
	st := storeFromContext(r.Context())
	state := st.GetState()

	layout := layoutView{
		Title:      title,
		PageClass:  pageClass,
		Authorized: store.IsAuthorized(state),
		Favorites:  len(store.GetFavorites(state)),
		Toasts:     st.TakeNotifications(),
		ShowNav:    page != pageLogin,
	}
	if user := store.GetUser(state); user != nil && layout.Authorized {
		layout.User = &userView{Email: user.Email, AvatarURL: user.AvatarURL}
	}

	h.views.Render(w, r, status, page, pageView{Layout: layout, Content: content})
}

func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, pageNotFound, "6 cities: page not found", "", nil)
}

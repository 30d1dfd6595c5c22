package web

import (
	"errors"
	"net/http"

	"github.com/Stalyer/six-cities/internal/contextkeys"
	"github.com/Stalyer/six-cities/internal/core/domain"
	"github.com/Stalyer/six-cities/internal/core/port"
	"github.com/Stalyer/six-cities/internal/core/store"
)

const invalidCredentialsMessage = "Password must contain at least one letter and one digit."

func (h *Handlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	if store.IsAuthorized(storeFromContext(r.Context()).GetState()) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, r, http.StatusOK, pageLogin, "6 cities: authorization", "page--gray page--login", loginView{})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	st := storeFromContext(r.Context())
	if store.IsAuthorized(st.GetState()) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := domain.AuthData{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	info, err := h.uc.Login.Execute(r.Context(), st, data)
	if err != nil {
		view := loginView{Email: data.Email}
		status := http.StatusUnauthorized
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			view.Error = invalidCredentialsMessage
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrBadRequest), errors.Is(err, domain.ErrNotAuthorized):
			view.Error = "Wrong email or password."
		default:
			view.Error = "Sign in failed. Please try again later."
			status = http.StatusBadGateway
		}
		h.render(w, r, status, pageLogin, "6 cities: authorization", "page--gray page--login", view)
		return
	}

	saveToken(w, info.Token, h.cookieSecure)
	contextkeys.LoggerFromContext(r.Context()).Info("User signed in", port.Fields{"email": info.Email})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout сбрасывает пользователя даже при ошибке API.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	st := storeFromContext(r.Context())
	if err := h.uc.Logout.Execute(r.Context(), st); err != nil {
		contextkeys.LoggerFromContext(r.Context()).Warn("Logout request failed", port.Fields{"error": err.Error()})
	}
	dropToken(w, h.cookieSecure)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

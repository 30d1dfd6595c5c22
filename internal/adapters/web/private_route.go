package web

import (
	"net/http"

	"github.com/Stalyer/six-cities/internal/core/store"
)

// RequireAuthorization пропускает дальше только авторизованных пользователей.
// Страницы и формы перенаправляются на /login, JSON API получает 401.
func RequireAuthorization(asJSON bool) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			st := storeFromContext(r.Context())
			if store.IsAuthorized(st.GetState()) {
				next.ServeHTTP(w, r)
				return
			}
			if asJSON {
				WriteJSONError(w, http.StatusUnauthorized, "authorization required")
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		})
	}
}

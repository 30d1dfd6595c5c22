package web

import (
	"context"
	"net/http"
	"time"

	"github.com/Stalyer/six-cities/internal/contextkeys"
	"github.com/Stalyer/six-cities/internal/core/port"
	"github.com/Stalyer/six-cities/internal/core/port/usecases_port"
	"github.com/Stalyer/six-cities/internal/core/store"
	"github.com/google/uuid"
)

const (
	sessionCookieName = "six-cities-session"
	tokenCookieName   = "six-cities-token"
)

type storeKeyType struct{}

var storeKey = storeKeyType{}

func storeFromContext(ctx context.Context) *store.Store {
	if st, ok := ctx.Value(storeKey).(*store.Store); ok {
		return st
	}
	return store.New()
}

// SessionMiddleware находит стор сессии по cookie или заводит новый.
// Новый стор сразу загружает список предложений и проверяет токен,
// так же как это происходит при старте клиентского приложения.
// Авторизованной сессии дополнительно подгружается избранное для счетчика в шапке.
type SessionMiddleware struct {
	sessions       port.SessionStoragePort
	fetchOffers    usecases_port.FetchOffersUseCasePort
	checkAuth      usecases_port.CheckAuthUseCasePort
	fetchFavorites usecases_port.FetchFavoritesUseCasePort
	cookieSecure   bool
	ttl            time.Duration
}

func NewSessionMiddleware(
	sessions port.SessionStoragePort,
	fetchOffers usecases_port.FetchOffersUseCasePort,
	checkAuth usecases_port.CheckAuthUseCasePort,
	fetchFavorites usecases_port.FetchFavoritesUseCasePort,
	cookieSecure bool,
	ttl time.Duration,
) *SessionMiddleware {
	return &SessionMiddleware{
		sessions:       sessions,
		fetchOffers:    fetchOffers,
		checkAuth:      checkAuth,
		fetchFavorites: fetchFavorites,
		cookieSecure:   cookieSecure,
		ttl:            ttl,
	}
}

func (m *SessionMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// CORS preflight не несет cookie и не должен заводить сессию.
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		if token := readToken(r); token != "" {
			ctx = contextkeys.ContextWithToken(ctx, token)
		}

		sessionID, st := m.lookup(r)
		if st == nil {
			sessionID, st = m.start(ctx)
		}
		// Хранилище продлевает TTL при каждом обращении, cookie продлевается вместе с ним.
		m.setSessionCookie(w, sessionID)

		ctx = context.WithValue(ctx, storeKey, st)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *SessionMiddleware) lookup(r *http.Request) (string, *store.Store) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", nil
	}
	st, ok := m.sessions.Get(cookie.Value)
	if !ok {
		return "", nil
	}
	return cookie.Value, st
}

func (m *SessionMiddleware) start(ctx context.Context) (string, *store.Store) {
	logger := contextkeys.LoggerFromContext(ctx)

	sessionID := uuid.NewString()
	st := store.New()
	m.sessions.Save(sessionID, st)

	if err := m.fetchOffers.Execute(ctx, st); err != nil {
		st.Notify("Failed to load offers. Please try again later.")
	}
	if err := m.checkAuth.Execute(ctx, st); err != nil {
		logger.Warn("Authorization check failed", port.Fields{"error": err.Error()})
	}
	if store.IsAuthorized(st.GetState()) {
		if err := m.fetchFavorites.Execute(ctx, st); err != nil {
			logger.Warn("Failed to load favorites", port.Fields{"error": err.Error()})
		}
	}

	logger.Info("Session started", port.Fields{
		"authorization_status": store.GetAuthorizationStatus(st.GetState()),
	})
	return sessionID, st
}

func (m *SessionMiddleware) setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func readToken(r *http.Request) string {
	cookie, err := r.Cookie(tokenCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func saveToken(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int((30 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func dropToken(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

package web

import (
	"context"
	"net/http"

	"github.com/Stalyer/six-cities/internal/core/port"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type ServerConfig struct {
	Port               string
	CORSAllowedOrigins []string
}

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

func NewServer(cfg ServerConfig, handlers *Handlers, sessions *SessionMiddleware, baseLogger port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: NewRouter(cfg, handlers, sessions, baseLogger),
		},
		logger: baseLogger,
	}
}

// NewRouter собирает маршруты приложения.
func NewRouter(cfg ServerConfig, handlers *Handlers, sessions *SessionMiddleware, baseLogger port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)
	r.Use(sessions.Handle)

	r.NotFound(handlers.NotFound)

	// --- Публичные страницы ---
	r.Get("/", handlers.Main)
	r.Get("/offer/{id}", handlers.Property)
	r.Get("/login", handlers.LoginPage)
	r.Post("/login", handlers.Login)
	r.Get("/logout", handlers.Logout)
	r.Get("/404", handlers.NotFound)

	// Кнопка избранного видна всем, неавторизованных отправляет на /login сам сценарий.
	r.Post("/favorite/{id}/{status}", handlers.ToggleFavorite)

	// --- Приватные страницы ---
	r.Group(func(r chi.Router) {
		r.Use(RequireAuthorization(false))
		r.Get("/favorites", handlers.Favorites)
		r.Post("/offer/{id}/reviews", handlers.PostReview)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Trace-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))

		r.Get("/state", handlers.APIState)
		r.Post("/favorite/{id}/{status}", handlers.APIToggleFavorite)
	})

	return r
}

func (s *Server) Start() error {
	s.logger.Info("Starting web server", port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping web server...", nil)
	return s.httpServer.Shutdown(ctx)
}

package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Stalyer/six-cities/internal/adapters/api_client"
	logger_adapter "github.com/Stalyer/six-cities/internal/adapters/logger"
	"github.com/Stalyer/six-cities/internal/adapters/rabbitmq"
	"github.com/Stalyer/six-cities/internal/adapters/session"
	"github.com/Stalyer/six-cities/internal/adapters/web"
	"github.com/Stalyer/six-cities/internal/configs"
	"github.com/Stalyer/six-cities/internal/core/port"
	"github.com/Stalyer/six-cities/internal/core/usecase"
	"github.com/fluent/fluent-logger-golang/fluent"
)

const shutdownTimeout = 10 * time.Second

// App - основная структура приложения
type App struct {
	config       *configs.Config
	webServer    *web.Server
	sessions     *session.CcacheSessionStorage
	publisher    *rabbitmq.ActivityPublisher
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

// NewApp создает и настраивает все компоненты приложения
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- Логгеры ---
	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		UseColor: true,
	})
	activeLoggers := []port.LoggerPort{stdoutLogger}

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = logger_adapter.NewFluentClient(logger_adapter.FluentConfig{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, err
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiLoggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Debug("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers),
		"fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- Исходящие адаптеры ---
	apiClient := api_client.NewSixCitiesAPIClient(appConfig.API.BaseURL, appConfig.API.Timeout)
	appLogger.Debug("API client initialized", port.Fields{"base_url": appConfig.API.BaseURL})

	// Публикация событий необязательна: без RabbitMQ сценарии работают так же.
	var (
		publisher     *rabbitmq.ActivityPublisher
		publisherPort port.ActivityPublisherPort
	)
	if appConfig.RabbitMQ.Enabled() {
		publisher, err = rabbitmq.NewActivityPublisher(rabbitmq.PublisherConfig{
			URL:          appConfig.RabbitMQ.URL,
			ExchangeName: appConfig.RabbitMQ.Exchange,
			AppID:        appConfig.AppName,
		})
		if err != nil {
			appLogger.Error("Failed to create activity publisher", err, nil)
			closeFluent(fluentClient)
			return nil, err
		}
		publisherPort = publisher
		appLogger.Info("Activity publisher connected", port.Fields{"exchange": appConfig.RabbitMQ.Exchange})
	}

	sessions := session.NewCcacheSessionStorage(appConfig.Session.MaxSize, appConfig.Session.TTL)

	// --- Сценарии ---
	fetchOffersUC := usecase.NewFetchOffersUseCase(apiClient)
	checkAuthUC := usecase.NewCheckAuthUseCase(apiClient)
	fetchFavoritesUC := usecase.NewFetchFavoritesUseCase(apiClient)
	useCases := web.UseCases{
		FetchOffers: fetchOffersUC,
		LoadProperty: usecase.NewLoadPropertyUseCase(
			usecase.NewFetchOfferUseCase(apiClient),
			usecase.NewFetchNearbyOffersUseCase(apiClient),
			usecase.NewFetchReviewsUseCase(apiClient),
		),
		FetchFavorites: fetchFavoritesUC,
		ToggleFavorite: usecase.NewToggleFavoriteUseCase(apiClient, publisherPort),
		PostReview:     usecase.NewPostReviewUseCase(apiClient, publisherPort),
		Login:          usecase.NewLoginUseCase(apiClient, fetchOffersUC, fetchFavoritesUC, publisherPort),
		Logout:         usecase.NewLogoutUseCase(apiClient, publisherPort),
	}

	// --- Входящий адаптер ---
	views, err := web.NewViews()
	if err != nil {
		closeFluent(fluentClient)
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	handlers := web.NewHandlers(useCases, views, appConfig.Web.PropertyRenderTimeout, appConfig.Web.CookieSecure)
	sessionMiddleware := web.NewSessionMiddleware(sessions, fetchOffersUC, checkAuthUC, fetchFavoritesUC, appConfig.Web.CookieSecure, appConfig.Session.TTL)
	webServer := web.NewServer(web.ServerConfig{
		Port:               appConfig.Port,
		CORSAllowedOrigins: appConfig.Web.CORSAllowedOrigins,
	}, handlers, sessionMiddleware, baseLogger)

	return &App{
		config:       appConfig,
		webServer:    webServer,
		sessions:     sessions,
		publisher:    publisher,
		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

// Run запускает веб-сервер и ждет сигнала на завершение.
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.webServer.Stop(ctx); err != nil {
			a.logger.Error("Error during web server shutdown", err, nil)
		}

		a.sessions.Close()

		if a.publisher != nil {
			if err := a.publisher.Close(); err != nil {
				a.logger.Error("Error closing activity publisher", err, nil)
			}
		}

		a.logger.Info("Application shut down gracefully.", nil)
		closeFluent(a.fluentClient)
	}()

	errorsCh := make(chan error, 1)
	go func() {
		if err := a.webServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start web server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", port.Fields{"port": a.config.Port})
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("Web server failed, shutting down", err, nil)
		return err
	}
	return nil
}

func closeFluent(client *fluent.Fluent) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		// fluent уже может быть недоступен
		fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}

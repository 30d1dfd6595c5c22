package usecase

import (
	"context"
	"fmt"

	"github.com/Stalyer/six-cities/internal/contextkeys"
	"github.com/Stalyer/six-cities/internal/core/domain"
	"github.com/Stalyer/six-cities/internal/core/port"
	"github.com/Stalyer/six-cities/internal/core/store"
)

type LoginUseCase struct {
	api            port.UserAPIPort
	fetchOffers    *FetchOffersUseCase
	fetchFavorites *FetchFavoritesUseCase
	publisher      port.ActivityPublisherPort
}

func NewLoginUseCase(
	api port.UserAPIPort,
	fetchOffers *FetchOffersUseCase,
	fetchFavorites *FetchFavoritesUseCase,
	publisher port.ActivityPublisherPort,
) *LoginUseCase {
	return &LoginUseCase{api: api, fetchOffers: fetchOffers, fetchFavorites: fetchFavorites, publisher: publisher}
}

// Execute авторизует пользователя и возвращает данные с токеном, который вызывающий сохраняет у клиента.
// После входа список предложений и избранное перезапрашиваются: флаги избранного у каждого пользователя свои.
func (uc *LoginUseCase) Execute(ctx context.Context, st *store.Store, data domain.AuthData) (*domain.AuthInfo, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "Login",
		"email":    data.Email,
	})
	ucLogger.Info("Use case started", nil)

	if err := data.Validate(); err != nil {
		ucLogger.Warn("Invalid credentials format", nil)
		return nil, err
	}

	info, err := uc.api.Login(ctx, data)
	if err != nil {
		st.Dispatch(store.RequireAuthorization{Status: domain.AuthorizationNoAuth})
		ucLogger.Error("Login request failed", err, nil)
		return nil, fmt.Errorf("failed to login: %w", err)
	}

	st.Dispatch(
		store.RequireAuthorization{Status: domain.AuthorizationAuth},
		store.SetUser{User: info},
	)

	authCtx := contextkeys.ContextWithToken(ctx, info.Token)
	if err := uc.fetchOffers.Execute(authCtx, st); err != nil {
		// Вход уже состоялся, устаревшие флаги избранного не повод его отменять.
		ucLogger.Warn("Failed to refresh offers after login", port.Fields{"error": err.Error()})
	}
	if err := uc.fetchFavorites.Execute(authCtx, st); err != nil {
		ucLogger.Warn("Failed to load favorites after login", port.Fields{"error": err.Error()})
	}

	publishActivity(ctx, uc.publisher, domain.ActivityEvent{
		Type:      domain.ActivityLoggedIn,
		UserEmail: info.Email,
	})

	ucLogger.Info("Use case finished successfully", nil)
	return info, nil
}

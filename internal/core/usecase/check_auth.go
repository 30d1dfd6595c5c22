package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Stalyer/six-cities/internal/contextkeys"
	"github.com/Stalyer/six-cities/internal/core/domain"
	"github.com/Stalyer/six-cities/internal/core/port"
	"github.com/Stalyer/six-cities/internal/core/store"
)

type CheckAuthUseCase struct {
	api port.UserAPIPort
}

func NewCheckAuthUseCase(api port.UserAPIPort) *CheckAuthUseCase {
	return &CheckAuthUseCase{api: api}
}

// Execute проверяет сохраненный токен и выставляет AUTH или NO_AUTH.
// Недействительный токен ошибкой не считается; ошибка возвращается только при сбое сети/API.
func (uc *CheckAuthUseCase) Execute(ctx context.Context, st *store.Store) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "CheckAuth",
	})

	if contextkeys.TokenFromContext(ctx) == "" {
		ucLogger.Debug("No stored token, user is not authorized", nil)
		st.Dispatch(store.RequireAuthorization{Status: domain.AuthorizationNoAuth})
		return nil
	}

	info, err := uc.api.CheckAuth(ctx)
	if err != nil {
		st.Dispatch(store.RequireAuthorization{Status: domain.AuthorizationNoAuth})
		if errors.Is(err, domain.ErrNotAuthorized) {
			ucLogger.Info("Stored token is not valid anymore", nil)
			return nil
		}
		ucLogger.Error("Failed to check authorization", err, nil)
		return fmt.Errorf("failed to check authorization: %w", err)
	}

	st.Dispatch(
		store.RequireAuthorization{Status: domain.AuthorizationAuth},
		store.SetUser{User: info},
	)
	ucLogger.Info("User is authorized", port.Fields{"email": info.Email})
	return nil
}

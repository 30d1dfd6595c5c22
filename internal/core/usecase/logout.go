package usecase

import (
	"context"
	"fmt"

	"github.com/Stalyer/six-cities/internal/contextkeys"
	"github.com/Stalyer/six-cities/internal/core/domain"
	"github.com/Stalyer/six-cities/internal/core/port"
	"github.com/Stalyer/six-cities/internal/core/store"
)

type LogoutUseCase struct {
	api       port.UserAPIPort
	publisher port.ActivityPublisherPort
}

func NewLogoutUseCase(api port.UserAPIPort, publisher port.ActivityPublisherPort) *LogoutUseCase {
	return &LogoutUseCase{api: api, publisher: publisher}
}

// Execute завершает сессию на сервере и сбрасывает пользовательский срез.
// Срез сбрасывается даже при ошибке API: токен у клиента все равно удаляется.
func (uc *LogoutUseCase) Execute(ctx context.Context, st *store.Store) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "Logout",
	})

	var email string
	if user := store.GetUser(st.GetState()); user != nil {
		email = user.Email
	}

	err := uc.api.Logout(ctx)
	st.Dispatch(store.ResetUser{})

	if err != nil {
		ucLogger.Error("Logout request failed", err, nil)
		return fmt.Errorf("failed to logout: %w", err)
	}

	publishActivity(ctx, uc.publisher, domain.ActivityEvent{
		Type:      domain.ActivityLoggedOut,
		UserEmail: email,
	})
	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

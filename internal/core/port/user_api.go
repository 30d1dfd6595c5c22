package port

import (
	"context"

	"github.com/Stalyer/six-cities/internal/core/domain"
)

type UserAPIPort interface {
	// CheckAuth проверяет токен из контекста. Недействительный токен - domain.ErrNotAuthorized.
	CheckAuth(ctx context.Context) (*domain.AuthInfo, error)
	Login(ctx context.Context, data domain.AuthData) (*domain.AuthInfo, error)
	Logout(ctx context.Context) error
}

package usecases_port

import (
	"context"

	"github.com/Stalyer/six-cities/internal/core/domain"
	"github.com/Stalyer/six-cities/internal/core/store"
)

type CheckAuthUseCasePort interface {
	Execute(ctx context.Context, st *store.Store) error
}

type LoginUseCasePort interface {
	Execute(ctx context.Context, st *store.Store, data domain.AuthData) (*domain.AuthInfo, error)
}

type LogoutUseCasePort interface {
	Execute(ctx context.Context, st *store.Store) error
}

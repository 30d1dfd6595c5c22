package usecases_port

import (
	"context"

	"github.com/Stalyer/six-cities/internal/core/store"
)

type FetchOffersUseCasePort interface {
	Execute(ctx context.Context, st *store.Store) error
}

// LoadPropertyUseCasePort загружает предложение, соседние предложения и отзывы.
type LoadPropertyUseCasePort interface {
	Execute(ctx context.Context, st *store.Store, offerID int) error
}

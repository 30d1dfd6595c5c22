package usecases_port

import (
	"context"

	"github.com/Stalyer/six-cities/internal/core/domain"
	"github.com/Stalyer/six-cities/internal/core/store"
)

type PostReviewUseCasePort interface {
	Execute(ctx context.Context, st *store.Store, review domain.NewReview) error
}

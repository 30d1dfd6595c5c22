package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/Stalyer/six-cities/internal/contextkeys"
	"github.com/Stalyer/six-cities/internal/core/domain"
)

// ============================================
// Заглушка удаленного API для тестов
// ============================================
type fakeAPI struct {
	mu sync.Mutex

	offers  map[int]domain.Offer
	nearby  map[int][]domain.Offer
	reviews map[int][]domain.Review
	users   map[string]domain.AuthInfo // token -> user

	offersErr    error
	nearbyErr    error
	reviewsErr   error
	favoriteErr  error
	postErr      error
	logoutErr    error
	blockOfferID int
	release      chan struct{}

	calls map[string]int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		offers:  make(map[int]domain.Offer),
		nearby:  make(map[int][]domain.Offer),
		reviews: make(map[int][]domain.Review),
		users:   make(map[string]domain.AuthInfo),
		calls:   make(map[string]int),
	}
}

func (f *fakeAPI) called(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[method]++
}

func (f *fakeAPI) Calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeAPI) FetchOffers(ctx context.Context) ([]domain.Offer, error) {
	f.called("FetchOffers")
	if f.offersErr != nil {
		return nil, f.offersErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]domain.Offer, 0, len(f.offers))
	for id := 1; len(result) < len(f.offers); id++ {
		if o, ok := f.offers[id]; ok {
			o.IsFavorite = o.IsFavorite && contextkeys.TokenFromContext(ctx) != ""
			result = append(result, o)
		}
	}
	return result, nil
}

func (f *fakeAPI) FetchOffer(ctx context.Context, offerID int) (*domain.Offer, error) {
	f.called("FetchOffer")
	if f.release != nil && offerID == f.blockOfferID {
		select {
		case <-f.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.offers[offerID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &o, nil
}

func (f *fakeAPI) FetchNearbyOffers(ctx context.Context, offerID int) ([]domain.Offer, error) {
	f.called("FetchNearbyOffers")
	if f.nearbyErr != nil {
		return nil, f.nearbyErr
	}
	return f.nearby[offerID], nil
}

func (f *fakeAPI) FetchReviews(ctx context.Context, offerID int) ([]domain.Review, error) {
	f.called("FetchReviews")
	if f.reviewsErr != nil {
		return nil, f.reviewsErr
	}
	return f.reviews[offerID], nil
}

func (f *fakeAPI) PostReview(ctx context.Context, review domain.NewReview) ([]domain.Review, error) {
	f.called("PostReview")
	if f.postErr != nil {
		return nil, f.postErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reviews[review.OfferID] = append(f.reviews[review.OfferID], domain.Review{
		ID:      len(f.reviews[review.OfferID]) + 1,
		OfferID: review.OfferID,
		Rating:  review.Rating,
		Comment: review.Comment,
	})
	return f.reviews[review.OfferID], nil
}

func (f *fakeAPI) FetchFavorites(ctx context.Context) ([]domain.Offer, error) {
	f.called("FetchFavorites")
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.Offer
	for _, o := range f.offers {
		if o.IsFavorite {
			result = append(result, o)
		}
	}
	return result, nil
}

func (f *fakeAPI) ChangeFavoriteStatus(ctx context.Context, offerID int, isFavorite bool) (*domain.Offer, error) {
	f.called("ChangeFavoriteStatus")
	if f.favoriteErr != nil {
		return nil, f.favoriteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.offers[offerID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	o.IsFavorite = isFavorite
	f.offers[offerID] = o
	return &o, nil
}

func (f *fakeAPI) CheckAuth(ctx context.Context) (*domain.AuthInfo, error) {
	f.called("CheckAuth")
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[contextkeys.TokenFromContext(ctx)]
	if !ok {
		return nil, domain.ErrNotAuthorized
	}
	return &u, nil
}

func (f *fakeAPI) Login(ctx context.Context, data domain.AuthData) (*domain.AuthInfo, error) {
	f.called("Login")
	if strings.HasPrefix(data.Email, "blocked") {
		return nil, domain.ErrBadRequest
	}
	info := domain.AuthInfo{ID: 1, Email: data.Email, Name: "user", Token: "token-" + data.Email}
	f.mu.Lock()
	f.users[info.Token] = info
	f.mu.Unlock()
	return &info, nil
}

func (f *fakeAPI) Logout(ctx context.Context) error {
	f.called("Logout")
	return f.logoutErr
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.ActivityEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, event domain.ActivityEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func makeOffer(id int, title string) domain.Offer {
	return domain.Offer{
		ID:    id,
		Title: title,
		Type:  domain.OfferTypeApartment,
		Price: 100 * id,
		City:  domain.City{Name: "Paris"},
	}
}

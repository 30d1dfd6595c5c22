package web

import (
	"context"
	"sync"
	"time"

	"github.com/Stalyer/six-cities/internal/contextkeys"
	"github.com/Stalyer/six-cities/internal/core/domain"
)

const testToken = "T2xpdmVyLmNvbm5lckBnbWFpbC5jb20="

// fakeAPI - удаленный API в памяти. Токен testToken считается действительным.
type fakeAPI struct {
	mu      sync.Mutex
	offers  []domain.Offer
	reviews map[int][]domain.Review

	changeFavoriteCalls int
	fetchOfferCalls     int

	// blockOffer задерживает FetchOffer до закрытия канала.
	blockOffer chan struct{}
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		offers: []domain.Offer{
			testOffer(1, "Amsterdam", "Beautiful & luxurious studio at great location", true, true),
			testOffer(2, "Amsterdam", "Wood and stone place", false, false),
			testOffer(3, "Paris", "Canal View Prinsengracht", false, true),
		},
		reviews: map[int][]domain.Review{
			1: {{
				ID:      1,
				OfferID: 1,
				User:    domain.Reviewer{ID: 4, Name: "Max"},
				Rating:  4,
				Comment: "A quiet cozy and picturesque that hides behind a river by the unique lightness of Amsterdam.",
				Date:    time.Date(2019, 5, 8, 14, 13, 56, 0, time.UTC),
			}},
		},
	}
}

func testOffer(id int, city, title string, isPremium, isFavorite bool) domain.Offer {
	return domain.Offer{
		ID:           id,
		Title:        title,
		Type:         domain.OfferTypeApartment,
		Price:        120 * id,
		Rating:       4.2,
		City:         domain.City{Name: city, Location: domain.Location{Latitude: 52.37, Longitude: 4.89, Zoom: 10}},
		Location:     domain.Location{Latitude: 52.35 + float64(id)/100, Longitude: 4.67, Zoom: 8},
		PreviewImage: "img/apartment-01.jpg",
		Images:       []string{"img/apartment-01.jpg", "img/apartment-02.jpg"},
		IsPremium:    isPremium,
		IsFavorite:   isFavorite,
		Host:         domain.Host{ID: 3, Name: "Angelina", IsPro: true},
		Description:  "A quiet cozy and picturesque place.",
		Goods:        []string{"Heating", "Kitchen"},
		Bedrooms:     3,
		MaxAdults:    4,
	}
}

func authorized(ctx context.Context) bool {
	return contextkeys.TokenFromContext(ctx) == testToken
}

func (f *fakeAPI) FetchOffers(ctx context.Context) ([]domain.Offer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return domain.CloneOffers(f.offers), nil
}

func (f *fakeAPI) FetchOffer(ctx context.Context, offerID int) (*domain.Offer, error) {
	f.mu.Lock()
	f.fetchOfferCalls++
	block := f.blockOffer
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.offers {
		if o.ID == offerID {
			c := o.Clone()
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAPI) FetchNearbyOffers(ctx context.Context, offerID int) ([]domain.Offer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var nearby []domain.Offer
	for _, o := range f.offers {
		if o.ID != offerID {
			nearby = append(nearby, o.Clone())
		}
	}
	return nearby, nil
}

func (f *fakeAPI) FetchReviews(ctx context.Context, offerID int) ([]domain.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Review(nil), f.reviews[offerID]...), nil
}

func (f *fakeAPI) PostReview(ctx context.Context, review domain.NewReview) ([]domain.Review, error) {
	if !authorized(ctx) {
		return nil, domain.ErrNotAuthorized
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reviews[review.OfferID] = append(f.reviews[review.OfferID], domain.Review{
		ID:      len(f.reviews[review.OfferID]) + 1,
		OfferID: review.OfferID,
		User:    domain.Reviewer{ID: 1, Name: "Oliver.conner"},
		Rating:  review.Rating,
		Comment: review.Comment,
		Date:    time.Now(),
	})
	return append([]domain.Review(nil), f.reviews[review.OfferID]...), nil
}

func (f *fakeAPI) FetchFavorites(ctx context.Context) ([]domain.Offer, error) {
	if !authorized(ctx) {
		return nil, domain.ErrNotAuthorized
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var favorites []domain.Offer
	for _, o := range f.offers {
		if o.IsFavorite {
			favorites = append(favorites, o.Clone())
		}
	}
	return favorites, nil
}

func (f *fakeAPI) ChangeFavoriteStatus(ctx context.Context, offerID int, isFavorite bool) (*domain.Offer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.changeFavoriteCalls++
	if !authorized(ctx) {
		return nil, domain.ErrNotAuthorized
	}
	for i := range f.offers {
		if f.offers[i].ID == offerID {
			f.offers[i].IsFavorite = isFavorite
			c := f.offers[i].Clone()
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAPI) CheckAuth(ctx context.Context) (*domain.AuthInfo, error) {
	if !authorized(ctx) {
		return nil, domain.ErrNotAuthorized
	}
	return &domain.AuthInfo{ID: 1, Email: "Oliver.conner@gmail.com", Name: "Oliver.conner", Token: testToken}, nil
}

func (f *fakeAPI) Login(ctx context.Context, data domain.AuthData) (*domain.AuthInfo, error) {
	return &domain.AuthInfo{ID: 1, Email: data.Email, Name: "Oliver.conner", Token: testToken}, nil
}

func (f *fakeAPI) Logout(ctx context.Context) error {
	return nil
}

func (f *fakeAPI) calls() (changeFavorite, fetchOffer int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.changeFavoriteCalls, f.fetchOfferCalls
}

// block задерживает все следующие FetchOffer до вызова возвращенной функции.
func (f *fakeAPI) block() (release func()) {
	ch := make(chan struct{})
	f.mu.Lock()
	f.blockOffer = ch
	f.mu.Unlock()
	return func() { close(ch) }
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Stalyer/six-cities/internal/contextkeys"
	"github.com/Stalyer/six-cities/internal/core/domain"
	"github.com/Stalyer/six-cities/internal/core/store"
)

func newLoadProperty(api *fakeAPI) *LoadPropertyUseCase {
	return NewLoadPropertyUseCase(
		NewFetchOfferUseCase(api),
		NewFetchNearbyOffersUseCase(api),
		NewFetchReviewsUseCase(api),
	)
}

func authorizedStore() *store.Store {
	st := store.New()
	st.Dispatch(
		store.RequireAuthorization{Status: domain.AuthorizationAuth},
		store.SetUser{User: &domain.AuthInfo{Email: "user@mail.ru"}},
	)
	return st
}

func TestFetchOffers_Success(t *testing.T) {
	api := newFakeAPI()
	api.offers[1] = makeOffer(1, "Nice flat")
	st := store.New()

	if err := NewFetchOffersUseCase(api).Execute(context.Background(), st); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := st.GetState()
	if len(store.GetOffers(s)) != 1 || store.GetOffersLoadingStatus(s) {
		t.Errorf("unexpected data slice: %+v", s.Data)
	}
}

func TestFetchOffers_FailureResetsLoading(t *testing.T) {
	api := newFakeAPI()
	api.offersErr = errors.New("connection refused")
	st := store.New()

	err := NewFetchOffersUseCase(api).Execute(context.Background(), st)
	if err == nil {
		t.Fatal("expected error")
	}
	if store.GetOffersLoadingStatus(st.GetState()) {
		t.Error("loading flag must be reset on failure")
	}
}

func TestLoadProperty_DependentFetches(t *testing.T) {
	api := newFakeAPI()
	api.offers[1] = makeOffer(1, "Main")
	api.nearby[1] = []domain.Offer{makeOffer(2, "Near")}
	api.reviews[1] = []domain.Review{{ID: 1, OfferID: 1, Rating: 5}}
	st := store.New()

	if err := newLoadProperty(api).Execute(context.Background(), st, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := st.GetState()
	if store.GetOffer(s) == nil || store.GetOffer(s).Title != "Main" {
		t.Fatalf("offer must be loaded, got %+v", store.GetOffer(s))
	}
	if len(store.GetOffersNearby(s)) != 1 || len(store.GetReviews(s)) != 1 {
		t.Errorf("nearby and reviews must be loaded, got %+v", s.OfferProcess)
	}
	if store.GetLoadedDataStatus(s) {
		t.Error("loading flag must be reset")
	}
}

func TestLoadProperty_NotFoundSkipsDependentFetches(t *testing.T) {
	api := newFakeAPI()
	st := store.New()

	err := newLoadProperty(api).Execute(context.Background(), st, 404)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if api.Calls("FetchNearbyOffers") != 0 || api.Calls("FetchReviews") != 0 {
		t.Error("nearby offers and reviews must not be requested for a missing offer")
	}
	s := st.GetState()
	if store.GetOffer(s) != nil || store.GetLoadedDataStatus(s) {
		t.Errorf("expected finished load without offer, got %+v", s.OfferProcess)
	}
}

func TestLoadProperty_PartialFailureKeepsOffer(t *testing.T) {
	api := newFakeAPI()
	api.offers[1] = makeOffer(1, "Main")
	api.reviews[1] = []domain.Review{{ID: 1, OfferID: 1}}
	api.nearbyErr = errors.New("timeout")
	st := store.New()

	err := newLoadProperty(api).Execute(context.Background(), st, 1)
	if err == nil {
		t.Fatal("expected joined error for nearby failure")
	}

	s := st.GetState()
	if store.GetOffer(s) == nil {
		t.Fatal("offer must stay loaded")
	}
	if len(store.GetReviews(s)) != 1 {
		t.Error("reviews must be loaded independently of nearby offers")
	}
}

func TestLoadProperty_SupersededLoadDoesNotOverwrite(t *testing.T) {
	api := newFakeAPI()
	api.offers[1] = makeOffer(1, "Slow")
	api.offers[2] = makeOffer(2, "Fast")
	api.blockOfferID = 1
	api.release = make(chan struct{})
	st := store.New()
	uc := newLoadProperty(api)

	done := make(chan error, 1)
	go func() { done <- uc.Execute(context.Background(), st, 1) }()

	deadline := time.Now().Add(2 * time.Second)
	for api.Calls("FetchOffer") == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	if err := uc.Execute(context.Background(), st, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	close(api.release)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("superseded load did not finish")
	}

	if offer := store.GetOffer(st.GetState()); offer == nil || offer.ID != 2 {
		t.Errorf("expected the latest requested offer to win, got %+v", offer)
	}
}

func TestToggleFavorite_Unauthorized(t *testing.T) {
	api := newFakeAPI()
	api.offers[1] = makeOffer(1, "Main")
	st := store.New()
	st.Dispatch(store.RequireAuthorization{Status: domain.AuthorizationNoAuth})

	_, err := NewToggleFavoriteUseCase(api, nil).Execute(context.Background(), st, 1, false)
	if !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
	if api.Calls("ChangeFavoriteStatus") != 0 {
		t.Error("API must not be called for unauthorized user")
	}
}

func TestToggleFavorite_Success(t *testing.T) {
	api := newFakeAPI()
	api.offers[1] = makeOffer(1, "Main")
	publisher := &recordingPublisher{}
	st := authorizedStore()
	st.Dispatch(store.LoadOffers{Offers: []domain.Offer{makeOffer(1, "Main")}})

	offer, err := NewToggleFavoriteUseCase(api, publisher).Execute(context.Background(), st, 1, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !offer.IsFavorite {
		t.Error("returned offer must be favorite")
	}

	s := st.GetState()
	if !store.GetOffers(s)[0].IsFavorite || len(store.GetFavorites(s)) != 1 {
		t.Errorf("store must reflect the new flag, got %+v", s.Data)
	}
	if len(publisher.events) != 1 || publisher.events[0].Type != domain.ActivityFavoriteToggled {
		t.Errorf("expected favorite event, got %+v", publisher.events)
	}
}

func TestToggleFavorite_FailureLeavesStateUnchanged(t *testing.T) {
	api := newFakeAPI()
	api.offers[1] = makeOffer(1, "Main")
	api.favoriteErr = errors.New("server error")
	st := authorizedStore()
	st.Dispatch(store.LoadOffers{Offers: []domain.Offer{makeOffer(1, "Main")}})

	if _, err := NewToggleFavoriteUseCase(api, nil).Execute(context.Background(), st, 1, false); err == nil {
		t.Fatal("expected error")
	}

	s := st.GetState()
	if store.GetOffers(s)[0].IsFavorite || len(store.GetFavorites(s)) != 0 {
		t.Error("state must stay unchanged on failure")
	}
}

func TestCheckAuth(t *testing.T) {
	api := newFakeAPI()
	api.users["valid"] = domain.AuthInfo{Email: "user@mail.ru"}
	uc := NewCheckAuthUseCase(api)

	t.Run("no token", func(t *testing.T) {
		st := store.New()
		if err := uc.Execute(context.Background(), st); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.GetAuthorizationStatus(st.GetState()) != domain.AuthorizationNoAuth {
			t.Error("expected NO_AUTH without token")
		}
		if api.Calls("CheckAuth") != 0 {
			t.Error("API must not be called without token")
		}
	})

	t.Run("valid token", func(t *testing.T) {
		st := store.New()
		ctx := contextkeys.ContextWithToken(context.Background(), "valid")
		if err := uc.Execute(ctx, st); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s := st.GetState()
		if store.GetAuthorizationStatus(s) != domain.AuthorizationAuth || store.GetUser(s).Email != "user@mail.ru" {
			t.Errorf("expected AUTH, got %+v", s.User)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		st := store.New()
		ctx := contextkeys.ContextWithToken(context.Background(), "expired")
		if err := uc.Execute(ctx, st); err != nil {
			t.Fatalf("invalid token must not be reported as error: %v", err)
		}
		if store.GetAuthorizationStatus(st.GetState()) != domain.AuthorizationNoAuth {
			t.Error("expected NO_AUTH for expired token")
		}
	})
}

func TestLogin_RefetchesOffersWithToken(t *testing.T) {
	api := newFakeAPI()
	fav := makeOffer(1, "Main")
	fav.IsFavorite = true
	api.offers[1] = fav
	st := store.New()

	uc := NewLoginUseCase(api, NewFetchOffersUseCase(api), NewFetchFavoritesUseCase(api), nil)
	info, err := uc.Execute(context.Background(), st, domain.AuthData{Email: "user@mail.ru", Password: "abc123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Token == "" {
		t.Error("token must be returned to the caller")
	}

	s := st.GetState()
	if !store.IsAuthorized(s) {
		t.Error("expected AUTH after login")
	}
	if len(store.GetOffers(s)) != 1 || !store.GetOffers(s)[0].IsFavorite {
		t.Error("offers must be re-fetched with the new token")
	}
	if len(store.GetFavorites(s)) != 1 || api.Calls("FetchFavorites") != 1 {
		t.Errorf("favorites must be loaded after login, got %d", len(store.GetFavorites(s)))
	}
}

func TestLogin_InvalidPassword(t *testing.T) {
	api := newFakeAPI()
	uc := NewLoginUseCase(api, NewFetchOffersUseCase(api), NewFetchFavoritesUseCase(api), nil)

	_, err := uc.Execute(context.Background(), store.New(), domain.AuthData{Email: "user@mail.ru", Password: "abcdef"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if api.Calls("Login") != 0 {
		t.Error("invalid credentials must not reach the API")
	}
}

func TestLogout_ResetsUserEvenOnError(t *testing.T) {
	api := newFakeAPI()
	api.logoutErr = errors.New("server error")
	st := authorizedStore()

	if err := NewLogoutUseCase(api, nil).Execute(context.Background(), st); err == nil {
		t.Fatal("expected error")
	}
	if store.GetAuthorizationStatus(st.GetState()) != domain.AuthorizationNoAuth {
		t.Error("user slice must be reset")
	}
}

func TestPostReview(t *testing.T) {
	api := newFakeAPI()
	api.offers[1] = makeOffer(1, "Main")
	st := authorizedStore()
	if err := newLoadProperty(api).Execute(context.Background(), st, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uc := NewPostReviewUseCase(api, nil)

	err := uc.Execute(context.Background(), st, domain.NewReview{OfferID: 1, Rating: 5, Comment: "too short"})
	if !errors.Is(err, domain.ErrInvalidReview) {
		t.Fatalf("expected ErrInvalidReview, got %v", err)
	}

	comment := strings.Repeat("a", domain.ReviewMinCommentLength)
	if err := uc.Execute(context.Background(), st, domain.NewReview{OfferID: 1, Rating: 4, Comment: comment}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := st.GetState()
	if len(store.GetReviews(s)) != 1 || store.GetReviewSendingStatus(s) {
		t.Errorf("review must be added and sending flag reset, got %+v", s.OfferProcess)
	}
}

func TestFetchFavorites_RequiresAuthorization(t *testing.T) {
	api := newFakeAPI()
	err := NewFetchFavoritesUseCase(api).Execute(context.Background(), store.New())
	if !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

package web

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/Stalyer/six-cities/internal/core/domain"
	"github.com/Stalyer/six-cities/internal/core/store"
	"github.com/mmcloughlin/geohash"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.English)

var typeLabels = map[domain.OfferType]string{
	domain.OfferTypeApartment: "Apartment",
	domain.OfferTypeRoom:      "Private room",
	domain.OfferTypeHouse:     "House",
	domain.OfferTypeHotel:     "Hotel",
}

// geohashPrecision - 9 символов, около 5 метров.
const geohashPrecision = 9

// layoutView - данные шапки, общие для всех страниц.
type layoutView struct {
	Title      string
	PageClass  string
	Authorized bool
	User       *userView
	Favorites  int
	Toasts     []string
	ShowNav    bool
}

type userView struct {
	Email     string
	AvatarURL string
}

type pageView struct {
	Layout  layoutView
	Content interface{}
}

type cardView struct {
	ID             int
	Href           string
	Title          string
	PreviewImage   string
	Price          string
	TypeLabel      string
	RatingWidth    string
	IsPremium      bool
	IsFavorite     bool
	FavoriteAction string
	BookmarkLabel  string
	// Back - куда вернуть пользователя после переключения избранного.
	Back string
}

type mapPointView struct {
	Key       string
	Latitude  float64
	Longitude float64
	Active    bool
}

type mapView struct {
	Latitude  float64
	Longitude float64
	Zoom      int
	Points    []mapPointView
}

type cityTabView struct {
	Name   string
	Href   string
	Active bool
}

type sortOptionView struct {
	Label  string
	Href   string
	Active bool
}

type mainView struct {
	Cities      []cityTabView
	City        string
	PlacesTitle string
	SortLabel   string
	SortOptions []sortOptionView
	Cards       []cardView
	Map         mapView
	IsEmpty     bool
	IsLoading   bool
	CurrentPath string
}

type favoritesGroupView struct {
	City  string
	Href  string
	Cards []cardView
}

type favoritesView struct {
	Groups      []favoritesGroupView
	IsEmpty     bool
	CurrentPath string
}

type hostView struct {
	Name      string
	AvatarURL string
	IsPro     bool
}

type reviewView struct {
	Name        string
	AvatarURL   string
	IsPro       bool
	RatingWidth string
	Comment     string
	DateTime    string
	DateText    string
}

type reviewFormView struct {
	Action    string
	Ratings   []int
	MinLength int
	MaxLength int
	Disabled  bool
}

type propertyView struct {
	ID             int
	Images         []string
	Title          string
	IsPremium      bool
	IsFavorite     bool
	FavoriteAction string
	BookmarkLabel  string
	RatingWidth    string
	Rating         string
	TypeLabel      string
	Bedrooms       string
	MaxAdults      string
	Price          string
	Goods          []string
	Host           hostView
	Description    string
	Reviews        []reviewView
	ReviewsCount   int
	ReviewForm     *reviewFormView
	Nearby         []cardView
	Map            mapView
	CurrentPath    string
}

type loginView struct {
	Email string
	Error string
}

type loadingView struct {
	RefreshURL     string
	RefreshSeconds int
}

func formatPrice(price int) string {
	return pricePrinter.Sprintf("€%d", price)
}

func typeLabel(t domain.OfferType) string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	// Caser хранит состояние, поэтому создается на каждый вызов.
	return cases.Title(language.English).String(string(t))
}

// ratingWidth - ширина звезд рейтинга: округленный рейтинг по 20% за звезду.
func ratingWidth(rating float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(rating))*20)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

func favoriteAction(offer domain.Offer) string {
	status := 1
	if offer.IsFavorite {
		status = 0
	}
	return fmt.Sprintf("/favorite/%d/%d", offer.ID, status)
}

func bookmarkLabel(isFavorite bool) string {
	if isFavorite {
		return "In bookmarks"
	}
	return "To bookmarks"
}

func newCardView(offer domain.Offer, back string) cardView {
	return cardView{
		ID:             offer.ID,
		Href:           fmt.Sprintf("/offer/%d", offer.ID),
		Title:          offer.Title,
		PreviewImage:   offer.PreviewImage,
		Price:          formatPrice(offer.Price),
		TypeLabel:      typeLabel(offer.Type),
		RatingWidth:    ratingWidth(offer.Rating),
		IsPremium:      offer.IsPremium,
		IsFavorite:     offer.IsFavorite,
		FavoriteAction: favoriteAction(offer),
		BookmarkLabel:  bookmarkLabel(offer.IsFavorite),
		Back:           back,
	}
}

func newCardViews(offers []domain.Offer, back string) []cardView {
	cards := make([]cardView, len(offers))
	for i, o := range offers {
		cards[i] = newCardView(o, back)
	}
	return cards
}

// newMapView строит точки карты. Активная точка идет первой,
// предложения с совпадающими координатами дают одну точку.
func newMapView(center domain.Location, active *domain.Offer, offers []domain.Offer) mapView {
	m := mapView{Latitude: center.Latitude, Longitude: center.Longitude, Zoom: center.Zoom}
	seen := make(map[string]bool)

	add := func(loc domain.Location, isActive bool) {
		key := geohash.EncodeWithPrecision(loc.Latitude, loc.Longitude, geohashPrecision)
		if seen[key] {
			return
		}
		seen[key] = true
		m.Points = append(m.Points, mapPointView{
			Key:       key,
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
			Active:    isActive,
		})
	}

	if active != nil {
		add(active.Location, true)
	}
	for _, o := range offers {
		add(o.Location, false)
	}
	return m
}

func newMainView(state store.State) mainView {
	city := store.GetCity(state)
	sortType := store.GetSortType(state)
	offers := store.GetCityOffers(state)

	currentPath := "/?" + url.Values{"city": {city}, "sort": {string(sortType)}}.Encode()
	view := mainView{
		City:        city,
		SortLabel:   string(sortType),
		Cards:       newCardViews(offers, currentPath),
		IsEmpty:     len(offers) == 0,
		IsLoading:   store.GetOffersLoadingStatus(state),
		PlacesTitle: fmt.Sprintf("%s to stay in %s", plural(len(offers), "place", "places"), city),
		CurrentPath: currentPath,
	}

	for _, c := range store.Cities {
		view.Cities = append(view.Cities, cityTabView{
			Name:   c,
			Href:   "/?" + url.Values{"city": {c}, "sort": {string(sortType)}}.Encode(),
			Active: c == city,
		})
	}
	for _, s := range store.SortTypes {
		view.SortOptions = append(view.SortOptions, sortOptionView{
			Label:  string(s),
			Href:   "/?" + url.Values{"city": {city}, "sort": {string(s)}}.Encode(),
			Active: s == sortType,
		})
	}

	if len(offers) > 0 {
		view.Map = newMapView(offers[0].City.Location, nil, offers)
	}
	return view
}

func newFavoritesView(state store.State) favoritesView {
	groups := store.GetFavoritesByCity(state)
	view := favoritesView{IsEmpty: len(groups) == 0, CurrentPath: "/favorites"}
	for _, g := range groups {
		view.Groups = append(view.Groups, favoritesGroupView{
			City:  g.City,
			Href:  "/?" + url.Values{"city": {g.City}}.Encode(),
			Cards: newCardViews(g.Offers, view.CurrentPath),
		})
	}
	return view
}

func newPropertyView(state store.State, offer domain.Offer) propertyView {
	images := offer.Images
	if len(images) > store.MaxGalleryImages {
		images = images[:store.MaxGalleryImages]
	}
	nearby := store.GetOffersNearby(state)
	currentPath := fmt.Sprintf("/offer/%d?ready=1", offer.ID)

	view := propertyView{
		ID:             offer.ID,
		Images:         images,
		Title:          offer.Title,
		IsPremium:      offer.IsPremium,
		IsFavorite:     offer.IsFavorite,
		FavoriteAction: favoriteAction(offer),
		BookmarkLabel:  bookmarkLabel(offer.IsFavorite),
		RatingWidth:    ratingWidth(offer.Rating),
		Rating:         strconv.FormatFloat(offer.Rating, 'f', -1, 64),
		TypeLabel:      typeLabel(offer.Type),
		Bedrooms:       plural(offer.Bedrooms, "Bedroom", "Bedrooms"),
		MaxAdults:      fmt.Sprintf("Max %s", plural(offer.MaxAdults, "adult", "adults")),
		Price:          formatPrice(offer.Price),
		Goods:          offer.Goods,
		Host: hostView{
			Name:      offer.Host.Name,
			AvatarURL: offer.Host.AvatarURL,
			IsPro:     offer.Host.IsPro,
		},
		Description:  offer.Description,
		ReviewsCount: store.GetReviewsCount(state),
		Nearby:       newCardViews(nearby, currentPath),
		Map:          newMapView(offer.City.Location, &offer, nearby),
		CurrentPath:  currentPath,
	}

	for _, r := range store.GetReviews(state) {
		view.Reviews = append(view.Reviews, reviewView{
			Name:        r.User.Name,
			AvatarURL:   r.User.AvatarURL,
			IsPro:       r.User.IsPro,
			RatingWidth: ratingWidth(float64(r.Rating)),
			Comment:     r.Comment,
			DateTime:    r.Date.Format("2006-01-02"),
			DateText:    r.Date.Format("January 2006"),
		})
	}

	if store.IsAuthorized(state) {
		view.ReviewForm = &reviewFormView{
			Action:    fmt.Sprintf("/offer/%d/reviews", offer.ID),
			Ratings:   []int{5, 4, 3, 2, 1},
			MinLength: domain.ReviewMinCommentLength,
			MaxLength: domain.ReviewMaxCommentLength,
			Disabled:  store.GetReviewSendingStatus(state),
		}
	}
	return view
}

package store

// SortType - вариант сортировки списка предложений на главной.
type SortType string

const (
	SortPopular        SortType = "Popular"
	SortPriceLowToHigh SortType = "Price: low to high"
	SortPriceHighToLow SortType = "Price: high to low"
	SortTopRated       SortType = "Top rated first"
)

var SortTypes = []SortType{SortPopular, SortPriceLowToHigh, SortPriceHighToLow, SortTopRated}

// ParseSortType возвращает SortPopular для неизвестных значений.
func ParseSortType(s string) SortType {
	for _, st := range SortTypes {
		if string(st) == s {
			return st
		}
	}
	return SortPopular
}

var Cities = []string{"Paris", "Cologne", "Brussels", "Amsterdam", "Hamburg", "Dusseldorf"}

const DefaultCity = "Paris"

// IsKnownCity сообщает, есть ли город среди вкладок главной страницы.
func IsKnownCity(name string) bool {
	for _, c := range Cities {
		if c == name {
			return true
		}
	}
	return false
}

const (
	// MaxReviews - сколько последних отзывов показывается на странице предложения.
	MaxReviews = 10
	// MaxGalleryImages - сколько фотографий выводится в галерее.
	MaxGalleryImages = 6
	// MaxNearbyOffers - сколько соседних предложений выводится под картой.
	MaxNearbyOffers = 3
)

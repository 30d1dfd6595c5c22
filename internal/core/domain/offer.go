package domain

// Location - координаты точки на карте и рекомендуемый масштаб.
type Location struct {
	Latitude  float64
	Longitude float64
	Zoom      int
}

type City struct {
	Name     string
	Location Location
}

// Host - арендодатель, разместивший предложение.
type Host struct {
	ID        int
	Name      string
	AvatarURL string
	IsPro     bool
}

// OfferType - тип жилья, приходящий от API.
type OfferType string

const (
	OfferTypeApartment OfferType = "apartment"
	OfferTypeRoom      OfferType = "room"
	OfferTypeHouse     OfferType = "house"
	OfferTypeHotel     OfferType = "hotel"
)

// Offer - предложение об аренде в том виде, в котором его хранит стор.
type Offer struct {
	ID           int
	Title        string
	Type         OfferType
	Price        int
	Rating       float64
	City         City
	Location     Location
	PreviewImage string
	Images       []string
	IsPremium    bool
	IsFavorite   bool
	Host         Host
	Description  string
	Goods        []string
	Bedrooms     int
	MaxAdults    int
}

// Clone возвращает копию предложения, не разделяющую срезы с оригиналом.
func (o Offer) Clone() Offer {
	c := o
	c.Images = append([]string(nil), o.Images...)
	c.Goods = append([]string(nil), o.Goods...)
	return c
}

// CloneOffers копирует срез предложений целиком.
func CloneOffers(offers []Offer) []Offer {
	if offers == nil {
		return nil
	}
	result := make([]Offer, len(offers))
	for i, o := range offers {
		result[i] = o.Clone()
	}
	return result
}

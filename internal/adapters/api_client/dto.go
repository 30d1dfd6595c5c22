package api_client

import "time"

// DTO в точности повторяют контракт удаленного API (camelCase).

type locationDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
}

type cityDTO struct {
	Name     string      `json:"name"`
	Location locationDTO `json:"location"`
}

type hostDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	IsPro     bool   `json:"isPro"`
}

type offerDTO struct {
	ID           int         `json:"id"`
	Title        string      `json:"title"`
	Type         string      `json:"type"`
	Price        int         `json:"price"`
	Rating       float64     `json:"rating"`
	City         cityDTO     `json:"city"`
	Location     locationDTO `json:"location"`
	PreviewImage string      `json:"previewImage"`
	Images       []string    `json:"images"`
	IsPremium    bool        `json:"isPremium"`
	IsFavorite   bool        `json:"isFavorite"`
	Host         hostDTO     `json:"host"`
	Description  string      `json:"description"`
	Goods        []string    `json:"goods"`
	Bedrooms     int         `json:"bedrooms"`
	MaxAdults    int         `json:"maxAdults"`
}

type reviewDTO struct {
	ID      int       `json:"id"`
	User    hostDTO   `json:"user"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
}

type postReviewRequest struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

type authInfoDTO struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	IsPro     bool   `json:"isPro"`
	Token     string `json:"token"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type errorResponse struct {
	ErrorType string `json:"errorType"`
	Error     string `json:"error"`
}

package domain

import "time"

// Reviewer - автор отзыва.
type Reviewer struct {
	ID        int
	Name      string
	AvatarURL string
	IsPro     bool
}

type Review struct {
	ID      int
	OfferID int
	User    Reviewer
	Rating  int
	Comment string
	Date    time.Time
}

// Ограничения формы отзыва.
const (
	ReviewMinRating        = 1
	ReviewMaxRating        = 5
	ReviewMinCommentLength = 50
	ReviewMaxCommentLength = 300
)

// NewReview - данные, которые пользователь отправляет из формы отзыва.
type NewReview struct {
	OfferID int
	Rating  int
	Comment string
}

// Validate проверяет отзыв перед отправкой на сервер.
func (r NewReview) Validate() error {
	if r.Rating < ReviewMinRating || r.Rating > ReviewMaxRating {
		return ErrInvalidReview
	}
	length := len([]rune(r.Comment))
	if length < ReviewMinCommentLength || length > ReviewMaxCommentLength {
		return ErrInvalidReview
	}
	return nil
}

package domain

import "time"

// ActivityType - тип пользовательского события, которое публикуется наружу.
type ActivityType string

const (
	ActivityFavoriteToggled ActivityType = "favorite.toggled"
	ActivityReviewPosted    ActivityType = "review.posted"
	ActivityLoggedIn        ActivityType = "user.logged_in"
	ActivityLoggedOut       ActivityType = "user.logged_out"
)

type ActivityEvent struct {
	Type       ActivityType `json:"type"`
	OfferID    int          `json:"offer_id,omitempty"`
	IsFavorite bool         `json:"is_favorite,omitempty"`
	UserEmail  string       `json:"user_email,omitempty"`
	TraceID    string       `json:"trace_id,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}

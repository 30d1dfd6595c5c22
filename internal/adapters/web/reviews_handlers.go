package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Stalyer/six-cities/internal/core/domain"
)

// PostReview - форма отзыва на странице предложения.
func (h *Handlers) PostReview(w http.ResponseWriter, r *http.Request) {
	offerID, ok := offerIDParam(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	st := storeFromContext(r.Context())
	rating, _ := strconv.Atoi(r.PostFormValue("rating"))
	review := domain.NewReview{
		OfferID: offerID,
		Rating:  rating,
		Comment: r.PostFormValue("comment"),
	}

	if err := h.uc.PostReview.Execute(r.Context(), st, review); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotAuthorized):
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		case errors.Is(err, domain.ErrInvalidReview):
			st.Notify(fmt.Sprintf("Review must have a rating and %d to %d characters.",
				domain.ReviewMinCommentLength, domain.ReviewMaxCommentLength))
		default:
			st.Notify("Failed to send review. Please try again.")
		}
	}

	http.Redirect(w, r, fmt.Sprintf("/offer/%d?ready=1", offerID), http.StatusSeeOther)
}

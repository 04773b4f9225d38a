// Package ratings holds the pure review-set operations behind the
// denormalized rating on hotels and foods. Nothing here touches the store;
// callers recompute and persist in the same transaction as the review change.
package ratings

import (
	"github.com/nahom-lulseged/gursha-backend/models"
)

// Average is the mean of all review ratings, or 0 for an empty set.
func Average(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	return sum / float64(len(reviews))
}

// Upsert overwrites the reviewer's existing entry or appends a new one.
// A nil comment leaves an existing comment untouched. The second return
// reports whether an existing review was updated rather than appended.
func Upsert(reviews []models.Review, userID uint, rating float64, comment *string) ([]models.Review, bool) {
	for i := range reviews {
		if reviews[i].UserID == userID {
			reviews[i].Rating = rating
			if comment != nil {
				reviews[i].Comment = *comment
			}
			return reviews, true
		}
	}
	review := models.Review{UserID: userID, Rating: rating}
	if comment != nil {
		review.Comment = *comment
	}
	return append(reviews, review), false
}

// Remove drops every entry by the given reviewer (at most one expected).
// Removing an absent reviewer is a no-op.
func Remove(reviews []models.Review, userID uint) []models.Review {
	out := reviews[:0]
	for _, r := range reviews {
		if r.UserID != userID {
			out = append(out, r)
		}
	}
	return out
}

// Find returns the reviewer's entry, or nil.
func Find(reviews []models.Review, userID uint) *models.Review {
	for i := range reviews {
		if reviews[i].UserID == userID {
			return &reviews[i]
		}
	}
	return nil
}

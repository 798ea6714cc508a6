package model

import "time"

// Rating bounds for reviews.
const (
	RatingMin = 1
	RatingMax = 5
)

// ValidRating reports whether the rating is inside the allowed bounds.
func ValidRating(rating int) bool {
	return rating >= RatingMin && rating <= RatingMax
}

// Review is a customer's rating of a business. At most one review exists per
// (reviewer, business) pair.
type Review struct {
	ID             int64
	BusinessUserID int64
	ReviewerID     int64
	Rating         int
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ReviewPatch holds the mutable subset of a review. Nil keeps current values.
type ReviewPatch struct {
	Rating      *int
	Description *string
}

// ReviewOrdering enumerates the supported sort orders for review listings.
// Anything outside this set silently falls back to the default.
type ReviewOrdering string

const (
	ReviewOrderUpdatedAtDesc ReviewOrdering = "-updated_at"
	ReviewOrderUpdatedAtAsc  ReviewOrdering = "updated_at"
	ReviewOrderRatingDesc    ReviewOrdering = "-rating"
	ReviewOrderRatingAsc     ReviewOrdering = "rating"
)

// ReviewFilter carries validated review listing filters.
type ReviewFilter struct {
	BusinessUserID *int64
	ReviewerID     *int64
	Ordering       ReviewOrdering
}

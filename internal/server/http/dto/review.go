package dto

import (
	"time"

	"github.com/gigline/gigline/internal/domain/model"
)

// CreateReviewRequest rates one business user.
type CreateReviewRequest struct {
	BusinessUser int64  `json:"business_user"`
	Rating       int    `json:"rating"`
	Description  string `json:"description"`
}

// ReviewUpdateRequest carries a partial review update.
type ReviewUpdateRequest struct {
	Rating      *int    `json:"rating"`
	Description *string `json:"description"`
}

// ReviewResponse is the representation of one review.
type ReviewResponse struct {
	ID           int64     `json:"id"`
	BusinessUser int64     `json:"business_user"`
	Reviewer     int64     `json:"reviewer"`
	Rating       int       `json:"rating"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewReviewResponse maps a review onto its response shape.
func NewReviewResponse(r *model.Review) ReviewResponse {
	return ReviewResponse{
		ID:           r.ID,
		BusinessUser: r.BusinessUserID,
		Reviewer:     r.ReviewerID,
		Rating:       r.Rating,
		Description:  r.Description,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

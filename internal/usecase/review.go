package usecase

import (
	"context"

	domainErrors "github.com/gigline/gigline/internal/domain/errors"
	"github.com/gigline/gigline/internal/domain/model"
	"github.com/gigline/gigline/internal/domain/repository"
)

// ReviewListParams holds raw review listing parameters.
type ReviewListParams struct {
	BusinessUserID string
	ReviewerID     string
	Ordering       string
}

// ReviewUseCase enforces the one-review-per-business rule and rating bounds.
type ReviewUseCase struct {
	reviews repository.ReviewRepository
	users   repository.UserRepository
}

// NewReviewUseCase constructs ReviewUseCase.
func NewReviewUseCase(reviews repository.ReviewRepository, users repository.UserRepository) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews, users: users}
}

// Create records a customer's review of a business. Duplicate detection is
// left to the store's uniqueness constraint so concurrent attempts resolve
// with exactly one winner.
func (u *ReviewUseCase) Create(ctx context.Context, actor model.Identity, businessUserID int64, rating int, description string) (*model.Review, error) {
	if actor.Role != model.RoleCustomer {
		return nil, domainErrors.ErrRoleViolation
	}

	target, err := u.users.GetByID(ctx, businessUserID)
	if err != nil {
		return nil, err
	}
	if target.Role != model.RoleBusiness {
		return nil, domainErrors.ErrRoleViolation
	}
	if actor.UserID == businessUserID {
		return nil, domainErrors.ErrSelfReview
	}
	if !model.ValidRating(rating) {
		return nil, domainErrors.ErrRatingOutOfRange
	}

	return u.reviews.Create(ctx, &model.Review{
		BusinessUserID: businessUserID,
		ReviewerID:     actor.UserID,
		Rating:         rating,
		Description:    description,
	})
}

// Get returns a single review by id.
func (u *ReviewUseCase) Get(ctx context.Context, id int64) (*model.Review, error) {
	return u.reviews.GetByID(ctx, id)
}

// Update edits rating and/or description. Only the original reviewer may edit.
func (u *ReviewUseCase) Update(ctx context.Context, actor model.Identity, id int64, patch model.ReviewPatch) (*model.Review, error) {
	review, err := u.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review.ReviewerID != actor.UserID {
		return nil, domainErrors.ErrNotOwner
	}
	if patch.Rating != nil && !model.ValidRating(*patch.Rating) {
		return nil, domainErrors.ErrRatingOutOfRange
	}
	return u.reviews.Update(ctx, id, patch)
}

// Delete removes a review. Only the original reviewer may delete.
func (u *ReviewUseCase) Delete(ctx context.Context, actor model.Identity, id int64) error {
	review, err := u.reviews.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if review.ReviewerID != actor.UserID {
		return domainErrors.ErrNotOwner
	}
	return u.reviews.Delete(ctx, id)
}

// List validates filters and returns matching reviews. Filter values are
// strict; the ordering parameter is permissive and silently falls back to the
// default when outside the allow-list.
func (u *ReviewUseCase) List(ctx context.Context, params ReviewListParams) ([]model.Review, error) {
	filter := model.ReviewFilter{Ordering: parseReviewOrdering(params.Ordering)}

	businessID, err := parseIDFilter("business_user_id", params.BusinessUserID)
	if err != nil {
		return nil, err
	}
	filter.BusinessUserID = businessID

	reviewerID, err := parseIDFilter("reviewer_id", params.ReviewerID)
	if err != nil {
		return nil, err
	}
	filter.ReviewerID = reviewerID

	return u.reviews.List(ctx, filter)
}

func parseReviewOrdering(raw string) model.ReviewOrdering {
	switch model.ReviewOrdering(raw) {
	case model.ReviewOrderUpdatedAtAsc, model.ReviewOrderUpdatedAtDesc,
		model.ReviewOrderRatingAsc, model.ReviewOrderRatingDesc:
		return model.ReviewOrdering(raw)
	default:
		return model.ReviewOrderUpdatedAtDesc
	}
}

package repository

import (
	"context"

	"github.com/gigline/gigline/internal/domain/model"
)

// ReviewRepository describes persistence operations for reviews. Creation
// relies on a store-level uniqueness constraint over (business, reviewer), so
// concurrent duplicates resolve with exactly one winner.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) (*model.Review, error)
	GetByID(ctx context.Context, id int64) (*model.Review, error)
	Update(ctx context.Context, id int64, patch model.ReviewPatch) (*model.Review, error)
	List(ctx context.Context, filter model.ReviewFilter) ([]model.Review, error)
	Delete(ctx context.Context, id int64) error
}

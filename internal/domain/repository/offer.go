package repository

import (
	"context"

	"github.com/gigline/gigline/internal/domain/model"
)

// OfferRepository describes persistence operations for offers and their
// pricing tiers. Create and Update are atomic: readers never observe an offer
// with fewer than three details.
type OfferRepository interface {
	Create(ctx context.Context, offer *model.Offer) (*model.Offer, error)
	GetByID(ctx context.Context, id int64) (*model.Offer, error)
	GetDetailByID(ctx context.Context, id int64) (*model.OfferDetail, error)
	Update(ctx context.Context, offerID int64, patch model.OfferPatch) (*model.Offer, error)
	List(ctx context.Context, filter model.OfferFilter) ([]model.Offer, error)
	Delete(ctx context.Context, id int64) error
}

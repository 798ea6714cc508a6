package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/gigline/gigline/internal/domain/errors"
	"github.com/gigline/gigline/internal/domain/model"
	"github.com/gigline/gigline/internal/domain/repository"
)

// OfferDetailInput carries the commercial terms of one pricing tier.
type OfferDetailInput struct {
	Title              string
	Revisions          int
	DeliveryTimeInDays int
	Price              float64
	Features           []string
	Tier               model.Tier
}

// CreateOfferInput carries a full offer with its three tier details.
type CreateOfferInput struct {
	Title       string
	Image       string
	Description string
	Details     []OfferDetailInput
}

// OfferListParams holds raw listing parameters as received from the caller.
// Filter values are validated here because their rules are business rules,
// not transport plumbing.
type OfferListParams struct {
	CreatorID       string
	MinPrice        string
	MaxDeliveryTime string
	Search          string
	Ordering        string
}

// OfferUseCase encapsulates catalog rules: tier set integrity, ownership and
// listing filters.
type OfferUseCase struct {
	offers repository.OfferRepository
}

// NewOfferUseCase constructs OfferUseCase.
func NewOfferUseCase(offers repository.OfferRepository) *OfferUseCase {
	return &OfferUseCase{offers: offers}
}

// Create persists a new offer with exactly three details. Only business
// accounts may create offers; the offer and its details are written atomically.
func (u *OfferUseCase) Create(ctx context.Context, actor model.Identity, input CreateOfferInput) (*model.Offer, error) {
	if actor.Role != model.RoleBusiness {
		return nil, domainErrors.ErrRoleViolation
	}

	tiers := make([]model.Tier, 0, len(input.Details))
	for _, d := range input.Details {
		tiers = append(tiers, d.Tier)
	}
	if !ValidateTierSet(tiers) {
		return nil, domainErrors.ErrTierSetInvalid
	}

	offer := &model.Offer{
		BusinessUserID: actor.UserID,
		Title:          strings.TrimSpace(input.Title),
		Image:          input.Image,
		Description:    input.Description,
	}
	for _, d := range input.Details {
		if err := validateDetailValues(d.Revisions, d.DeliveryTimeInDays, d.Price); err != nil {
			return nil, err
		}
		offer.Details = append(offer.Details, model.OfferDetail{
			Title:              d.Title,
			Revisions:          d.Revisions,
			DeliveryTimeInDays: d.DeliveryTimeInDays,
			Price:              RoundPrice(d.Price),
			Features:           NormalizeFeatures(d.Features),
			Tier:               d.Tier,
		})
	}

	return u.offers.Create(ctx, offer)
}

// Update applies a partial update to an offer owned by the actor. Detail
// patches address existing rows by id or tier; the tier set never changes.
func (u *OfferUseCase) Update(ctx context.Context, actor model.Identity, offerID int64, patch model.OfferPatch) (*model.Offer, error) {
	offer, err := u.offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer.BusinessUserID != actor.UserID {
		return nil, domainErrors.ErrNotOwner
	}

	for i, dp := range patch.Details {
		if dp.ID == nil && dp.Tier == nil {
			return nil, domainErrors.ErrInvalidDetail
		}
		if dp.Tier != nil && !dp.Tier.Valid() {
			return nil, domainErrors.ErrInvalidDetail
		}
		if err := validatePatchValues(dp); err != nil {
			return nil, err
		}
		if dp.Features != nil {
			patch.Details[i].Features = NormalizeFeatures(dp.Features)
		}
		if dp.Price != nil {
			rounded := RoundPrice(*dp.Price)
			patch.Details[i].Price = &rounded
		}
	}

	return u.offers.Update(ctx, offerID, patch)
}

// Get returns the offer with its details; derived aggregates are computed live
// from the detail rows by the caller via the model helpers.
func (u *OfferUseCase) Get(ctx context.Context, id int64) (*model.Offer, error) {
	return u.offers.GetByID(ctx, id)
}

// GetDetail returns a single pricing tier by id.
func (u *OfferUseCase) GetDetail(ctx context.Context, id int64) (*model.OfferDetail, error) {
	return u.offers.GetDetailByID(ctx, id)
}

// List validates raw filter parameters and returns matching offers.
func (u *OfferUseCase) List(ctx context.Context, params OfferListParams) ([]model.Offer, error) {
	filter, err := parseOfferListParams(params)
	if err != nil {
		return nil, err
	}
	return u.offers.List(ctx, filter)
}

// Delete removes an offer owned by the actor together with its details.
func (u *OfferUseCase) Delete(ctx context.Context, actor model.Identity, id int64) error {
	offer, err := u.offers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if offer.BusinessUserID != actor.UserID {
		return domainErrors.ErrNotOwner
	}
	return u.offers.Delete(ctx, id)
}

func parseOfferListParams(params OfferListParams) (model.OfferFilter, error) {
	filter := model.OfferFilter{
		Search:   strings.TrimSpace(params.Search),
		Ordering: parseOfferOrdering(params.Ordering),
	}

	creatorID, err := parseIDFilter("creator_id", params.CreatorID)
	if err != nil {
		return model.OfferFilter{}, err
	}
	filter.CreatorID = creatorID

	minPrice, err := parseDecimalFilter("min_price", params.MinPrice)
	if err != nil {
		return model.OfferFilter{}, err
	}
	filter.MinPrice = minPrice

	maxDelivery, err := parseIntFilter("max_delivery_time", params.MaxDeliveryTime)
	if err != nil {
		return model.OfferFilter{}, err
	}
	filter.MaxDeliveryTime = maxDelivery

	return filter, nil
}

// parseOfferOrdering maps the raw ordering parameter to a supported order.
// Unknown values fall back to the default instead of failing.
func parseOfferOrdering(raw string) model.OfferOrdering {
	switch model.OfferOrdering(raw) {
	case model.OfferOrderUpdatedAtAsc, model.OfferOrderUpdatedAtDesc,
		model.OfferOrderMinPriceAsc, model.OfferOrderMinPriceDesc:
		return model.OfferOrdering(raw)
	default:
		return model.OfferOrderUpdatedAtDesc
	}
}

func validateDetailValues(revisions, deliveryTimeInDays int, price float64) error {
	if revisions < 0 || deliveryTimeInDays <= 0 || price < 0 {
		return domainErrors.ErrInvalidDetail
	}
	return nil
}

func validatePatchValues(dp model.OfferDetailPatch) error {
	if dp.Revisions != nil && *dp.Revisions < 0 {
		return domainErrors.ErrInvalidDetail
	}
	if dp.DeliveryTimeInDays != nil && *dp.DeliveryTimeInDays <= 0 {
		return domainErrors.ErrInvalidDetail
	}
	if dp.Price != nil && *dp.Price < 0 {
		return domainErrors.ErrInvalidDetail
	}
	return nil
}

package model

import "time"

// Tier identifies one of the three pricing tiers every offer carries.
type Tier string

const (
	TierBasic    Tier = "basic"
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

// Valid reports whether the tier is one of the known pricing tiers.
func (t Tier) Valid() bool {
	return t == TierBasic || t == TierStandard || t == TierPremium
}

// Tiers lists all pricing tiers in ascending order.
func Tiers() []Tier {
	return []Tier{TierBasic, TierStandard, TierPremium}
}

// OfferDetail describes the commercial terms of a single pricing tier.
type OfferDetail struct {
	ID                 int64
	OfferID            int64
	Title              string
	Revisions          int
	DeliveryTimeInDays int
	Price              float64
	Features           []string
	Tier               Tier
}

// Offer is a tiered service listing owned by a business user.
// A persisted offer always has exactly three details, one per tier.
type Offer struct {
	ID             int64
	BusinessUserID int64
	Title          string
	Image          string
	Description    string
	Details        []OfferDetail
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// MinPrice returns the lowest price across the offer's details. The boolean is
// false when the offer has no details loaded.
func (o *Offer) MinPrice() (float64, bool) {
	if len(o.Details) == 0 {
		return 0, false
	}
	min := o.Details[0].Price
	for _, d := range o.Details[1:] {
		if d.Price < min {
			min = d.Price
		}
	}
	return min, true
}

// MinDeliveryTime returns the shortest delivery time across the offer's
// details, independently of which tier carries the lowest price.
func (o *Offer) MinDeliveryTime() (int, bool) {
	if len(o.Details) == 0 {
		return 0, false
	}
	min := o.Details[0].DeliveryTimeInDays
	for _, d := range o.Details[1:] {
		if d.DeliveryTimeInDays < min {
			min = d.DeliveryTimeInDays
		}
	}
	return min, true
}

// OfferDetailPatch targets one existing detail of an offer, addressed either
// by id or by tier. Nil fields keep current values; the tier itself is not
// patchable so the tier set of an offer can never drift.
type OfferDetailPatch struct {
	ID                 *int64
	Tier               *Tier
	Title              *string
	Revisions          *int
	DeliveryTimeInDays *int
	Price              *float64
	Features           []string
}

// OfferPatch holds partial updates for an offer and a subset of its details.
type OfferPatch struct {
	Title       *string
	Image       *string
	Description *string
	Details     []OfferDetailPatch
}

// OfferOrdering enumerates the supported sort orders for offer listings.
type OfferOrdering string

const (
	OfferOrderUpdatedAtDesc OfferOrdering = "-updated_at"
	OfferOrderUpdatedAtAsc  OfferOrdering = "updated_at"
	OfferOrderMinPriceAsc   OfferOrdering = "min_price"
	OfferOrderMinPriceDesc  OfferOrdering = "-min_price"
)

// OfferFilter carries validated listing filters. All fields are optional and
// applied independently; derived values refer to the per-offer minimum across
// the three details.
type OfferFilter struct {
	CreatorID       *int64
	MinPrice        *float64
	MaxDeliveryTime *int
	Search          string
	Ordering        OfferOrdering
}

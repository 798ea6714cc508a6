package dto

import (
	"fmt"
	"time"

	"github.com/gigline/gigline/internal/domain/model"
	"github.com/gigline/gigline/internal/usecase"
)

// OfferDetailPayload describes one pricing tier in a create request.
type OfferDetailPayload struct {
	Title              string   `json:"title"`
	Revisions          int      `json:"revisions"`
	DeliveryTimeInDays int      `json:"delivery_time_in_days"`
	Price              float64  `json:"price"`
	Features           []string `json:"features"`
	OfferType          string   `json:"offer_type"`
}

// CreateOfferRequest carries a new offer with its three tier details.
type CreateOfferRequest struct {
	Title       string               `json:"title"`
	Image       string               `json:"image"`
	Description string               `json:"description"`
	Details     []OfferDetailPayload `json:"details"`
}

// OfferDetailPatchPayload updates a subset of one existing detail, addressed
// either by id or by offer_type.
type OfferDetailPatchPayload struct {
	ID                 *int64   `json:"id"`
	OfferType          *string  `json:"offer_type"`
	Title              *string  `json:"title"`
	Revisions          *int     `json:"revisions"`
	DeliveryTimeInDays *int     `json:"delivery_time_in_days"`
	Price              *float64 `json:"price"`
	Features           []string `json:"features"`
}

// UpdateOfferRequest carries a partial offer update.
type UpdateOfferRequest struct {
	Title       *string                   `json:"title"`
	Image       *string                   `json:"image"`
	Description *string                   `json:"description"`
	Details     []OfferDetailPatchPayload `json:"details"`
}

// OfferDetailRef is a hyperlink to a single detail used by listing responses.
type OfferDetailRef struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// OfferDetailResponse is the full representation of one pricing tier.
type OfferDetailResponse struct {
	ID                 int64    `json:"id"`
	Offer              int64    `json:"offer"`
	Title              string   `json:"title"`
	Revisions          int      `json:"revisions"`
	DeliveryTimeInDays int      `json:"delivery_time_in_days"`
	Price              float64  `json:"price"`
	Features           []string `json:"features"`
	OfferType          string   `json:"offer_type"`
}

// OfferResponse is the listing shape: details are referenced by link and the
// tier-derived minimums are inlined.
type OfferResponse struct {
	ID              int64            `json:"id"`
	User            int64            `json:"user"`
	Title           string           `json:"title"`
	Image           string           `json:"image"`
	Description     string           `json:"description"`
	Details         []OfferDetailRef `json:"details"`
	MinPrice        float64          `json:"min_price"`
	MinDeliveryTime int              `json:"min_delivery_time"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// OfferDetailedResponse embeds the full details. It is returned from create
// and update so the caller sees generated detail ids immediately.
type OfferDetailedResponse struct {
	ID              int64                 `json:"id"`
	User            int64                 `json:"user"`
	Title           string                `json:"title"`
	Image           string                `json:"image"`
	Description     string                `json:"description"`
	Details         []OfferDetailResponse `json:"details"`
	MinPrice        float64               `json:"min_price"`
	MinDeliveryTime int                   `json:"min_delivery_time"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// NewOfferDetailResponse maps one tier detail onto its full representation.
func NewOfferDetailResponse(d *model.OfferDetail) OfferDetailResponse {
	return OfferDetailResponse{
		ID:                 d.ID,
		Offer:              d.OfferID,
		Title:              d.Title,
		Revisions:          d.Revisions,
		DeliveryTimeInDays: d.DeliveryTimeInDays,
		Price:              d.Price,
		Features:           d.Features,
		OfferType:          string(d.Tier),
	}
}

// NewOfferResponse maps an offer onto the linked listing shape.
func NewOfferResponse(o *model.Offer) OfferResponse {
	refs := make([]OfferDetailRef, 0, len(o.Details))
	for _, d := range o.Details {
		refs = append(refs, OfferDetailRef{ID: d.ID, URL: fmt.Sprintf("/api/offerdetails/%d", d.ID)})
	}
	minPrice, _ := o.MinPrice()
	minDelivery, _ := o.MinDeliveryTime()
	return OfferResponse{
		ID:              o.ID,
		User:            o.BusinessUserID,
		Title:           o.Title,
		Image:           o.Image,
		Description:     o.Description,
		Details:         refs,
		MinPrice:        minPrice,
		MinDeliveryTime: minDelivery,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// NewOfferDetailedResponse maps an offer onto the shape with embedded details.
func NewOfferDetailedResponse(o *model.Offer) OfferDetailedResponse {
	details := make([]OfferDetailResponse, 0, len(o.Details))
	for i := range o.Details {
		details = append(details, NewOfferDetailResponse(&o.Details[i]))
	}
	minPrice, _ := o.MinPrice()
	minDelivery, _ := o.MinDeliveryTime()
	return OfferDetailedResponse{
		ID:              o.ID,
		User:            o.BusinessUserID,
		Title:           o.Title,
		Image:           o.Image,
		Description:     o.Description,
		Details:         details,
		MinPrice:        minPrice,
		MinDeliveryTime: minDelivery,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// CreateInput converts the request into a usecase create input.
func (r CreateOfferRequest) CreateInput() usecase.CreateOfferInput {
	details := make([]usecase.OfferDetailInput, 0, len(r.Details))
	for _, d := range r.Details {
		details = append(details, usecase.OfferDetailInput{
			Title:              d.Title,
			Revisions:          d.Revisions,
			DeliveryTimeInDays: d.DeliveryTimeInDays,
			Price:              d.Price,
			Features:           d.Features,
			Tier:               model.Tier(d.OfferType),
		})
	}
	return usecase.CreateOfferInput{
		Title:       r.Title,
		Image:       r.Image,
		Description: r.Description,
		Details:     details,
	}
}

// Patch converts the request into a domain offer patch.
func (r UpdateOfferRequest) Patch() model.OfferPatch {
	details := make([]model.OfferDetailPatch, 0, len(r.Details))
	for _, d := range r.Details {
		dp := model.OfferDetailPatch{
			ID:                 d.ID,
			Title:              d.Title,
			Revisions:          d.Revisions,
			DeliveryTimeInDays: d.DeliveryTimeInDays,
			Price:              d.Price,
			Features:           d.Features,
		}
		if d.OfferType != nil {
			tier := model.Tier(*d.OfferType)
			dp.Tier = &tier
		}
		details = append(details, dp)
	}
	return model.OfferPatch{
		Title:       r.Title,
		Image:       r.Image,
		Description: r.Description,
		Details:     details,
	}
}

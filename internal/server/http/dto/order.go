package dto

import (
	"time"

	"github.com/gigline/gigline/internal/domain/model"
)

// CreateOrderRequest references the offer detail to order.
type CreateOrderRequest struct {
	OfferDetailID int64 `json:"offer_detail_id"`
}

// OrderStatusUpdateRequest carries the requested lifecycle transition.
type OrderStatusUpdateRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the snapshot representation of an order.
type OrderResponse struct {
	ID                 int64     `json:"id"`
	CustomerUser       int64     `json:"customer_user"`
	BusinessUser       int64     `json:"business_user"`
	Title              string    `json:"title"`
	Revisions          int       `json:"revisions"`
	DeliveryTimeInDays int       `json:"delivery_time_in_days"`
	Price              float64   `json:"price"`
	Features           []string  `json:"features"`
	OfferType          string    `json:"offer_type"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// OrderCountResponse reports the number of in-progress orders of a business.
type OrderCountResponse struct {
	OrderCount int64 `json:"order_count"`
}

// CompletedOrderCountResponse reports the number of completed orders of a business.
type CompletedOrderCountResponse struct {
	CompletedOrderCount int64 `json:"completed_order_count"`
}

// NewOrderResponse maps an order onto its response shape.
func NewOrderResponse(o *model.Order) OrderResponse {
	return OrderResponse{
		ID:                 o.ID,
		CustomerUser:       o.CustomerUserID,
		BusinessUser:       o.BusinessUserID,
		Title:              o.Title,
		Revisions:          o.Revisions,
		DeliveryTimeInDays: o.DeliveryTimeInDays,
		Price:              o.Price,
		Features:           o.Features,
		OfferType:          string(o.Tier),
		Status:             string(o.Status),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

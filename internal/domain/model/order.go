package model

import "time"

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s OrderStatus) Valid() bool {
	return s == OrderStatusInProgress || s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Terminal reports whether no further transitions are permitted from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransition reports whether an order may move from one status to another.
// Only in_progress has successors: completed and cancelled.
func CanTransition(from, to OrderStatus) bool {
	return from == OrderStatusInProgress && (to == OrderStatusCompleted || to == OrderStatusCancelled)
}

// Order is an immutable value snapshot of one offer detail's commercial terms
// taken at creation time. Later edits to the source detail never touch it;
// only the status field is mutable.
type Order struct {
	ID                 int64
	CustomerUserID     int64
	BusinessUserID     int64
	Title              string
	Revisions          int
	DeliveryTimeInDays int
	Price              float64
	Features           []string
	Tier               Tier
	Status             OrderStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

package repository

import (
	"context"

	"github.com/gigline/gigline/internal/domain/model"
)

// OrderRepository describes persistence operations for orders.
//
// CreateFromDetail snapshots the referenced detail's commercial terms inside a
// single transaction. UpdateStatus performs its ownership and transition checks
// under a row lock so concurrent transitions cannot race.
type OrderRepository interface {
	CreateFromDetail(ctx context.Context, customerUserID, offerDetailID int64) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID, actorID int64, status model.OrderStatus) (*model.Order, error)
	CountByBusinessAndStatus(ctx context.Context, businessUserID int64, status model.OrderStatus) (int64, error)
	Delete(ctx context.Context, id int64) error
}

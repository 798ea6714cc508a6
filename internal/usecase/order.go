package usecase

import (
	"context"

	domainErrors "github.com/gigline/gigline/internal/domain/errors"
	"github.com/gigline/gigline/internal/domain/model"
	"github.com/gigline/gigline/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle rules: role-gated creation and the
// status state machine.
type OrderUseCase struct {
	orders repository.OrderRepository
	users  repository.UserRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, users repository.UserRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, users: users}
}

// Create places an order against the given offer detail. Only customers may
// order. The detail's commercial terms are snapshotted inside the repository
// transaction; later edits to the detail never affect the order.
func (u *OrderUseCase) Create(ctx context.Context, actor model.Identity, offerDetailID int64) (*model.Order, error) {
	if actor.Role != model.RoleCustomer {
		return nil, domainErrors.ErrRoleViolation
	}
	return u.orders.CreateFromDetail(ctx, actor.UserID, offerDetailID)
}

// UpdateStatus moves an order to a new status. Only the order's business user
// may transition, and only along in_progress -> completed | cancelled.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, actor model.Identity, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, domainErrors.ErrInvalidTransition
	}
	return u.orders.UpdateStatus(ctx, orderID, actor.UserID, status)
}

// ListForUser returns orders where the user participates as customer or
// business, most recently updated first.
func (u *OrderUseCase) ListForUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// Delete erases an order. This is an administrative capability; the parties
// themselves can change status but never erase history.
func (u *OrderUseCase) Delete(ctx context.Context, actor model.Identity, orderID int64) error {
	if !actor.Staff {
		return domainErrors.ErrNotOwner
	}
	return u.orders.Delete(ctx, orderID)
}

// CountByStatus counts a business's orders in the given status. It fails with
// not found unless a business account with that id exists.
func (u *OrderUseCase) CountByStatus(ctx context.Context, businessUserID int64, status model.OrderStatus) (int64, error) {
	usr, err := u.users.GetByID(ctx, businessUserID)
	if err != nil {
		return 0, err
	}
	if usr.Role != model.RoleBusiness {
		return 0, domainErrors.ErrNotFound
	}
	return u.orders.CountByBusinessAndStatus(ctx, businessUserID, status)
}

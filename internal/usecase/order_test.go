package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/gigline/gigline/internal/domain/errors"
	"github.com/gigline/gigline/internal/domain/model"
	testhelpers "github.com/gigline/gigline/internal/test"
)

func orderFixtures() (*testhelpers.OrderRepositoryStub, *testhelpers.UserRepositoryStub) {
	orders := testhelpers.NewOrderRepositoryStub()
	orders.Detail = &model.OfferDetail{
		ID:                 11,
		OfferID:            3,
		Title:              "Standard logo",
		Revisions:          5,
		DeliveryTimeInDays: 3,
		Price:              120,
		Features:           []string{"three concepts"},
		Tier:               model.TierStandard,
	}
	orders.DetailOwner = 2

	users := testhelpers.NewUserRepositoryStub()
	_, _ = users.Create(context.Background(), &model.User{Username: "buyer", Role: model.RoleCustomer})
	_, _ = users.Create(context.Background(), &model.User{Username: "studio", Role: model.RoleBusiness})
	return orders, users
}

func TestOrderUseCaseCreateSnapshotsDetail(t *testing.T) {
	orders, users := orderFixtures()
	uc := NewOrderUseCase(orders, users)

	actor := model.Identity{UserID: 1, Role: model.RoleCustomer}
	order, err := uc.Create(context.Background(), actor, 11)
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if order.CustomerUserID != 1 || order.BusinessUserID != 2 {
		t.Fatalf("unexpected parties: %+v", order)
	}
	if order.Status != model.OrderStatusInProgress {
		t.Fatalf("expected in_progress, got %q", order.Status)
	}
	if order.Title != "Standard logo" || order.Price != 120 || order.Tier != model.TierStandard {
		t.Fatalf("snapshot fields wrong: %+v", order)
	}
}

func TestOrderUseCaseSnapshotSurvivesDetailEdits(t *testing.T) {
	orders, users := orderFixtures()
	uc := NewOrderUseCase(orders, users)

	actor := model.Identity{UserID: 1, Role: model.RoleCustomer}
	order, err := uc.Create(context.Background(), actor, 11)
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	orders.Detail.Price = 999
	orders.Detail.Features[0] = "reworked"
	orders.Detail.DeliveryTimeInDays = 30

	listed, err := uc.ListForUser(context.Background(), order.CustomerUserID)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected one order, got %d", len(listed))
	}
	got := listed[0]
	if got.Price != 120 || got.DeliveryTimeInDays != 3 {
		t.Fatalf("order terms changed with the detail: %+v", got)
	}
	if got.Features[0] != "three concepts" {
		t.Fatalf("order features changed with the detail: %v", got.Features)
	}
}

func TestOrderUseCaseCreateRequiresCustomer(t *testing.T) {
	orders, users := orderFixtures()
	uc := NewOrderUseCase(orders, users)

	actor := model.Identity{UserID: 2, Role: model.RoleBusiness}
	if _, err := uc.Create(context.Background(), actor, 11); !errors.Is(err, domainErrors.ErrRoleViolation) {
		t.Fatalf("expected role violation, got %v", err)
	}
}

func TestOrderUseCaseCreateUnknownDetail(t *testing.T) {
	orders, users := orderFixtures()
	uc := NewOrderUseCase(orders, users)

	actor := model.Identity{UserID: 1, Role: model.RoleCustomer}
	if _, err := uc.Create(context.Background(), actor, 999); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderUseCaseUpdateStatus(t *testing.T) {
	orders, users := orderFixtures()
	uc := NewOrderUseCase(orders, users)
	ctx := context.Background()

	customer := model.Identity{UserID: 1, Role: model.RoleCustomer}
	business := model.Identity{UserID: 2, Role: model.RoleBusiness}

	order, err := uc.Create(ctx, customer, 11)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := uc.UpdateStatus(ctx, business, order.ID, model.OrderStatus("done")); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition for unknown status, got %v", err)
	}

	// The customer side cannot transition even its own order.
	if _, err := uc.UpdateStatus(ctx, customer, order.ID, model.OrderStatusCompleted); !errors.Is(err, domainErrors.ErrNotOwner) {
		t.Fatalf("expected not owner, got %v", err)
	}

	updated, err := uc.UpdateStatus(ctx, business, order.ID, model.OrderStatusCompleted)
	if err != nil {
		t.Fatalf("update status returned error: %v", err)
	}
	if updated.Status != model.OrderStatusCompleted {
		t.Fatalf("expected completed, got %q", updated.Status)
	}

	// Terminal states have no successors.
	if _, err := uc.UpdateStatus(ctx, business, order.ID, model.OrderStatusCancelled); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition from terminal state, got %v", err)
	}
}

func TestOrderUseCaseDeleteRequiresStaff(t *testing.T) {
	orders, users := orderFixtures()
	uc := NewOrderUseCase(orders, users)
	ctx := context.Background()

	customer := model.Identity{UserID: 1, Role: model.RoleCustomer}
	order, err := uc.Create(ctx, customer, 11)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := uc.Delete(ctx, customer, order.ID); !errors.Is(err, domainErrors.ErrNotOwner) {
		t.Fatalf("expected not owner for non-staff, got %v", err)
	}

	staff := model.Identity{UserID: 99, Role: model.RoleCustomer, Staff: true}
	if err := uc.Delete(ctx, staff, order.ID); err != nil {
		t.Fatalf("staff delete returned error: %v", err)
	}
}

func TestOrderUseCaseCountByStatus(t *testing.T) {
	orders, users := orderFixtures()
	uc := NewOrderUseCase(orders, users)
	ctx := context.Background()

	customer := model.Identity{UserID: 1, Role: model.RoleCustomer}
	business := model.Identity{UserID: 2, Role: model.RoleBusiness}
	order, err := uc.Create(ctx, customer, 11)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	count, err := uc.CountByStatus(ctx, 2, model.OrderStatusInProgress)
	if err != nil {
		t.Fatalf("count returned error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one in-progress order, got %d", count)
	}

	if _, err := uc.UpdateStatus(ctx, business, order.ID, model.OrderStatusCompleted); err != nil {
		t.Fatalf("transition failed: %v", err)
	}
	count, err = uc.CountByStatus(ctx, 2, model.OrderStatusCompleted)
	if err != nil {
		t.Fatalf("count returned error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one completed order, got %d", count)
	}

	// Counting against a customer account or a missing account is not found.
	if _, err := uc.CountByStatus(ctx, 1, model.OrderStatusInProgress); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for customer target, got %v", err)
	}
	if _, err := uc.CountByStatus(ctx, 404, model.OrderStatusInProgress); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for missing target, got %v", err)
	}
}

func TestOrderUseCaseListForUser(t *testing.T) {
	orders, users := orderFixtures()
	uc := NewOrderUseCase(orders, users)
	ctx := context.Background()

	customer := model.Identity{UserID: 1, Role: model.RoleCustomer}
	if _, err := uc.Create(ctx, customer, 11); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Both sides of the order see it.
	for _, userID := range []int64{1, 2} {
		listed, err := uc.ListForUser(ctx, userID)
		if err != nil {
			t.Fatalf("list returned error: %v", err)
		}
		if len(listed) != 1 {
			t.Fatalf("expected one order for user %d, got %d", userID, len(listed))
		}
	}

	listed, err := uc.ListForUser(ctx, 3)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected no orders for outsider, got %d", len(listed))
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/gigline/gigline/internal/domain/errors"
	"github.com/gigline/gigline/internal/domain/model"
	testhelpers "github.com/gigline/gigline/internal/test"
)

func TestProfileUseCaseUpdateOwnership(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	_, _ = users.Create(context.Background(), &model.User{Username: "alice", Role: model.RoleCustomer})
	uc := NewProfileUseCase(users)
	ctx := context.Background()

	first := "Alice"
	stranger := model.Identity{UserID: 2, Role: model.RoleCustomer}
	if _, err := uc.Update(ctx, stranger, 1, model.ProfilePatch{FirstName: &first}); !errors.Is(err, domainErrors.ErrNotOwner) {
		t.Fatalf("expected not owner, got %v", err)
	}

	owner := model.Identity{UserID: 1, Role: model.RoleCustomer}
	updated, err := uc.Update(ctx, owner, 1, model.ProfilePatch{FirstName: &first})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.FirstName != "Alice" {
		t.Fatalf("patch not applied: %+v", updated)
	}

	// Staff may edit any profile.
	loc := "Berlin"
	staff := model.Identity{UserID: 9, Role: model.RoleCustomer, Staff: true}
	updated, err = uc.Update(ctx, staff, 1, model.ProfilePatch{Location: &loc})
	if err != nil {
		t.Fatalf("staff update returned error: %v", err)
	}
	if updated.Location != "Berlin" {
		t.Fatalf("staff patch not applied: %+v", updated)
	}
}

func TestProfileUseCaseUpdateUntouchedFieldsSurvive(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	_, _ = users.Create(context.Background(), &model.User{Username: "bob", Role: model.RoleBusiness, Tel: "123", Location: "Paris"})
	uc := NewProfileUseCase(users)

	tel := "456"
	owner := model.Identity{UserID: 1, Role: model.RoleBusiness}
	updated, err := uc.Update(context.Background(), owner, 1, model.ProfilePatch{Tel: &tel})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Tel != "456" || updated.Location != "Paris" {
		t.Fatalf("expected partial update, got %+v", updated)
	}
}

func TestProfileUseCaseListByRole(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	ctx := context.Background()
	_, _ = users.Create(ctx, &model.User{Username: "alice", Role: model.RoleCustomer})
	_, _ = users.Create(ctx, &model.User{Username: "studio", Role: model.RoleBusiness})
	_, _ = users.Create(ctx, &model.User{Username: "agency", Role: model.RoleBusiness})
	uc := NewProfileUseCase(users)

	businesses, err := uc.ListByRole(ctx, model.RoleBusiness)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(businesses) != 2 {
		t.Fatalf("expected two businesses, got %d", len(businesses))
	}

	if _, err := uc.ListByRole(ctx, model.Role("admin")); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown role, got %v", err)
	}
}

func TestProfileUseCaseGet(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	_, _ = users.Create(context.Background(), &model.User{Username: "alice", Role: model.RoleCustomer})
	uc := NewProfileUseCase(users)

	user, err := uc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user %+v", user)
	}

	if _, err := uc.Get(context.Background(), 404); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

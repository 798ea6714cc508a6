package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/gigline/gigline/internal/domain/errors"
	"github.com/gigline/gigline/internal/domain/model"
	testhelpers "github.com/gigline/gigline/internal/test"
)

func reviewFixtures() (*testhelpers.ReviewRepositoryStub, *testhelpers.UserRepositoryStub) {
	reviews := testhelpers.NewReviewRepositoryStub()
	users := testhelpers.NewUserRepositoryStub()
	_, _ = users.Create(context.Background(), &model.User{Username: "buyer", Role: model.RoleCustomer})
	_, _ = users.Create(context.Background(), &model.User{Username: "studio", Role: model.RoleBusiness})
	return reviews, users
}

func TestReviewUseCaseCreateSuccess(t *testing.T) {
	reviews, users := reviewFixtures()
	uc := NewReviewUseCase(reviews, users)

	actor := model.Identity{UserID: 1, Role: model.RoleCustomer}
	review, err := uc.Create(context.Background(), actor, 2, 5, "great work")
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if review.BusinessUserID != 2 || review.ReviewerID != 1 || review.Rating != 5 {
		t.Fatalf("unexpected review %+v", review)
	}
}

func TestReviewUseCaseCreateRules(t *testing.T) {
	reviews, users := reviewFixtures()
	uc := NewReviewUseCase(reviews, users)
	ctx := context.Background()

	business := model.Identity{UserID: 2, Role: model.RoleBusiness}
	if _, err := uc.Create(ctx, business, 2, 5, ""); !errors.Is(err, domainErrors.ErrRoleViolation) {
		t.Fatalf("expected role violation for business reviewer, got %v", err)
	}

	customer := model.Identity{UserID: 1, Role: model.RoleCustomer}
	if _, err := uc.Create(ctx, customer, 1, 5, ""); !errors.Is(err, domainErrors.ErrRoleViolation) {
		t.Fatalf("expected role violation for customer target, got %v", err)
	}
	if _, err := uc.Create(ctx, customer, 404, 5, ""); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for missing target, got %v", err)
	}
	for _, rating := range []int{0, 6, -1} {
		if _, err := uc.Create(ctx, customer, 2, rating, ""); !errors.Is(err, domainErrors.ErrRatingOutOfRange) {
			t.Fatalf("expected rating error for %d, got %v", rating, err)
		}
	}
}

func TestReviewUseCaseCreateSelfReview(t *testing.T) {
	reviews, users := reviewFixtures()
	// An account that is both a customer caller and the business target can
	// only happen with staff-crafted ids, but the rule still holds.
	_, _ = users.Create(context.Background(), &model.User{Username: "dual", Role: model.RoleBusiness})
	uc := NewReviewUseCase(reviews, users)

	actor := model.Identity{UserID: 3, Role: model.RoleCustomer}
	if _, err := uc.Create(context.Background(), actor, 3, 4, ""); !errors.Is(err, domainErrors.ErrSelfReview) {
		t.Fatalf("expected self review error, got %v", err)
	}
}

func TestReviewUseCaseCreateDuplicate(t *testing.T) {
	reviews, users := reviewFixtures()
	uc := NewReviewUseCase(reviews, users)
	ctx := context.Background()

	actor := model.Identity{UserID: 1, Role: model.RoleCustomer}
	if _, err := uc.Create(ctx, actor, 2, 4, "first"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := uc.Create(ctx, actor, 2, 5, "second"); !errors.Is(err, domainErrors.ErrDuplicateReview) {
		t.Fatalf("expected duplicate review error, got %v", err)
	}
}

func TestReviewUseCaseUpdate(t *testing.T) {
	reviews, users := reviewFixtures()
	uc := NewReviewUseCase(reviews, users)
	ctx := context.Background()

	actor := model.Identity{UserID: 1, Role: model.RoleCustomer}
	review, err := uc.Create(ctx, actor, 2, 4, "good")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stranger := model.Identity{UserID: 9, Role: model.RoleCustomer}
	rating := 5
	if _, err := uc.Update(ctx, stranger, review.ID, model.ReviewPatch{Rating: &rating}); !errors.Is(err, domainErrors.ErrNotOwner) {
		t.Fatalf("expected not owner, got %v", err)
	}

	bad := 9
	if _, err := uc.Update(ctx, actor, review.ID, model.ReviewPatch{Rating: &bad}); !errors.Is(err, domainErrors.ErrRatingOutOfRange) {
		t.Fatalf("expected rating error, got %v", err)
	}

	desc := "excellent"
	updated, err := uc.Update(ctx, actor, review.ID, model.ReviewPatch{Rating: &rating, Description: &desc})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Rating != 5 || updated.Description != "excellent" {
		t.Fatalf("patch not applied: %+v", updated)
	}
}

func TestReviewUseCaseDelete(t *testing.T) {
	reviews, users := reviewFixtures()
	uc := NewReviewUseCase(reviews, users)
	ctx := context.Background()

	actor := model.Identity{UserID: 1, Role: model.RoleCustomer}
	review, err := uc.Create(ctx, actor, 2, 4, "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stranger := model.Identity{UserID: 9, Role: model.RoleCustomer}
	if err := uc.Delete(ctx, stranger, review.ID); !errors.Is(err, domainErrors.ErrNotOwner) {
		t.Fatalf("expected not owner, got %v", err)
	}
	if err := uc.Delete(ctx, actor, review.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}

	// The pair becomes free again after deletion.
	if _, err := uc.Create(ctx, actor, 2, 3, "again"); err != nil {
		t.Fatalf("create after delete failed: %v", err)
	}
}

func TestReviewUseCaseListFilters(t *testing.T) {
	reviews, users := reviewFixtures()
	uc := NewReviewUseCase(reviews, users)
	ctx := context.Background()

	if _, err := uc.List(ctx, ReviewListParams{BusinessUserID: "2", ReviewerID: "1", Ordering: "-rating"}); err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if reviews.LastFilter.BusinessUserID == nil || *reviews.LastFilter.BusinessUserID != 2 {
		t.Fatalf("business filter not forwarded: %+v", reviews.LastFilter)
	}
	if reviews.LastFilter.ReviewerID == nil || *reviews.LastFilter.ReviewerID != 1 {
		t.Fatalf("reviewer filter not forwarded: %+v", reviews.LastFilter)
	}
	if reviews.LastFilter.Ordering != model.ReviewOrderRatingDesc {
		t.Fatalf("unexpected ordering %q", reviews.LastFilter.Ordering)
	}

	_, err := uc.List(ctx, ReviewListParams{BusinessUserID: "abc"})
	var filterErr *domainErrors.InvalidFilterError
	if !errors.As(err, &filterErr) || filterErr.Field != "business_user_id" {
		t.Fatalf("expected error naming business_user_id, got %v", err)
	}

	// Unknown ordering silently falls back instead of failing.
	if _, err := uc.List(ctx, ReviewListParams{Ordering: "created_at"}); err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if reviews.LastFilter.Ordering != model.ReviewOrderUpdatedAtDesc {
		t.Fatalf("expected fallback ordering, got %q", reviews.LastFilter.Ordering)
	}
}

// Package facade provides stub implementations of the HTTP facade contracts.
package facade

import (
	"context"

	"github.com/gigline/gigline/internal/domain/model"
	"github.com/gigline/gigline/internal/usecase"
)

// AuthFacadeStub simulates account lifecycle interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, usecase.RegisterInput) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (model.Identity, error)
}

// Register returns a user and token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, input usecase.RegisterInput) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, input)
	}
	return &model.User{ID: 1, Username: input.Username, Email: input.Email, Role: input.Role}, "token", nil
}

// Authenticate returns a user and token for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, username, password)
	}
	return &model.User{ID: 1, Username: username, Role: model.RoleCustomer}, "token", nil
}

// ParseToken returns the stored identity for the authenticated caller.
func (s AuthFacadeStub) ParseToken(token string) (model.Identity, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return model.Identity{UserID: 1, Role: model.RoleCustomer}, nil
}

// ProfileFacadeStub simulates profile operations.
type ProfileFacadeStub struct {
	ProfileFn        func(context.Context, int64) (*model.User, error)
	UpdateProfileFn  func(context.Context, model.Identity, int64, model.ProfilePatch) (*model.User, error)
	ProfilesByRoleFn func(context.Context, model.Role) ([]model.User, error)
}

// Profile returns the configured user.
func (s ProfileFacadeStub) Profile(ctx context.Context, id int64) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, id)
	}
	return &model.User{ID: id, Username: "user", Role: model.RoleCustomer}, nil
}

// UpdateProfile delegates to the override or returns the patched default user.
func (s ProfileFacadeStub) UpdateProfile(ctx context.Context, actor model.Identity, id int64, patch model.ProfilePatch) (*model.User, error) {
	if s.UpdateProfileFn != nil {
		return s.UpdateProfileFn(ctx, actor, id, patch)
	}
	return &model.User{ID: id, Username: "user", Role: model.RoleCustomer}, nil
}

// ProfilesByRole returns the configured listing.
func (s ProfileFacadeStub) ProfilesByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	if s.ProfilesByRoleFn != nil {
		return s.ProfilesByRoleFn(ctx, role)
	}
	return []model.User{{ID: 1, Username: "user", Role: role}}, nil
}

// OfferFacadeStub provides controllable behaviour for catalog endpoints.
type OfferFacadeStub struct {
	CreateOfferFn func(context.Context, model.Identity, usecase.CreateOfferInput) (*model.Offer, error)
	UpdateOfferFn func(context.Context, model.Identity, int64, model.OfferPatch) (*model.Offer, error)
	OffersFn      func(context.Context, usecase.OfferListParams) ([]model.Offer, error)
	OfferFn       func(context.Context, int64) (*model.Offer, error)
	OfferDetailFn func(context.Context, int64) (*model.OfferDetail, error)
	DeleteOfferFn func(context.Context, model.Identity, int64) error
}

// CreateOffer delegates to the override or returns a minimal created offer.
func (s OfferFacadeStub) CreateOffer(ctx context.Context, actor model.Identity, input usecase.CreateOfferInput) (*model.Offer, error) {
	if s.CreateOfferFn != nil {
		return s.CreateOfferFn(ctx, actor, input)
	}
	return &model.Offer{ID: 1, BusinessUserID: actor.UserID, Title: input.Title}, nil
}

// UpdateOffer delegates to the override or returns a minimal offer.
func (s OfferFacadeStub) UpdateOffer(ctx context.Context, actor model.Identity, offerID int64, patch model.OfferPatch) (*model.Offer, error) {
	if s.UpdateOfferFn != nil {
		return s.UpdateOfferFn(ctx, actor, offerID, patch)
	}
	return &model.Offer{ID: offerID, BusinessUserID: actor.UserID}, nil
}

// Offers returns the configured listing.
func (s OfferFacadeStub) Offers(ctx context.Context, params usecase.OfferListParams) ([]model.Offer, error) {
	if s.OffersFn != nil {
		return s.OffersFn(ctx, params)
	}
	return []model.Offer{{ID: 1}}, nil
}

// Offer returns the configured offer.
func (s OfferFacadeStub) Offer(ctx context.Context, id int64) (*model.Offer, error) {
	if s.OfferFn != nil {
		return s.OfferFn(ctx, id)
	}
	return &model.Offer{ID: id}, nil
}

// OfferDetail returns the configured detail.
func (s OfferFacadeStub) OfferDetail(ctx context.Context, id int64) (*model.OfferDetail, error) {
	if s.OfferDetailFn != nil {
		return s.OfferDetailFn(ctx, id)
	}
	return &model.OfferDetail{ID: id, OfferID: 1, Tier: model.TierBasic}, nil
}

// DeleteOffer executes the configured override.
func (s OfferFacadeStub) DeleteOffer(ctx context.Context, actor model.Identity, id int64) error {
	if s.DeleteOfferFn != nil {
		return s.DeleteOfferFn(ctx, actor, id)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateOrderFn       func(context.Context, model.Identity, int64) (*model.Order, error)
	UpdateOrderStatusFn func(context.Context, model.Identity, int64, model.OrderStatus) (*model.Order, error)
	OrdersForUserFn     func(context.Context, int64) ([]model.Order, error)
	DeleteOrderFn       func(context.Context, model.Identity, int64) error
	CountFn             func(context.Context, int64, model.OrderStatus) (int64, error)
}

// CreateOrder delegates to the override or returns a minimal in-progress order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, actor model.Identity, offerDetailID int64) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, actor, offerDetailID)
	}
	return &model.Order{ID: 1, CustomerUserID: actor.UserID, Status: model.OrderStatusInProgress}, nil
}

// UpdateOrderStatus delegates to the override or echoes the requested status.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, actor model.Identity, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, actor, orderID, status)
	}
	return &model.Order{ID: orderID, BusinessUserID: actor.UserID, Status: status}, nil
}

// OrdersForUser returns the configured listing.
func (s OrderFacadeStub) OrdersForUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersForUserFn != nil {
		return s.OrdersForUserFn(ctx, userID)
	}
	return []model.Order{{ID: 1, CustomerUserID: userID, Status: model.OrderStatusInProgress}}, nil
}

// DeleteOrder executes the configured override.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, actor model.Identity, orderID int64) error {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, actor, orderID)
	}
	return nil
}

// CountOrdersByStatus returns the configured count.
func (s OrderFacadeStub) CountOrdersByStatus(ctx context.Context, businessUserID int64, status model.OrderStatus) (int64, error) {
	if s.CountFn != nil {
		return s.CountFn(ctx, businessUserID, status)
	}
	return 0, nil
}

// ReviewFacadeStub provides controllable behaviour for review endpoints.
type ReviewFacadeStub struct {
	CreateReviewFn func(context.Context, model.Identity, int64, int, string) (*model.Review, error)
	ReviewFn       func(context.Context, int64) (*model.Review, error)
	UpdateReviewFn func(context.Context, model.Identity, int64, model.ReviewPatch) (*model.Review, error)
	DeleteReviewFn func(context.Context, model.Identity, int64) error
	ReviewsFn      func(context.Context, usecase.ReviewListParams) ([]model.Review, error)
}

// CreateReview delegates to the override or returns a minimal review.
func (s ReviewFacadeStub) CreateReview(ctx context.Context, actor model.Identity, businessUserID int64, rating int, description string) (*model.Review, error) {
	if s.CreateReviewFn != nil {
		return s.CreateReviewFn(ctx, actor, businessUserID, rating, description)
	}
	return &model.Review{ID: 1, BusinessUserID: businessUserID, ReviewerID: actor.UserID, Rating: rating, Description: description}, nil
}

// Review returns the configured review.
func (s ReviewFacadeStub) Review(ctx context.Context, id int64) (*model.Review, error) {
	if s.ReviewFn != nil {
		return s.ReviewFn(ctx, id)
	}
	return &model.Review{ID: id, Rating: 5}, nil
}

// UpdateReview delegates to the override or returns a minimal review.
func (s ReviewFacadeStub) UpdateReview(ctx context.Context, actor model.Identity, id int64, patch model.ReviewPatch) (*model.Review, error) {
	if s.UpdateReviewFn != nil {
		return s.UpdateReviewFn(ctx, actor, id, patch)
	}
	return &model.Review{ID: id, ReviewerID: actor.UserID, Rating: 5}, nil
}

// DeleteReview executes the configured override.
func (s ReviewFacadeStub) DeleteReview(ctx context.Context, actor model.Identity, id int64) error {
	if s.DeleteReviewFn != nil {
		return s.DeleteReviewFn(ctx, actor, id)
	}
	return nil
}

// Reviews returns the configured listing.
func (s ReviewFacadeStub) Reviews(ctx context.Context, params usecase.ReviewListParams) ([]model.Review, error) {
	if s.ReviewsFn != nil {
		return s.ReviewsFn(ctx, params)
	}
	return []model.Review{{ID: 1, Rating: 5}}, nil
}

// StatsFacadeStub returns fixed platform counters.
type StatsFacadeStub struct {
	BaseInfoFn func(context.Context) (*model.BaseInfo, error)
}

// BaseInfo returns the configured counters.
func (s StatsFacadeStub) BaseInfo(ctx context.Context) (*model.BaseInfo, error) {
	if s.BaseInfoFn != nil {
		return s.BaseInfoFn(ctx)
	}
	return &model.BaseInfo{}, nil
}

// MarketplaceFacadeStub aggregates facade dependencies for HTTP layer tests.
type MarketplaceFacadeStub struct {
	AuthFacadeStub
	ProfileFacadeStub
	OfferFacadeStub
	OrderFacadeStub
	ReviewFacadeStub
	StatsFacadeStub
}

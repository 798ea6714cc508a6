package handlers

import (
	"context"

	"github.com/gigline/gigline/internal/domain/model"
	"github.com/gigline/gigline/internal/usecase"
)

// AuthFacade describes account lifecycle capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, input usecase.RegisterInput) (*model.User, string, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, string, error)
	ParseToken(token string) (model.Identity, error)
}

// ProfileFacade provides user profile operations.
type ProfileFacade interface {
	Profile(ctx context.Context, id int64) (*model.User, error)
	UpdateProfile(ctx context.Context, actor model.Identity, id int64, patch model.ProfilePatch) (*model.User, error)
	ProfilesByRole(ctx context.Context, role model.Role) ([]model.User, error)
}

// OfferFacade encapsulates catalog operations exposed via HTTP.
type OfferFacade interface {
	CreateOffer(ctx context.Context, actor model.Identity, input usecase.CreateOfferInput) (*model.Offer, error)
	UpdateOffer(ctx context.Context, actor model.Identity, offerID int64, patch model.OfferPatch) (*model.Offer, error)
	Offers(ctx context.Context, params usecase.OfferListParams) ([]model.Offer, error)
	Offer(ctx context.Context, id int64) (*model.Offer, error)
	OfferDetail(ctx context.Context, id int64) (*model.OfferDetail, error)
	DeleteOffer(ctx context.Context, actor model.Identity, id int64) error
}

// OrderFacade encapsulates order lifecycle operations.
type OrderFacade interface {
	CreateOrder(ctx context.Context, actor model.Identity, offerDetailID int64) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, actor model.Identity, orderID int64, status model.OrderStatus) (*model.Order, error)
	OrdersForUser(ctx context.Context, userID int64) ([]model.Order, error)
	DeleteOrder(ctx context.Context, actor model.Identity, orderID int64) error
	CountOrdersByStatus(ctx context.Context, businessUserID int64, status model.OrderStatus) (int64, error)
}

// ReviewFacade encapsulates review operations.
type ReviewFacade interface {
	CreateReview(ctx context.Context, actor model.Identity, businessUserID int64, rating int, description string) (*model.Review, error)
	Review(ctx context.Context, id int64) (*model.Review, error)
	UpdateReview(ctx context.Context, actor model.Identity, id int64, patch model.ReviewPatch) (*model.Review, error)
	DeleteReview(ctx context.Context, actor model.Identity, id int64) error
	Reviews(ctx context.Context, params usecase.ReviewListParams) ([]model.Review, error)
}

// StatsFacade provides the public aggregate counters.
type StatsFacade interface {
	BaseInfo(ctx context.Context) (*model.BaseInfo, error)
}

// MarketplaceFacade aggregates the full set of operations used across handlers.
type MarketplaceFacade interface {
	AuthFacade
	ProfileFacade
	OfferFacade
	OrderFacade
	ReviewFacade
	StatsFacade
}

package app

import (
	"context"

	"github.com/gigline/gigline/internal/domain/model"
	"github.com/gigline/gigline/internal/usecase"
)

// MarketplaceFacade aggregates the marketplace use cases behind a single
// application surface consumed by the HTTP layer.
type MarketplaceFacade struct {
	auth     *usecase.AuthUseCase
	profiles *usecase.ProfileUseCase
	offers   *usecase.OfferUseCase
	orders   *usecase.OrderUseCase
	reviews  *usecase.ReviewUseCase
	stats    *usecase.StatsUseCase
}

// NewMarketplaceFacade constructs MarketplaceFacade.
func NewMarketplaceFacade(
	auth *usecase.AuthUseCase,
	profiles *usecase.ProfileUseCase,
	offers *usecase.OfferUseCase,
	orders *usecase.OrderUseCase,
	reviews *usecase.ReviewUseCase,
	stats *usecase.StatsUseCase,
) *MarketplaceFacade {
	return &MarketplaceFacade{
		auth:     auth,
		profiles: profiles,
		offers:   offers,
		orders:   orders,
		reviews:  reviews,
		stats:    stats,
	}
}

func (f *MarketplaceFacade) Register(ctx context.Context, input usecase.RegisterInput) (*model.User, string, error) {
	return f.auth.Register(ctx, input)
}

func (f *MarketplaceFacade) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, username, password)
}

func (f *MarketplaceFacade) ParseToken(token string) (model.Identity, error) {
	return f.auth.ParseToken(token)
}

func (f *MarketplaceFacade) Profile(ctx context.Context, id int64) (*model.User, error) {
	return f.profiles.Get(ctx, id)
}

func (f *MarketplaceFacade) UpdateProfile(ctx context.Context, actor model.Identity, id int64, patch model.ProfilePatch) (*model.User, error) {
	return f.profiles.Update(ctx, actor, id, patch)
}

func (f *MarketplaceFacade) ProfilesByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	return f.profiles.ListByRole(ctx, role)
}

func (f *MarketplaceFacade) CreateOffer(ctx context.Context, actor model.Identity, input usecase.CreateOfferInput) (*model.Offer, error) {
	return f.offers.Create(ctx, actor, input)
}

func (f *MarketplaceFacade) UpdateOffer(ctx context.Context, actor model.Identity, offerID int64, patch model.OfferPatch) (*model.Offer, error) {
	return f.offers.Update(ctx, actor, offerID, patch)
}

func (f *MarketplaceFacade) Offers(ctx context.Context, params usecase.OfferListParams) ([]model.Offer, error) {
	return f.offers.List(ctx, params)
}

func (f *MarketplaceFacade) Offer(ctx context.Context, id int64) (*model.Offer, error) {
	return f.offers.Get(ctx, id)
}

func (f *MarketplaceFacade) OfferDetail(ctx context.Context, id int64) (*model.OfferDetail, error) {
	return f.offers.GetDetail(ctx, id)
}

func (f *MarketplaceFacade) DeleteOffer(ctx context.Context, actor model.Identity, id int64) error {
	return f.offers.Delete(ctx, actor, id)
}

func (f *MarketplaceFacade) CreateOrder(ctx context.Context, actor model.Identity, offerDetailID int64) (*model.Order, error) {
	return f.orders.Create(ctx, actor, offerDetailID)
}

func (f *MarketplaceFacade) UpdateOrderStatus(ctx context.Context, actor model.Identity, orderID int64, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, actor, orderID, status)
}

func (f *MarketplaceFacade) OrdersForUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListForUser(ctx, userID)
}

func (f *MarketplaceFacade) DeleteOrder(ctx context.Context, actor model.Identity, orderID int64) error {
	return f.orders.Delete(ctx, actor, orderID)
}

func (f *MarketplaceFacade) CountOrdersByStatus(ctx context.Context, businessUserID int64, status model.OrderStatus) (int64, error) {
	return f.orders.CountByStatus(ctx, businessUserID, status)
}

func (f *MarketplaceFacade) CreateReview(ctx context.Context, actor model.Identity, businessUserID int64, rating int, description string) (*model.Review, error) {
	return f.reviews.Create(ctx, actor, businessUserID, rating, description)
}

func (f *MarketplaceFacade) Review(ctx context.Context, id int64) (*model.Review, error) {
	return f.reviews.Get(ctx, id)
}

func (f *MarketplaceFacade) UpdateReview(ctx context.Context, actor model.Identity, id int64, patch model.ReviewPatch) (*model.Review, error) {
	return f.reviews.Update(ctx, actor, id, patch)
}

func (f *MarketplaceFacade) DeleteReview(ctx context.Context, actor model.Identity, id int64) error {
	return f.reviews.Delete(ctx, actor, id)
}

func (f *MarketplaceFacade) Reviews(ctx context.Context, params usecase.ReviewListParams) ([]model.Review, error) {
	return f.reviews.List(ctx, params)
}

func (f *MarketplaceFacade) BaseInfo(ctx context.Context) (*model.BaseInfo, error) {
	return f.stats.BaseInfo(ctx)
}

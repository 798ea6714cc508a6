package test

import (
	"context"

	domainErrors "github.com/gigline/gigline/internal/domain/errors"
	"github.com/gigline/gigline/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless the username is taken or the stub carries an
// explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[user.Username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *user
	stored.ID = s.Next
	s.Next++
	s.Users[stored.Username] = &stored
	s.ByID[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByRole returns stored users with the requested role.
func (s *UserRepositoryStub) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var users []model.User
	for id := int64(1); id < s.Next; id++ {
		if user, ok := s.ByID[id]; ok && user.Role == role {
			users = append(users, *user)
		}
	}
	return users, nil
}

// UpdateProfile applies the patch to the stored user.
func (s *UserRepositoryStub) UpdateProfile(ctx context.Context, id int64, patch model.ProfilePatch) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&user.FirstName, patch.FirstName)
	apply(&user.LastName, patch.LastName)
	apply(&user.Email, patch.Email)
	apply(&user.Tel, patch.Tel)
	apply(&user.Location, patch.Location)
	apply(&user.Description, patch.Description)
	apply(&user.WorkingHours, patch.WorkingHours)
	apply(&user.File, patch.File)
	return user, nil
}

// OfferRepositoryStub stores offers in-memory and records the last filter seen.
type OfferRepositoryStub struct {
	Offers     map[int64]*model.Offer
	NextOffer  int64
	NextDetail int64
	Err        error

	ListFn     func(context.Context, model.OfferFilter) ([]model.Offer, error)
	LastFilter model.OfferFilter
}

// NewOfferRepositoryStub constructs a stub with initialized storage.
func NewOfferRepositoryStub() *OfferRepositoryStub {
	return &OfferRepositoryStub{
		Offers:     make(map[int64]*model.Offer),
		NextOffer:  1,
		NextDetail: 1,
	}
}

// Create assigns identifiers to the offer and its details and stores a copy.
func (s *OfferRepositoryStub) Create(ctx context.Context, offer *model.Offer) (*model.Offer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Offers == nil {
		s.Offers = make(map[int64]*model.Offer)
	}
	if s.NextOffer == 0 {
		s.NextOffer = 1
	}
	if s.NextDetail == 0 {
		s.NextDetail = 1
	}
	stored := *offer
	stored.ID = s.NextOffer
	s.NextOffer++
	stored.Details = append([]model.OfferDetail(nil), offer.Details...)
	for i := range stored.Details {
		stored.Details[i].ID = s.NextDetail
		stored.Details[i].OfferID = stored.ID
		s.NextDetail++
	}
	s.Offers[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches an offer or returns not found.
func (s *OfferRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Offer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if offer, ok := s.Offers[id]; ok {
		return offer, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetDetailByID searches stored offers for the detail.
func (s *OfferRepositoryStub) GetDetailByID(ctx context.Context, id int64) (*model.OfferDetail, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, offer := range s.Offers {
		for i := range offer.Details {
			if offer.Details[i].ID == id {
				return &offer.Details[i], nil
			}
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Update applies the patch to the stored offer. Detail patches address details
// by id or tier; a miss returns not found.
func (s *OfferRepositoryStub) Update(ctx context.Context, offerID int64, patch model.OfferPatch) (*model.Offer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	offer, ok := s.Offers[offerID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if patch.Title != nil {
		offer.Title = *patch.Title
	}
	if patch.Image != nil {
		offer.Image = *patch.Image
	}
	if patch.Description != nil {
		offer.Description = *patch.Description
	}
	for _, dp := range patch.Details {
		idx := -1
		for i := range offer.Details {
			if dp.ID != nil && offer.Details[i].ID == *dp.ID {
				idx = i
				break
			}
			if dp.ID == nil && dp.Tier != nil && offer.Details[i].Tier == *dp.Tier {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, domainErrors.ErrNotFound
		}
		d := &offer.Details[idx]
		if dp.Title != nil {
			d.Title = *dp.Title
		}
		if dp.Revisions != nil {
			d.Revisions = *dp.Revisions
		}
		if dp.DeliveryTimeInDays != nil {
			d.DeliveryTimeInDays = *dp.DeliveryTimeInDays
		}
		if dp.Price != nil {
			d.Price = *dp.Price
		}
		if dp.Features != nil {
			d.Features = dp.Features
		}
	}
	return offer, nil
}

// List records the received filter and returns the configured result.
func (s *OfferRepositoryStub) List(ctx context.Context, filter model.OfferFilter) ([]model.Offer, error) {
	s.LastFilter = filter
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	var offers []model.Offer
	for id := int64(1); id < s.NextOffer; id++ {
		if offer, ok := s.Offers[id]; ok {
			offers = append(offers, *offer)
		}
	}
	return offers, nil
}

// Delete removes the offer or returns not found.
func (s *OfferRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Offers[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Offers, id)
	return nil
}

// OrderRepositoryStub stores orders in-memory. Detail configures the snapshot
// source used by CreateFromDetail; a nil Detail means the referenced detail
// does not exist.
type OrderRepositoryStub struct {
	Orders      map[int64]*model.Order
	Next        int64
	Detail      *model.OfferDetail
	DetailOwner int64
	Err         error

	CreateFromDetailFn func(context.Context, int64, int64) (*model.Order, error)
	UpdateStatusFn     func(context.Context, int64, int64, model.OrderStatus) (*model.Order, error)
}

// NewOrderRepositoryStub constructs a stub with initialized storage.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		Orders: make(map[int64]*model.Order),
		Next:   1,
	}
}

// CreateFromDetail snapshots the configured detail into a new in-progress order.
func (s *OrderRepositoryStub) CreateFromDetail(ctx context.Context, customerUserID, offerDetailID int64) (*model.Order, error) {
	if s.CreateFromDetailFn != nil {
		return s.CreateFromDetailFn(ctx, customerUserID, offerDetailID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Detail == nil || s.Detail.ID != offerDetailID {
		return nil, domainErrors.ErrNotFound
	}
	if s.Orders == nil {
		s.Orders = make(map[int64]*model.Order)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	order := &model.Order{
		ID:                 s.Next,
		CustomerUserID:     customerUserID,
		BusinessUserID:     s.DetailOwner,
		Title:              s.Detail.Title,
		Revisions:          s.Detail.Revisions,
		DeliveryTimeInDays: s.Detail.DeliveryTimeInDays,
		Price:              s.Detail.Price,
		Features:           append([]string(nil), s.Detail.Features...),
		Tier:               s.Detail.Tier,
		Status:             model.OrderStatusInProgress,
	}
	s.Next++
	s.Orders[order.ID] = order
	return order, nil
}

// GetByID fetches an order or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if order, ok := s.Orders[id]; ok {
		return order, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns orders where the user participates on either side.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var orders []model.Order
	for id := int64(1); id < s.Next; id++ {
		if order, ok := s.Orders[id]; ok && (order.CustomerUserID == userID || order.BusinessUserID == userID) {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

// UpdateStatus enforces ownership and the lifecycle transition rules the
// storage layer applies under its row lock.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID, actorID int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, actorID, status)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	order, ok := s.Orders[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if order.BusinessUserID != actorID {
		return nil, domainErrors.ErrNotOwner
	}
	if !model.CanTransition(order.Status, status) {
		return nil, domainErrors.ErrInvalidTransition
	}
	order.Status = status
	return order, nil
}

// CountByBusinessAndStatus counts stored orders for the business.
func (s *OrderRepositoryStub) CountByBusinessAndStatus(ctx context.Context, businessUserID int64, status model.OrderStatus) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	var count int64
	for _, order := range s.Orders {
		if order.BusinessUserID == businessUserID && order.Status == status {
			count++
		}
	}
	return count, nil
}

// Delete removes the order or returns not found.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Orders[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Orders, id)
	return nil
}

// ReviewRepositoryStub stores reviews in-memory and enforces the one review
// per (business, reviewer) pair rule the way the store-level constraint does.
type ReviewRepositoryStub struct {
	Reviews map[int64]*model.Review
	Next    int64
	Err     error

	ListFn     func(context.Context, model.ReviewFilter) ([]model.Review, error)
	LastFilter model.ReviewFilter
}

// NewReviewRepositoryStub constructs a stub with initialized storage.
func NewReviewRepositoryStub() *ReviewRepositoryStub {
	return &ReviewRepositoryStub{
		Reviews: make(map[int64]*model.Review),
		Next:    1,
	}
}

// Create stores the review unless the pair already has one.
func (s *ReviewRepositoryStub) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Reviews == nil {
		s.Reviews = make(map[int64]*model.Review)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	for _, existing := range s.Reviews {
		if existing.BusinessUserID == review.BusinessUserID && existing.ReviewerID == review.ReviewerID {
			return nil, domainErrors.ErrDuplicateReview
		}
	}
	stored := *review
	stored.ID = s.Next
	s.Next++
	s.Reviews[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches a review or returns not found.
func (s *ReviewRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Review, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if review, ok := s.Reviews[id]; ok {
		return review, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Update applies the patch to the stored review.
func (s *ReviewRepositoryStub) Update(ctx context.Context, id int64, patch model.ReviewPatch) (*model.Review, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	review, ok := s.Reviews[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if patch.Rating != nil {
		review.Rating = *patch.Rating
	}
	if patch.Description != nil {
		review.Description = *patch.Description
	}
	return review, nil
}

// List records the received filter and returns the configured result.
func (s *ReviewRepositoryStub) List(ctx context.Context, filter model.ReviewFilter) ([]model.Review, error) {
	s.LastFilter = filter
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	var reviews []model.Review
	for id := int64(1); id < s.Next; id++ {
		if review, ok := s.Reviews[id]; ok {
			reviews = append(reviews, *review)
		}
	}
	return reviews, nil
}

// Delete removes the review or returns not found.
func (s *ReviewRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Reviews[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Reviews, id)
	return nil
}

// StatsRepositoryStub returns fixed platform counters.
type StatsRepositoryStub struct {
	Info *model.BaseInfo
	Err  error
}

// BaseInfo returns the configured counters or zeroes.
func (s *StatsRepositoryStub) BaseInfo(ctx context.Context) (*model.BaseInfo, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Info == nil {
		return &model.BaseInfo{}, nil
	}
	return s.Info, nil
}

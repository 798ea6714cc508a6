package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/gigline/gigline/internal/domain/errors"
	"github.com/gigline/gigline/internal/domain/model"
	"github.com/gigline/gigline/internal/server/http/dto"
	"github.com/gigline/gigline/internal/server/http/middleware"
	facadetest "github.com/gigline/gigline/internal/test/facade"
	"github.com/gigline/gigline/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, route, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asIdentity(identity model.Identity) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.IdentityContextKey, identity)
	}
}

func TestCurrentIdentity(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentIdentity(c); got.UserID != 0 {
		t.Fatalf("expected zero identity when not set, got %+v", got)
	}

	c.Set(middleware.IdentityContextKey, model.Identity{UserID: 42, Role: model.RoleBusiness})
	if got := CurrentIdentity(c); got.UserID != 42 || got.Role != model.RoleBusiness {
		t.Fatalf("unexpected identity %+v", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	body, _ := json.Marshal(dto.RegistrationRequest{
		Username:         "alice",
		Email:            "alice@example.com",
		Password:         "pass",
		RepeatedPassword: "pass",
		Type:             "customer",
	})
	handler := NewAuthHandler(facadetest.AuthFacadeStub{RegisterFn: func(ctx context.Context, input usecase.RegisterInput) (*model.User, string, error) {
		if input.Username != "alice" || input.Role != model.RoleCustomer {
			t.Fatalf("unexpected input %+v", input)
		}
		return &model.User{ID: 5, Username: input.Username, Email: input.Email, Role: input.Role}, "session-token", nil
	}})
	resp := performRequest(t, http.MethodPost, "/registration", "/registration", handler.Register, nil, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	if got := resp.Header().Get("Authorization"); got != "Bearer session-token" {
		t.Fatalf("unexpected authorization header %q", got)
	}
	var out dto.AuthResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.UserID != 5 || out.Token != "session-token" || out.Username != "alice" {
		t.Fatalf("unexpected response %+v", out)
	}
}

func TestAuthHandlerRegisterErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{name: "password mismatch", err: domainErrors.ErrPasswordMismatch, code: http.StatusBadRequest},
		{name: "unknown account type", err: domainErrors.ErrRoleViolation, code: http.StatusBadRequest},
		{name: "missing fields", err: domainErrors.ErrInvalidCredentials, code: http.StatusBadRequest},
		{name: "duplicate username", err: domainErrors.ErrAlreadyExists, code: http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, _ := json.Marshal(dto.RegistrationRequest{Username: "alice"})
			handler := NewAuthHandler(facadetest.AuthFacadeStub{RegisterFn: func(context.Context, usecase.RegisterInput) (*model.User, string, error) {
				return nil, "", tc.err
			}})
			resp := performRequest(t, http.MethodPost, "/registration", "/registration", handler.Register, nil, body)
			if resp.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, resp.Code)
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Username: "alice", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(facadetest.AuthFacadeStub{}).Login, nil, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	handler := NewAuthHandler(facadetest.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (*model.User, string, error) {
		return nil, "", domainErrors.ErrInvalidCredentials
	}})
	resp = performRequest(t, http.MethodPost, "/login", "/login", handler.Login, nil, body)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestOfferHandlerCreate(t *testing.T) {
	body, _ := json.Marshal(dto.CreateOfferRequest{
		Title: "Logo design",
		Details: []dto.OfferDetailPayload{
			{Title: "Basic", Revisions: 2, DeliveryTimeInDays: 5, Price: 50, OfferType: "basic"},
			{Title: "Standard", Revisions: 5, DeliveryTimeInDays: 3, Price: 120, OfferType: "standard"},
			{Title: "Premium", Revisions: 10, DeliveryTimeInDays: 1, Price: 300, OfferType: "premium"},
		},
	})
	handler := NewOfferHandler(facadetest.OfferFacadeStub{CreateOfferFn: func(ctx context.Context, actor model.Identity, input usecase.CreateOfferInput) (*model.Offer, error) {
		if len(input.Details) != 3 || input.Details[0].Tier != model.TierBasic {
			t.Fatalf("unexpected input %+v", input)
		}
		return &model.Offer{ID: 1, BusinessUserID: actor.UserID, Title: input.Title, Details: []model.OfferDetail{
			{ID: 10, OfferID: 1, Price: 50, DeliveryTimeInDays: 5, Tier: model.TierBasic},
			{ID: 11, OfferID: 1, Price: 120, DeliveryTimeInDays: 3, Tier: model.TierStandard},
			{ID: 12, OfferID: 1, Price: 300, DeliveryTimeInDays: 1, Tier: model.TierPremium},
		}}, nil
	}})
	resp := performRequest(t, http.MethodPost, "/offers", "/offers", handler.Create, asIdentity(model.Identity{UserID: 7, Role: model.RoleBusiness}), body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var out dto.OfferDetailedResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.User != 7 || len(out.Details) != 3 || out.MinPrice != 50 || out.MinDeliveryTime != 1 {
		t.Fatalf("unexpected response %+v", out)
	}
}

func TestOfferHandlerCreateErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{name: "customer caller", err: domainErrors.ErrRoleViolation, code: http.StatusForbidden},
		{name: "broken tier set", err: domainErrors.ErrTierSetInvalid, code: http.StatusBadRequest},
		{name: "bad detail values", err: domainErrors.ErrInvalidDetail, code: http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, _ := json.Marshal(dto.CreateOfferRequest{Title: "x"})
			handler := NewOfferHandler(facadetest.OfferFacadeStub{CreateOfferFn: func(context.Context, model.Identity, usecase.CreateOfferInput) (*model.Offer, error) {
				return nil, tc.err
			}})
			resp := performRequest(t, http.MethodPost, "/offers", "/offers", handler.Create, asIdentity(model.Identity{UserID: 1}), body)
			if resp.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, resp.Code)
			}
		})
	}
}

func TestOfferHandlerListForwardsQuery(t *testing.T) {
	handler := NewOfferHandler(facadetest.OfferFacadeStub{OffersFn: func(ctx context.Context, params usecase.OfferListParams) ([]model.Offer, error) {
		if params.CreatorID != "2" || params.MinPrice != "50" || params.MaxDeliveryTime != "7" || params.Ordering != "min_price" {
			t.Fatalf("unexpected params %+v", params)
		}
		return []model.Offer{{ID: 1, Details: []model.OfferDetail{{ID: 3, Price: 60, DeliveryTimeInDays: 4, Tier: model.TierBasic}}}}, nil
	}})
	resp := performRequest(t, http.MethodGet, "/offers", "/offers?creator_id=2&min_price=50&max_delivery_time=7&ordering=min_price", handler.List, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var out []dto.OfferResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out) != 1 || len(out[0].Details) != 1 || out[0].Details[0].URL != "/api/offerdetails/3" {
		t.Fatalf("unexpected response %+v", out)
	}
}

func TestOfferHandlerListInvalidFilterNamesField(t *testing.T) {
	handler := NewOfferHandler(facadetest.OfferFacadeStub{OffersFn: func(context.Context, usecase.OfferListParams) ([]model.Offer, error) {
		return nil, domainErrors.NewInvalidFilter("max_delivery_time")
	}})
	resp := performRequest(t, http.MethodGet, "/offers", "/offers?max_delivery_time=abc", handler.List, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	var out map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out["field"] != "max_delivery_time" {
		t.Fatalf("expected offending field in body, got %v", out)
	}
}

func TestOfferHandlerGetNotFound(t *testing.T) {
	handler := NewOfferHandler(facadetest.OfferFacadeStub{OfferFn: func(context.Context, int64) (*model.Offer, error) {
		return nil, domainErrors.ErrNotFound
	}})
	resp := performRequest(t, http.MethodGet, "/offers/:id", "/offers/99", handler.Get, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/offers/:id", "/offers/abc", handler.Get, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for non-numeric id, got %d", resp.Code)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	body, _ := json.Marshal(dto.CreateOrderRequest{OfferDetailID: 11})
	handler := NewOrderHandler(facadetest.OrderFacadeStub{CreateOrderFn: func(ctx context.Context, actor model.Identity, offerDetailID int64) (*model.Order, error) {
		if offerDetailID != 11 || actor.UserID != 1 {
			t.Fatalf("unexpected arguments %d %+v", offerDetailID, actor)
		}
		return &model.Order{ID: 1, CustomerUserID: 1, BusinessUserID: 2, Title: "Standard", Status: model.OrderStatusInProgress, Tier: model.TierStandard}, nil
	}})
	resp := performRequest(t, http.MethodPost, "/orders", "/orders", handler.Create, asIdentity(model.Identity{UserID: 1, Role: model.RoleCustomer}), body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var out dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Status != "in_progress" || out.OfferType != "standard" {
		t.Fatalf("unexpected response %+v", out)
	}
}

func TestOrderHandlerUpdateStatusErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{name: "not owner", err: domainErrors.ErrNotOwner, code: http.StatusForbidden},
		{name: "terminal state", err: domainErrors.ErrInvalidTransition, code: http.StatusBadRequest},
		{name: "missing order", err: domainErrors.ErrNotFound, code: http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, _ := json.Marshal(dto.OrderStatusUpdateRequest{Status: "completed"})
			handler := NewOrderHandler(facadetest.OrderFacadeStub{UpdateOrderStatusFn: func(context.Context, model.Identity, int64, model.OrderStatus) (*model.Order, error) {
				return nil, tc.err
			}})
			resp := performRequest(t, http.MethodPatch, "/orders/:id", "/orders/1", handler.UpdateStatus, asIdentity(model.Identity{UserID: 2, Role: model.RoleBusiness}), body)
			if resp.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, resp.Code)
			}
		})
	}
}

func TestOrderHandlerCounts(t *testing.T) {
	handler := NewOrderHandler(facadetest.OrderFacadeStub{CountFn: func(ctx context.Context, businessUserID int64, status model.OrderStatus) (int64, error) {
		if businessUserID != 2 {
			t.Fatalf("unexpected business id %d", businessUserID)
		}
		if status == model.OrderStatusInProgress {
			return 3, nil
		}
		return 7, nil
	}})

	resp := performRequest(t, http.MethodGet, "/order-count/:business_user_id", "/order-count/2", handler.CountInProgress, asIdentity(model.Identity{UserID: 1}), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var inProgress dto.OrderCountResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &inProgress); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if inProgress.OrderCount != 3 {
		t.Fatalf("expected 3, got %d", inProgress.OrderCount)
	}

	resp = performRequest(t, http.MethodGet, "/completed-order-count/:business_user_id", "/completed-order-count/2", handler.CountCompleted, asIdentity(model.Identity{UserID: 1}), nil)
	var completed dto.CompletedOrderCountResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &completed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if completed.CompletedOrderCount != 7 {
		t.Fatalf("expected 7, got %d", completed.CompletedOrderCount)
	}
}

func TestReviewHandlerCreateErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{name: "duplicate pair", err: domainErrors.ErrDuplicateReview, code: http.StatusConflict},
		{name: "self review", err: domainErrors.ErrSelfReview, code: http.StatusBadRequest},
		{name: "rating out of range", err: domainErrors.ErrRatingOutOfRange, code: http.StatusBadRequest},
		{name: "business reviewer", err: domainErrors.ErrRoleViolation, code: http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, _ := json.Marshal(dto.CreateReviewRequest{BusinessUser: 2, Rating: 5})
			handler := NewReviewHandler(facadetest.ReviewFacadeStub{CreateReviewFn: func(context.Context, model.Identity, int64, int, string) (*model.Review, error) {
				return nil, tc.err
			}})
			resp := performRequest(t, http.MethodPost, "/reviews", "/reviews", handler.Create, asIdentity(model.Identity{UserID: 1, Role: model.RoleCustomer}), body)
			if resp.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, resp.Code)
			}
		})
	}
}

func TestReviewHandlerCreateSuccess(t *testing.T) {
	body, _ := json.Marshal(dto.CreateReviewRequest{BusinessUser: 2, Rating: 4, Description: "solid"})
	resp := performRequest(t, http.MethodPost, "/reviews", "/reviews", NewReviewHandler(facadetest.ReviewFacadeStub{}).Create, asIdentity(model.Identity{UserID: 1, Role: model.RoleCustomer}), body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var out dto.ReviewResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.BusinessUser != 2 || out.Reviewer != 1 || out.Rating != 4 {
		t.Fatalf("unexpected response %+v", out)
	}
}

func TestProfileHandlerShapes(t *testing.T) {
	user := &model.User{ID: 3, Username: "studio", Email: "studio@example.com", Role: model.RoleBusiness, FirstName: "Jo"}
	getHandler := NewProfileHandler(facadetest.ProfileFacadeStub{ProfileFn: func(context.Context, int64) (*model.User, error) {
		return user, nil
	}})
	resp := performRequest(t, http.MethodGet, "/profile/:id", "/profile/3", getHandler.Get, asIdentity(model.Identity{UserID: 3}), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var detail map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if detail["email"] != "studio@example.com" || detail["type"] != "business" {
		t.Fatalf("unexpected detail shape %v", detail)
	}

	listHandler := NewProfileHandler(facadetest.ProfileFacadeStub{ProfilesByRoleFn: func(context.Context, model.Role) ([]model.User, error) {
		return []model.User{*user}, nil
	}})
	resp = performRequest(t, http.MethodGet, "/profiles/business", "/profiles/business", listHandler.ListBusinesses, asIdentity(model.Identity{UserID: 1}), nil)
	var list []map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one profile, got %d", len(list))
	}
	// The listing shape never exposes email or creation time.
	if _, ok := list[0]["email"]; ok {
		t.Fatalf("listing shape leaked email: %v", list[0])
	}
	if _, ok := list[0]["created_at"]; ok {
		t.Fatalf("listing shape leaked created_at: %v", list[0])
	}
}

func TestProfileHandlerUpdateNotOwner(t *testing.T) {
	body, _ := json.Marshal(dto.ProfileUpdateRequest{})
	handler := NewProfileHandler(facadetest.ProfileFacadeStub{UpdateProfileFn: func(context.Context, model.Identity, int64, model.ProfilePatch) (*model.User, error) {
		return nil, domainErrors.ErrNotOwner
	}})
	resp := performRequest(t, http.MethodPatch, "/profile/:id", "/profile/3", handler.Update, asIdentity(model.Identity{UserID: 1}), body)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", resp.Code)
	}
}

func TestStatsHandlerBaseInfo(t *testing.T) {
	handler := NewStatsHandler(facadetest.StatsFacadeStub{BaseInfoFn: func(context.Context) (*model.BaseInfo, error) {
		return &model.BaseInfo{ReviewCount: 10, AverageRating: 4.3, BusinessProfileCount: 5, OfferCount: 12}, nil
	}})
	resp := performRequest(t, http.MethodGet, "/base-info", "/base-info", handler.BaseInfo, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var out dto.BaseInfoResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.ReviewCount != 10 || out.AverageRating != 4.3 || out.OfferCount != 12 {
		t.Fatalf("unexpected response %+v", out)
	}
}

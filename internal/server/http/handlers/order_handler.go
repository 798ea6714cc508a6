package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gigline/gigline/internal/domain/model"
	"github.com/gigline/gigline/internal/server/http/dto"
)

// OrderHandler serves the order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders. Customer accounts only; the order snapshots
// the referenced offer detail.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), CurrentIdentity(c), req.OfferDetailID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewOrderResponse(order))
}

// List handles GET /api/orders. Returns orders where the caller participates
// on either side.
func (h *OrderHandler) List(c *gin.Context) {
	identity := CurrentIdentity(c)
	orders, err := h.facade.OrdersForUser(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, dto.NewOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus handles PATCH /api/orders/:id. Only the business side may move
// an in-progress order to completed or cancelled.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.OrderStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), CurrentIdentity(c), id, model.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// Delete handles DELETE /api/orders/:id. Staff accounts only.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteOrder(c.Request.Context(), CurrentIdentity(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CountInProgress handles GET /api/order-count/:business_user_id.
func (h *OrderHandler) CountInProgress(c *gin.Context) {
	id, ok := pathID(c, "business_user_id")
	if !ok {
		return
	}

	count, err := h.facade.CountOrdersByStatus(c.Request.Context(), id, model.OrderStatusInProgress)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OrderCountResponse{OrderCount: count})
}

// CountCompleted handles GET /api/completed-order-count/:business_user_id.
func (h *OrderHandler) CountCompleted(c *gin.Context) {
	id, ok := pathID(c, "business_user_id")
	if !ok {
		return
	}

	count, err := h.facade.CountOrdersByStatus(c.Request.Context(), id, model.OrderStatusCompleted)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CompletedOrderCountResponse{CompletedOrderCount: count})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gigline/gigline/internal/server/http/dto"
	"github.com/gigline/gigline/internal/usecase"
)

// OfferHandler serves the offer catalog.
type OfferHandler struct {
	facade OfferFacade
}

// NewOfferHandler constructs OfferHandler.
func NewOfferHandler(facade OfferFacade) *OfferHandler {
	return &OfferHandler{facade: facade}
}

// Create handles POST /api/offers. Business accounts only.
func (h *OfferHandler) Create(c *gin.Context) {
	var req dto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	offer, err := h.facade.CreateOffer(c.Request.Context(), CurrentIdentity(c), req.CreateInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewOfferDetailedResponse(offer))
}

// List handles GET /api/offers. Unknown filter values reject the request;
// unknown ordering values fall back to the default.
func (h *OfferHandler) List(c *gin.Context) {
	params := usecase.OfferListParams{
		CreatorID:       c.Query("creator_id"),
		MinPrice:        c.Query("min_price"),
		MaxDeliveryTime: c.Query("max_delivery_time"),
		Search:          c.Query("search"),
		Ordering:        c.Query("ordering"),
	}

	offers, err := h.facade.Offers(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.OfferResponse, 0, len(offers))
	for i := range offers {
		resp = append(resp, dto.NewOfferResponse(&offers[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/offers/:id.
func (h *OfferHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	offer, err := h.facade.Offer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOfferResponse(offer))
}

// GetDetail handles GET /api/offerdetails/:id.
func (h *OfferHandler) GetDetail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := h.facade.OfferDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOfferDetailResponse(detail))
}

// Update handles PATCH /api/offers/:id. Owner only.
func (h *OfferHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	offer, err := h.facade.UpdateOffer(c.Request.Context(), CurrentIdentity(c), id, req.Patch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOfferDetailedResponse(offer))
}

// Delete handles DELETE /api/offers/:id. Owner only.
func (h *OfferHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteOffer(c.Request.Context(), CurrentIdentity(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

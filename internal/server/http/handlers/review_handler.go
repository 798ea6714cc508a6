package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gigline/gigline/internal/domain/model"
	"github.com/gigline/gigline/internal/server/http/dto"
	"github.com/gigline/gigline/internal/usecase"
)

// ReviewHandler serves review endpoints.
type ReviewHandler struct {
	facade ReviewFacade
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(facade ReviewFacade) *ReviewHandler {
	return &ReviewHandler{facade: facade}
}

// Create handles POST /api/reviews. Customer accounts only, one review per
// business.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	review, err := h.facade.CreateReview(c.Request.Context(), CurrentIdentity(c), req.BusinessUser, req.Rating, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewReviewResponse(review))
}

// List handles GET /api/reviews.
func (h *ReviewHandler) List(c *gin.Context) {
	params := usecase.ReviewListParams{
		BusinessUserID: c.Query("business_user_id"),
		ReviewerID:     c.Query("reviewer_id"),
		Ordering:       c.Query("ordering"),
	}

	reviews, err := h.facade.Reviews(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		resp = append(resp, dto.NewReviewResponse(&reviews[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/reviews/:id.
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	review, err := h.facade.Review(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewReviewResponse(review))
}

// Update handles PATCH /api/reviews/:id. Reviewer only.
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ReviewUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	review, err := h.facade.UpdateReview(c.Request.Context(), CurrentIdentity(c), id, model.ReviewPatch{
		Rating:      req.Rating,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewReviewResponse(review))
}

// Delete handles DELETE /api/reviews/:id. Reviewer only.
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteReview(c.Request.Context(), CurrentIdentity(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

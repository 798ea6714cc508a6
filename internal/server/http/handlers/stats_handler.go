package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gigline/gigline/internal/server/http/dto"
)

// StatsHandler serves the public platform counters.
type StatsHandler struct {
	facade StatsFacade
}

// NewStatsHandler constructs StatsHandler.
func NewStatsHandler(facade StatsFacade) *StatsHandler {
	return &StatsHandler{facade: facade}
}

// BaseInfo handles GET /api/base-info.
func (h *StatsHandler) BaseInfo(c *gin.Context) {
	info, err := h.facade.BaseInfo(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BaseInfoResponse{
		ReviewCount:          info.ReviewCount,
		AverageRating:        info.AverageRating,
		BusinessProfileCount: info.BusinessProfileCount,
		OfferCount:           info.OfferCount,
	})
}

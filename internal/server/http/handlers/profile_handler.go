package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gigline/gigline/internal/domain/model"
	"github.com/gigline/gigline/internal/server/http/dto"
)

// ProfileHandler serves user profile endpoints.
type ProfileHandler struct {
	facade ProfileFacade
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(facade ProfileFacade) *ProfileHandler {
	return &ProfileHandler{facade: facade}
}

// Get handles GET /api/profile/:id.
func (h *ProfileHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.facade.Profile(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProfileDetail(user))
}

// Update handles PATCH /api/profile/:id. Only the owner or staff may edit.
func (h *ProfileHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, err := h.facade.UpdateProfile(c.Request.Context(), CurrentIdentity(c), id, req.Patch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProfileDetail(user))
}

// ListCustomers handles GET /api/profiles/customer.
func (h *ProfileHandler) ListCustomers(c *gin.Context) {
	h.listByRole(c, model.RoleCustomer)
}

// ListBusinesses handles GET /api/profiles/business.
func (h *ProfileHandler) ListBusinesses(c *gin.Context) {
	h.listByRole(c, model.RoleBusiness)
}

func (h *ProfileHandler) listByRole(c *gin.Context, role model.Role) {
	users, err := h.facade.ProfilesByRole(c.Request.Context(), role)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.ProfileSummaryResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dto.NewProfileSummary(&users[i]))
	}
	c.JSON(http.StatusOK, resp)
}

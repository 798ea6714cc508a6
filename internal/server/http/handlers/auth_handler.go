package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/gigline/gigline/internal/domain/errors"
	"github.com/gigline/gigline/internal/domain/model"
	"github.com/gigline/gigline/internal/server/http/dto"
	"github.com/gigline/gigline/internal/server/http/middleware"
	"github.com/gigline/gigline/internal/usecase"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/registration.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, token, err := h.facade.Register(c.Request.Context(), usecase.RegisterInput{
		Username:         req.Username,
		Email:            req.Email,
		Password:         req.Password,
		RepeatedPassword: req.RepeatedPassword,
		Role:             model.Role(req.Type),
	})
	if err != nil {
		// Missing fields and unknown account types are caller mistakes here,
		// not authentication or permission failures.
		if errors.Is(err, domainErrors.ErrInvalidCredentials) || errors.Is(err, domainErrors.ErrRoleViolation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		UserID:   user.ID,
	})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		UserID:   user.ID,
	})
}

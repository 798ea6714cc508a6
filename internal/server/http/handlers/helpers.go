package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/gigline/gigline/internal/domain/errors"
	"github.com/gigline/gigline/internal/domain/model"
	"github.com/gigline/gigline/internal/server/http/middleware"
)

// CurrentIdentity extracts the authenticated caller from context.
func CurrentIdentity(c *gin.Context) model.Identity {
	val, ok := c.Get(middleware.IdentityContextKey)
	if !ok {
		return model.Identity{}
	}
	identity, _ := val.(model.Identity)
	return identity
}

// pathID parses a numeric path parameter. The boolean is false when the
// parameter is absent or not a positive integer; a 404 is already written.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.Status(http.StatusNotFound)
		return 0, false
	}
	return id, true
}

// respondError translates a domain error into an HTTP status. Validation
// failures carry a JSON body so callers can see which rule was broken.
func respondError(c *gin.Context, err error) {
	var filterErr *domainErrors.InvalidFilterError
	switch {
	case errors.As(err, &filterErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": filterErr.Error(), "field": filterErr.Field})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrNotOwner), errors.Is(err, domainErrors.ErrRoleViolation):
		c.Status(http.StatusForbidden)
	case errors.Is(err, domainErrors.ErrTierSetInvalid),
		errors.Is(err, domainErrors.ErrInvalidDetail),
		errors.Is(err, domainErrors.ErrInvalidTransition),
		errors.Is(err, domainErrors.ErrRatingOutOfRange),
		errors.Is(err, domainErrors.ErrSelfReview),
		errors.Is(err, domainErrors.ErrPasswordMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrDuplicateReview), errors.Is(err, domainErrors.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.Status(http.StatusUnauthorized)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

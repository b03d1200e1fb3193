package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ritu-rajkumar/Ri-Eat/internal/domain"
)

// respondError translates service errors to HTTP statuses. Anything outside
// the known taxonomy is logged and reported as a generic 500.
func (a *api) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNoRewards):
		c.JSON(http.StatusBadRequest, gin.H{"error": "no rewards available"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	default:
		a.logger.Printf("http: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// bindJSON decodes the request body and reports a 400 on malformed input.
func (a *api) bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

func currentAdmin(c *gin.Context) *domain.Admin {
	v, ok := c.Get(adminCtxKey)
	if !ok {
		return nil
	}
	a, _ := v.(*domain.Admin)
	return a
}

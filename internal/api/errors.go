package api

import (
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/service"
	"alcyxob/fitness-tracker/internal/validation"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// respondError records err on the context for the logging and metrics
// middleware and maps it to a status code. fallback is the message used
// for unexpected errors so internals are not leaked to clients.
func respondError(c *gin.Context, err error, fallback string) {
	_ = c.Error(err)

	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation failed",
			"details": verr.Fields,
		})
	case errors.Is(err, service.ErrProfileNotFound):
		abortWithError(c, http.StatusNotFound, "Profile not found")
	case errors.Is(err, repository.ErrStoreUnavailable):
		abortWithError(c, http.StatusServiceUnavailable, "Database not available")
	case errors.Is(err, service.ErrArchiveDisabled):
		abortWithError(c, http.StatusServiceUnavailable, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}

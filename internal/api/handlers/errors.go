package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"geocentroid/internal/api/middleware"
	"geocentroid/internal/geo"
	"geocentroid/internal/services"
)

// respondError maps service and geo errors to HTTP statuses and logs the
// failure under the request's ID.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrCollectionNotFound):
		status = http.StatusNotFound
	case services.IsInvalidPoint(err):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrEmptyCollection),
		errors.Is(err, geo.ErrZeroTotalWeight),
		errors.Is(err, geo.ErrDegenerateCenter),
		errors.Is(err, geo.ErrWeightOverflow):
		status = http.StatusUnprocessableEntity
	}

	log.Printf("[API] %s %s request=%s status=%d: %v",
		c.Request.Method, c.Request.URL.Path, middleware.GetRequestID(c), status, err)
	c.JSON(status, gin.H{"error": err.Error()})
}

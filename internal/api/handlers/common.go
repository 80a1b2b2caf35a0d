package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	apperrors "airline-crew-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// handleServiceError maps service layer errors to HTTP status codes
func handleServiceError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsConflict(err),
		apperrors.IsInvalidTransition(err),
		errors.Is(err, apperrors.ErrFlightHasAssignments):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsEligibility(err),
		errors.Is(err, apperrors.ErrFlightNotAssignable),
		errors.Is(err, apperrors.ErrFlightAlreadyDeparted),
		errors.Is(err, apperrors.ErrNoEligibleCrew):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrInvalidTimeRange),
		errors.Is(err, apperrors.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsStorage(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// parseIDParam extracts a numeric id from a path parameter
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " parameter"})
		return 0, false
	}
	return uint(id), true
}

// parsePagination extracts page and page_size query parameters
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}

// parseTimeQuery extracts an RFC3339 timestamp from a query parameter
func parseTimeQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be RFC3339 formatted"})
		return time.Time{}, false
	}
	return t, true
}

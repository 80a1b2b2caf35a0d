package handlers

import (
	"net/http"
	"time"

	"airline-crew-backend/internal/auth"
	"airline-crew-backend/internal/database/models"
	"airline-crew-backend/internal/repository"
	"airline-crew-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FlightHandler handles flight HTTP requests
type FlightHandler struct {
	service service.FlightServiceInterface
}

// NewFlightHandler creates a new flight handler
func NewFlightHandler(svc service.FlightServiceInterface) *FlightHandler {
	return &FlightHandler{service: svc}
}

// CreateFlight godoc
// @Summary Create a new flight
// @Description Creates a flight with a unique flight number
// @Tags flights
// @Accept json
// @Produce json
// @Param flight body service.CreateFlightRequest true "Flight data"
// @Security BearerAuth
// @Success 201 {object} service.FlightResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /flights [post]
func (h *FlightHandler) CreateFlight(c *gin.Context) {
	var req service.CreateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var createdBy *uint
	if userID, ok := auth.GetUserID(c); ok {
		createdBy = &userID
	}

	flight, err := h.service.Create(&req, createdBy)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, flight)
}

// GetFlight godoc
// @Summary Get a flight by ID
// @Tags flights
// @Produce json
// @Param id path int true "Flight ID"
// @Security BearerAuth
// @Success 200 {object} service.FlightResponse
// @Failure 404 {object} ErrorResponse
// @Router /flights/{id} [get]
func (h *FlightHandler) GetFlight(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	flight, err := h.service.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, flight)
}

// GetFlightByNumber godoc
// @Summary Get a flight by flight number
// @Tags flights
// @Produce json
// @Param number path string true "Flight number"
// @Security BearerAuth
// @Success 200 {object} service.FlightResponse
// @Failure 404 {object} ErrorResponse
// @Router /flights/by-number/{number} [get]
func (h *FlightHandler) GetFlightByNumber(c *gin.Context) {
	flight, err := h.service.GetByNumber(c.Param("number"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, flight)
}

// ListFlights godoc
// @Summary List flights
// @Description Lists flights with optional status, city and departure window filters
// @Tags flights
// @Produce json
// @Param status query string false "Flight status"
// @Param city query string false "Departure or arrival city"
// @Param departure_from query string false "Earliest departure (RFC3339)"
// @Param departure_to query string false "Latest departure (RFC3339)"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Security BearerAuth
// @Success 200 {object} service.FlightListResponse
// @Failure 400 {object} ErrorResponse
// @Router /flights [get]
func (h *FlightHandler) ListFlights(c *gin.Context) {
	var filter repository.FlightFilter

	if status := c.Query("status"); status != "" {
		fs := models.FlightStatus(status)
		if !fs.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
			return
		}
		filter.Status = &fs
	}
	filter.City = c.Query("city")

	from, ok := parseTimeQuery(c, "departure_from")
	if !ok {
		return
	}
	if !from.IsZero() {
		filter.DepartureFrom = &from
	}
	to, ok := parseTimeQuery(c, "departure_to")
	if !ok {
		return
	}
	if !to.IsZero() {
		filter.DepartureTo = &to
	}

	page, pageSize := parsePagination(c)
	flights, err := h.service.List(filter, page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, flights)
}

// GetFlightsNeedingCrew godoc
// @Summary List flights that still need crew
// @Description Lists staffable flights whose active assignments are below the required crew size
// @Tags flights
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Security BearerAuth
// @Success 200 {object} service.FlightListResponse
// @Router /flights/needing-crew [get]
func (h *FlightHandler) GetFlightsNeedingCrew(c *gin.Context) {
	page, pageSize := parsePagination(c)

	flights, err := h.service.GetNeedingCrew(page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, flights)
}

// GetDailySchedule godoc
// @Summary Get the flight schedule for one day
// @Tags flights
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Security BearerAuth
// @Success 200 {array} service.FlightResponse
// @Failure 400 {object} ErrorResponse
// @Router /flights/schedule/daily [get]
func (h *FlightHandler) GetDailySchedule(c *gin.Context) {
	day, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD formatted"})
		return
	}

	flights, err := h.service.GetDailySchedule(day)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, flights)
}

// UpdateFlight godoc
// @Summary Update a flight
// @Tags flights
// @Accept json
// @Produce json
// @Param id path int true "Flight ID"
// @Param flight body service.UpdateFlightRequest true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} service.FlightResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /flights/{id} [put]
func (h *FlightHandler) UpdateFlight(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.service.Update(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, flight)
}

// UpdateFlightStatusRequest carries a flight status change
type UpdateFlightStatusRequest struct {
	Status models.FlightStatus `json:"status" binding:"required"`
}

// UpdateFlightStatus godoc
// @Summary Update a flight's status
// @Tags flights
// @Accept json
// @Produce json
// @Param id path int true "Flight ID"
// @Param status body UpdateFlightStatusRequest true "New status"
// @Security BearerAuth
// @Success 200 {object} service.FlightResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /flights/{id}/status [patch]
func (h *FlightHandler) UpdateFlightStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateFlightStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.service.UpdateStatus(id, req.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, flight)
}

// DeleteFlight godoc
// @Summary Delete a flight
// @Description Deletes a flight that has not yet departed and has no active assignments
// @Tags flights
// @Param id path int true "Flight ID"
// @Security BearerAuth
// @Success 204 "Flight deleted"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /flights/{id} [delete]
func (h *FlightHandler) DeleteFlight(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetFlightCrewSummary godoc
// @Summary Get the staffing summary for a flight
// @Description Returns assigned counts per position and the staffing status
// @Tags flights
// @Produce json
// @Param id path int true "Flight ID"
// @Security BearerAuth
// @Success 200 {object} service.FlightCrewSummaryResponse
// @Failure 404 {object} ErrorResponse
// @Router /flights/{id}/crew-summary [get]
func (h *FlightHandler) GetFlightCrewSummary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	summary, err := h.service.CrewSummary(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

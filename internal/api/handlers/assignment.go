package handlers

import (
	"net/http"
	"strconv"

	"airline-crew-backend/internal/auth"
	"airline-crew-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles crew assignment HTTP requests
type AssignmentHandler struct {
	service service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(svc service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{service: svc}
}

// CreateAssignment godoc
// @Summary Assign a crew member to a flight
// @Description Creates an assignment after checking flight status, crew availability and schedule conflicts
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body service.CreateAssignmentRequest true "Assignment data"
// @Security BearerAuth
// @Success 201 {object} service.AssignmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /assignments [post]
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req service.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := auth.GetUserID(c)
	assignment, err := h.service.Create(&req, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// GetAssignment godoc
// @Summary Get an assignment by ID
// @Tags assignments
// @Produce json
// @Param id path int true "Assignment ID"
// @Security BearerAuth
// @Success 200 {object} service.AssignmentResponse
// @Failure 404 {object} ErrorResponse
// @Router /assignments/{id} [get]
func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	assignment, err := h.service.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// ListAssignments godoc
// @Summary List assignments
// @Tags assignments
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Security BearerAuth
// @Success 200 {object} service.AssignmentListResponse
// @Router /assignments [get]
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	page, pageSize := parsePagination(c)

	assignments, err := h.service.GetAll(page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// GetAssignmentsByDateRange godoc
// @Summary List assignments whose flights depart inside a date range
// @Tags assignments
// @Produce json
// @Param start query string true "Range start (RFC3339)"
// @Param end query string true "Range end (RFC3339)"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Security BearerAuth
// @Success 200 {object} service.AssignmentListResponse
// @Failure 400 {object} ErrorResponse
// @Router /assignments/by-date-range [get]
func (h *AssignmentHandler) GetAssignmentsByDateRange(c *gin.Context) {
	start, ok := parseTimeQuery(c, "start")
	if !ok {
		return
	}
	end, ok := parseTimeQuery(c, "end")
	if !ok {
		return
	}
	if start.IsZero() || end.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end query parameters are required"})
		return
	}

	page, pageSize := parsePagination(c)
	assignments, err := h.service.GetByDateRange(start, end, page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// GetFlightAssignments godoc
// @Summary List assignments for a flight
// @Tags assignments
// @Produce json
// @Param id path int true "Flight ID"
// @Security BearerAuth
// @Success 200 {array} service.AssignmentResponse
// @Failure 404 {object} ErrorResponse
// @Router /flights/{id}/assignments [get]
func (h *AssignmentHandler) GetFlightAssignments(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	assignments, err := h.service.GetByFlight(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// GetCrewMemberAssignments godoc
// @Summary List assignments for a crew member
// @Tags assignments
// @Produce json
// @Param id path int true "Crew member ID"
// @Param active_only query bool false "Only non-cancelled assignments"
// @Security BearerAuth
// @Success 200 {array} service.AssignmentResponse
// @Failure 404 {object} ErrorResponse
// @Router /crew/{id}/assignments [get]
func (h *AssignmentHandler) GetCrewMemberAssignments(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active_only", "false"))
	assignments, err := h.service.GetByCrewMember(id, activeOnly)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// GetAvailableCrew godoc
// @Summary List crew members eligible for a flight
// @Description Returns available crew with no schedule conflict, ordered by the planner's position priority
// @Tags assignments
// @Produce json
// @Param id path int true "Flight ID"
// @Security BearerAuth
// @Success 200 {array} service.CrewMemberResponse
// @Failure 404 {object} ErrorResponse
// @Router /flights/{id}/available-crew [get]
func (h *AssignmentHandler) GetAvailableCrew(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	crew, err := h.service.AvailableCrew(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, crew)
}

// AutoAssignCrew godoc
// @Summary Automatically staff a flight
// @Description Fills remaining crew slots by position priority, best candidate first. Returns the assignments it managed to create even when the flight cannot be fully staffed.
// @Tags assignments
// @Produce json
// @Param id path int true "Flight ID"
// @Security BearerAuth
// @Success 201 {array} service.AssignmentResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /flights/{id}/auto-assign [post]
func (h *AssignmentHandler) AutoAssignCrew(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID, _ := auth.GetUserID(c)
	assignments, err := h.service.AutoAssign(c.Request.Context(), id, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assignments)
}

// UpdateAssignment godoc
// @Summary Update an assignment
// @Description Edits notes or moves the assignment to another flight or crew member; status changes go through the confirm and cancel endpoints
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID"
// @Param assignment body service.UpdateAssignmentRequest true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} service.AssignmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /assignments/{id} [put]
func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.service.Update(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// ConfirmAssignment godoc
// @Summary Confirm an assignment
// @Tags assignments
// @Produce json
// @Param id path int true "Assignment ID"
// @Security BearerAuth
// @Success 200 {object} service.AssignmentResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /assignments/{id}/confirm [post]
func (h *AssignmentHandler) ConfirmAssignment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	assignment, err := h.service.Confirm(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// CancelAssignmentRequest carries an optional cancellation reason
type CancelAssignmentRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelAssignment godoc
// @Summary Cancel an assignment
// @Description Cancelling frees the crew member's schedule slot. Cancelled assignments are terminal.
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID"
// @Param cancellation body CancelAssignmentRequest false "Cancellation reason"
// @Security BearerAuth
// @Success 200 {object} service.AssignmentResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /assignments/{id}/cancel [post]
func (h *AssignmentHandler) CancelAssignment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CancelAssignmentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	assignment, err := h.service.Cancel(id, req.Reason)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// DeleteAssignment godoc
// @Summary Delete an assignment
// @Description Removes an assignment for a flight that has not yet departed
// @Tags assignments
// @Param id path int true "Assignment ID"
// @Security BearerAuth
// @Success 204 "Assignment deleted"
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /assignments/{id} [delete]
func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
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

// GetAssignmentStatistics godoc
// @Summary Get assignment statistics
// @Description Returns totals per status and the count of assignments created in the last week
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.AssignmentSummaryResponse
// @Router /assignments/statistics [get]
func (h *AssignmentHandler) GetAssignmentStatistics(c *gin.Context) {
	summary, err := h.service.Summary()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

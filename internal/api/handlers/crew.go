package handlers

import (
	"net/http"

	"airline-crew-backend/internal/database/models"
	"airline-crew-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CrewHandler handles crew member HTTP requests
type CrewHandler struct {
	service service.CrewServiceInterface
}

// NewCrewHandler creates a new crew handler
func NewCrewHandler(svc service.CrewServiceInterface) *CrewHandler {
	return &CrewHandler{service: svc}
}

// CreateCrewMember godoc
// @Summary Create a new crew member
// @Description Creates a crew member with a unique employee code
// @Tags crew
// @Accept json
// @Produce json
// @Param crew_member body service.CreateCrewMemberRequest true "Crew member data"
// @Security BearerAuth
// @Success 201 {object} service.CrewMemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /crew [post]
func (h *CrewHandler) CreateCrewMember(c *gin.Context) {
	var req service.CreateCrewMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.service.Create(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetCrewMember godoc
// @Summary Get a crew member by ID
// @Tags crew
// @Produce json
// @Param id path int true "Crew member ID"
// @Security BearerAuth
// @Success 200 {object} service.CrewMemberResponse
// @Failure 404 {object} ErrorResponse
// @Router /crew/{id} [get]
func (h *CrewHandler) GetCrewMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	member, err := h.service.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// ListCrewMembers godoc
// @Summary List crew members
// @Description Lists crew members, optionally filtered by position
// @Tags crew
// @Produce json
// @Param position query string false "Crew position"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Security BearerAuth
// @Success 200 {object} service.CrewMemberListResponse
// @Failure 400 {object} ErrorResponse
// @Router /crew [get]
func (h *CrewHandler) ListCrewMembers(c *gin.Context) {
	var position *models.CrewPosition
	if raw := c.Query("position"); raw != "" {
		p := models.CrewPosition(raw)
		if !p.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid position filter"})
			return
		}
		position = &p
	}

	page, pageSize := parsePagination(c)
	members, err := h.service.List(position, page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// UpdateCrewMember godoc
// @Summary Update a crew member
// @Tags crew
// @Accept json
// @Produce json
// @Param id path int true "Crew member ID"
// @Param crew_member body service.UpdateCrewMemberRequest true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} service.CrewMemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /crew/{id} [put]
func (h *CrewHandler) UpdateCrewMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateCrewMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.service.Update(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// SetAvailabilityRequest toggles a crew member's availability flag
type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// SetCrewAvailability godoc
// @Summary Set a crew member's availability
// @Description Marks a crew member available or unavailable for new assignments
// @Tags crew
// @Accept json
// @Produce json
// @Param id path int true "Crew member ID"
// @Param availability body SetAvailabilityRequest true "Availability flag"
// @Security BearerAuth
// @Success 200 {object} service.CrewMemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /crew/{id}/availability [patch]
func (h *CrewHandler) SetCrewAvailability(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.service.SetAvailability(id, *req.IsAvailable)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteCrewMember godoc
// @Summary Delete a crew member
// @Tags crew
// @Param id path int true "Crew member ID"
// @Security BearerAuth
// @Success 204 "Crew member deleted"
// @Failure 404 {object} ErrorResponse
// @Router /crew/{id} [delete]
func (h *CrewHandler) DeleteCrewMember(c *gin.Context) {
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

// GetCrewWorkload godoc
// @Summary Get a crew member's workload for a date range
// @Description Sums active assignment flight hours inside the range
// @Tags crew
// @Produce json
// @Param id path int true "Crew member ID"
// @Param start query string true "Range start (RFC3339)"
// @Param end query string true "Range end (RFC3339)"
// @Security BearerAuth
// @Success 200 {object} service.CrewWorkloadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /crew/{id}/workload [get]
func (h *CrewHandler) GetCrewWorkload(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

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
	if !end.After(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end must be after start"})
		return
	}

	workload, err := h.service.Workload(id, start, end)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workload)
}

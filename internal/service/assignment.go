package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"airline-crew-backend/internal/database/models"
	apperrors "airline-crew-backend/internal/errors"
	"airline-crew-backend/internal/repository"
	"airline-crew-backend/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// AssignmentService owns the crew-flight assignment rules: eligibility
// checking, the assignment lifecycle, and the auto-assignment planner.
// It holds no state of its own; every call reads what it needs through the
// repositories, and the partial unique index in storage is the final
// authority on duplicates.
type AssignmentService struct {
	repo       repository.AssignmentRepositoryInterface
	flightRepo repository.FlightRepositoryInterface
	crewRepo   repository.CrewRepositoryInterface
	validator  *validator.Validate
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	repo repository.AssignmentRepositoryInterface,
	flightRepo repository.FlightRepositoryInterface,
	crewRepo repository.CrewRepositoryInterface,
	validator *validator.Validate,
) *AssignmentService {
	return &AssignmentService{
		repo:       repo,
		flightRepo: flightRepo,
		crewRepo:   crewRepo,
		validator:  validator,
	}
}

// CreateAssignmentRequest represents the request to assign a crew member to a flight
type CreateAssignmentRequest struct {
	FlightID     uint   `json:"flight_id" validate:"required"`
	CrewMemberID uint   `json:"crew_member_id" validate:"required"`
	Notes        string `json:"notes,omitempty"`
}

// UpdateAssignmentRequest represents the request to update an assignment.
// Moving the assignment to another flight or crew member re-runs the
// eligibility check. Status changes go through Confirm/Cancel, never
// through here.
type UpdateAssignmentRequest struct {
	FlightID     *uint   `json:"flight_id,omitempty"`
	CrewMemberID *uint   `json:"crew_member_id,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// AssignmentResponse represents the response for assignment operations
type AssignmentResponse struct {
	ID           uint                    `json:"id"`
	FlightID     uint                    `json:"flight_id"`
	FlightNumber string                  `json:"flight_number,omitempty"`
	Route        string                  `json:"route,omitempty"`
	CrewMemberID uint                    `json:"crew_member_id"`
	CrewMember   string                  `json:"crew_member,omitempty"`
	Position     models.CrewPosition     `json:"position,omitempty"`
	Status       models.AssignmentStatus `json:"status"`
	Notes        string                  `json:"notes,omitempty"`
	AssignedBy   uint                    `json:"assigned_by"`
	AssignedAt   string                  `json:"assigned_at"`
}

// AssignmentListResponse represents a paginated list of assignments
type AssignmentListResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// AssignmentSummaryResponse aggregates assignment statistics
type AssignmentSummaryResponse struct {
	Total    int64                             `json:"total"`
	ByStatus map[models.AssignmentStatus]int64 `json:"by_status"`
	Recent   int64                             `json:"recent_assignments"`
}

// Create assigns a crew member to a flight. Preconditions are checked in
// order: the flight must exist and be staffable, the crew member must exist
// and be eligible, and no active assignment may exist for the pair. The
// insert itself is still guarded by the storage unique index, so a
// concurrent create surfaces as ErrDuplicateAssignment rather than a fault.
func (s *AssignmentService) Create(req *CreateAssignmentRequest, assignedBy uint) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	flight, err := s.getFlight(req.FlightID)
	if err != nil {
		return nil, err
	}
	if !flight.Status.IsAssignable() {
		return nil, apperrors.ErrFlightNotAssignable
	}

	crew, err := s.getCrewMember(req.CrewMemberID)
	if err != nil {
		return nil, err
	}

	if err := s.checkEligibility(flight, crew, nil); err != nil {
		return nil, err
	}

	assignment, err := s.insert(flight, crew, assignedBy, req.Notes)
	if err != nil {
		return nil, err
	}

	return s.toResponse(assignment, flight, crew), nil
}

// GetByID retrieves an assignment by ID
func (s *AssignmentService) GetByID(id uint) (*AssignmentResponse, error) {
	assignment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, apperrors.NewStorageError("get assignment", err)
	}
	return s.toResponse(assignment, assignment.Flight, assignment.CrewMember), nil
}

// GetByFlight retrieves all assignments for a flight
func (s *AssignmentService) GetByFlight(flightID uint) ([]AssignmentResponse, error) {
	if _, err := s.getFlight(flightID); err != nil {
		return nil, err
	}

	assignments, err := s.repo.GetByFlightID(flightID)
	if err != nil {
		return nil, apperrors.NewStorageError("get flight assignments", err)
	}
	return s.toResponses(assignments), nil
}

// GetByCrewMember retrieves assignments for a crew member
func (s *AssignmentService) GetByCrewMember(crewMemberID uint, activeOnly bool) ([]AssignmentResponse, error) {
	if _, err := s.getCrewMember(crewMemberID); err != nil {
		return nil, err
	}

	assignments, err := s.repo.GetByCrewMemberID(crewMemberID, activeOnly)
	if err != nil {
		return nil, apperrors.NewStorageError("get crew assignments", err)
	}
	return s.toResponses(assignments), nil
}

// GetByDateRange retrieves assignments for flights departing in the range
func (s *AssignmentService) GetByDateRange(start, end time.Time, page, pageSize int) (*AssignmentListResponse, error) {
	if !end.After(start) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	page, pageSize = normalizePage(page, pageSize)
	assignments, total, err := s.repo.GetByDateRange(start, end, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.NewStorageError("get assignments by date range", err)
	}

	return &AssignmentListResponse{
		Assignments: s.toResponses(assignments),
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// GetAll retrieves assignments with pagination
func (s *AssignmentService) GetAll(page, pageSize int) (*AssignmentListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)
	assignments, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.NewStorageError("get assignments", err)
	}

	return &AssignmentListResponse{
		Assignments: s.toResponses(assignments),
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Update edits an assignment in place. Notes can always change; moving the
// assignment to another flight or crew member re-runs the eligibility check
// with the assignment's own row excluded, so the current booking does not
// count as a conflict against itself.
func (s *AssignmentService) Update(id uint, req *UpdateAssignmentRequest) (*AssignmentResponse, error) {
	assignment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, apperrors.NewStorageError("get assignment", err)
	}

	flight := assignment.Flight
	crew := assignment.CrewMember

	moved := false
	if req.FlightID != nil && *req.FlightID != assignment.FlightID {
		flight, err = s.getFlight(*req.FlightID)
		if err != nil {
			return nil, err
		}
		if !flight.Status.IsAssignable() {
			return nil, apperrors.ErrFlightNotAssignable
		}
		assignment.FlightID = flight.ID
		assignment.Flight = flight
		moved = true
	}
	if req.CrewMemberID != nil && *req.CrewMemberID != assignment.CrewMemberID {
		crew, err = s.getCrewMember(*req.CrewMemberID)
		if err != nil {
			return nil, err
		}
		assignment.CrewMemberID = crew.ID
		assignment.CrewMember = crew
		moved = true
	}

	if moved {
		if flight == nil {
			if flight, err = s.getFlight(assignment.FlightID); err != nil {
				return nil, err
			}
		}
		if crew == nil {
			if crew, err = s.getCrewMember(assignment.CrewMemberID); err != nil {
				return nil, err
			}
		}
		if err := s.checkEligibility(flight, crew, &assignment.ID); err != nil {
			return nil, err
		}

		existing, err := s.repo.GetActiveByFlightAndCrew(assignment.FlightID, assignment.CrewMemberID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewStorageError("check existing assignment", err)
		}
		if existing != nil && existing.ID != assignment.ID {
			return nil, apperrors.ErrDuplicateAssignment
		}
	}

	if req.Notes != nil {
		assignment.Notes = *req.Notes
	}

	if err := s.repo.Update(assignment); err != nil {
		return nil, apperrors.NewStorageError("update assignment", err)
	}
	return s.toResponse(assignment, flight, crew), nil
}

// Confirm transitions an assignment from ASSIGNED to CONFIRMED
func (s *AssignmentService) Confirm(id uint) (*AssignmentResponse, error) {
	return s.transition(id, models.AssignmentStatusConfirmed, "")
}

// Cancel transitions an assignment to CANCELLED. Cancelling twice fails
// with an invalid-transition error; CANCELLED is terminal for the row.
func (s *AssignmentService) Cancel(id uint, reason string) (*AssignmentResponse, error) {
	return s.transition(id, models.AssignmentStatusCancelled, reason)
}

func (s *AssignmentService) transition(id uint, target models.AssignmentStatus, reason string) (*AssignmentResponse, error) {
	assignment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, apperrors.NewStorageError("get assignment", err)
	}

	if !assignment.Status.CanTransitionTo(target) {
		return nil, apperrors.NewInvalidTransitionError(string(assignment.Status), string(target))
	}

	assignment.Status = target
	if reason != "" {
		assignment.Notes = reason
	}

	if err := s.repo.Update(assignment); err != nil {
		return nil, apperrors.NewStorageError("update assignment status", err)
	}

	if target == models.AssignmentStatusCancelled {
		metrics.AssignmentsCancelled.Inc()
	}
	return s.toResponse(assignment, assignment.Flight, assignment.CrewMember), nil
}

// Delete removes an assignment row. Only assignments on flights that have
// not yet departed may be deleted.
func (s *AssignmentService) Delete(id uint) error {
	assignment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssignmentNotFound
		}
		return apperrors.NewStorageError("get assignment", err)
	}

	if assignment.Flight != nil && !assignment.Flight.DepartureTime.After(time.Now()) {
		return apperrors.ErrFlightAlreadyDeparted
	}

	if err := s.repo.Delete(id); err != nil {
		return apperrors.NewStorageError("delete assignment", err)
	}
	return nil
}

// AvailableCrew returns every crew member who could still be assigned to
// the flight: available, and free of overlapping active assignments. Crew
// already attached to this flight are excluded by the overlap check itself,
// since their existing assignment occupies the flight's own window.
func (s *AssignmentService) AvailableCrew(flightID uint) ([]CrewMemberResponse, error) {
	flight, err := s.getFlight(flightID)
	if err != nil {
		return nil, err
	}

	var available []models.CrewMember
	for _, position := range models.PositionPriority {
		pool, err := s.crewRepo.GetByPosition(position)
		if err != nil {
			return nil, apperrors.NewStorageError("get crew by position", err)
		}
		eligible, err := s.eligibleCrew(flight, pool, nil)
		if err != nil {
			return nil, err
		}
		available = append(available, eligible...)
	}

	return toCrewResponses(available), nil
}

// Summary aggregates assignment counts by status plus the last week's volume
func (s *AssignmentService) Summary() (*AssignmentSummaryResponse, error) {
	byStatus, err := s.repo.CountByStatus()
	if err != nil {
		return nil, apperrors.NewStorageError("count assignments by status", err)
	}

	recent, err := s.repo.CountAssignedSince(time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, apperrors.NewStorageError("count recent assignments", err)
	}

	var total int64
	for _, count := range byStatus {
		total += count
	}

	return &AssignmentSummaryResponse{
		Total:    total,
		ByStatus: byStatus,
		Recent:   recent,
	}, nil
}

// AutoAssign staffs a flight position by position until the derived crew
// complement is met or candidates run out. It returns the assignments it
// managed to create; deciding whether partial staffing is acceptable is the
// caller's concern. Re-running on a partially staffed flight only fills
// what is still missing, so the operation is idempotent at fixpoint.
func (s *AssignmentService) AutoAssign(ctx context.Context, flightID uint, assignedBy uint) ([]AssignmentResponse, error) {
	flight, err := s.getFlight(flightID)
	if err != nil {
		return nil, err
	}
	if !flight.Status.IsAssignable() {
		return nil, apperrors.ErrFlightNotAssignable
	}

	metrics.AutoAssignRuns.Inc()
	return s.plan(ctx, flight, models.DefaultComplement(flight.CrewRequired), assignedBy)
}

// plan fills each required position in fixed priority order. A candidate
// that turns out ineligible or already booked (a concurrent create won the
// race) is skipped, never aborting the plan; a storage failure aborts
// immediately. Assignments already committed stay committed when the
// context is cancelled mid-plan.
func (s *AssignmentService) plan(ctx context.Context, flight *models.Flight, required []models.PositionRequirement, assignedBy uint) ([]AssignmentResponse, error) {
	counts, err := s.repo.CountActiveByPositionForFlight(flight.ID)
	if err != nil {
		return nil, apperrors.NewStorageError("count assignments by position", err)
	}

	byPosition := make(map[models.CrewPosition]int, len(required))
	for _, req := range required {
		byPosition[req.Position] += req.Count
	}

	created := []AssignmentResponse{}
	for _, position := range models.PositionPriority {
		remaining := byPosition[position] - counts[position]
		if remaining <= 0 {
			continue
		}

		pool, err := s.crewRepo.GetByPosition(position)
		if err != nil {
			return created, apperrors.NewStorageError("get crew by position", err)
		}

		eligible, err := s.eligibleCrew(flight, pool, nil)
		if err != nil {
			return created, err
		}
		rankCandidates(eligible)

		for i := range eligible {
			if remaining <= 0 {
				break
			}
			if ctx.Err() != nil {
				return created, nil
			}

			candidate := eligible[i]
			note := fmt.Sprintf("Auto-assigned (%s)", position)
			assignment, err := s.insert(flight, &candidate, assignedBy, note)
			if err != nil {
				// A losing race or a stale eligibility read is expected
				// here; move on to the next ranked candidate.
				if apperrors.IsConflict(err) || apperrors.IsEligibility(err) {
					metrics.AssignmentConflicts.Inc()
					continue
				}
				return created, err
			}

			created = append(created, *s.toResponse(assignment, flight, &candidate))
			remaining--
		}
	}

	return created, nil
}

// eligibleCrew filters the candidate pool for one flight: the availability
// flag must be set and no active assignment may overlap the flight window.
// excludeAssignmentID skips the assignment being replaced when eligibility
// is re-checked during an update in place.
func (s *AssignmentService) eligibleCrew(flight *models.Flight, pool []models.CrewMember, excludeAssignmentID *uint) ([]models.CrewMember, error) {
	eligible := make([]models.CrewMember, 0, len(pool))
	for i := range pool {
		err := s.checkEligibility(flight, &pool[i], excludeAssignmentID)
		if err == nil {
			eligible = append(eligible, pool[i])
			continue
		}
		if apperrors.IsEligibility(err) {
			continue
		}
		return nil, err
	}
	return eligible, nil
}

// checkEligibility rejects an unavailable crew member or one whose active
// assignments overlap the flight window. Read-only; a repository failure
// is surfaced, never swallowed.
func (s *AssignmentService) checkEligibility(flight *models.Flight, crew *models.CrewMember, excludeAssignmentID *uint) error {
	if !crew.IsAvailable {
		return apperrors.NewEligibilityError("marked unavailable")
	}

	active, err := s.repo.GetActiveForCrew(crew.ID)
	if err != nil {
		return apperrors.NewStorageError("get active assignments", err)
	}

	for _, assignment := range active {
		if excludeAssignmentID != nil && assignment.ID == *excludeAssignmentID {
			continue
		}
		if assignment.Flight == nil {
			// Without the flight window the overlap check cannot run; skipping
			// the row would quietly allow a double booking.
			return apperrors.NewStorageError("check schedule overlap",
				fmt.Errorf("assignment %d has no flight loaded", assignment.ID))
		}
		if assignment.Flight.OverlapsWindow(flight.DepartureTime, flight.ArrivalTime) {
			return apperrors.NewEligibilityError(
				fmt.Sprintf("schedule overlap with flight %s", assignment.Flight.FlightNumber))
		}
	}
	return nil
}

// insert runs the duplicate pre-check and the guarded create. The pre-check
// only avoids a pointless round trip; the unique index decides races.
func (s *AssignmentService) insert(flight *models.Flight, crew *models.CrewMember, assignedBy uint, notes string) (*models.FlightAssignment, error) {
	existing, err := s.repo.GetActiveByFlightAndCrew(flight.ID, crew.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewStorageError("check existing assignment", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateAssignment
	}

	assignment := &models.FlightAssignment{
		FlightID:     flight.ID,
		CrewMemberID: crew.ID,
		AssignedBy:   assignedBy,
		Status:       models.AssignmentStatusAssigned,
		Notes:        notes,
		AssignedAt:   time.Now(),
	}

	if err := s.repo.Create(assignment); err != nil {
		if apperrors.IsConflict(err) {
			return nil, err
		}
		return nil, apperrors.NewStorageError("create assignment", err)
	}

	metrics.AssignmentsCreated.Inc()
	return assignment, nil
}

func (s *AssignmentService) getFlight(id uint) (*models.Flight, error) {
	flight, err := s.flightRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFlightNotFound
		}
		return nil, apperrors.NewStorageError("get flight", err)
	}
	return flight, nil
}

func (s *AssignmentService) getCrewMember(id uint) (*models.CrewMember, error) {
	crew, err := s.crewRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCrewMemberNotFound
		}
		return nil, apperrors.NewStorageError("get crew member", err)
	}
	return crew, nil
}

// rankCandidates orders candidates deterministically: certification tier
// descending, then experience descending, then id ascending so identical
// inputs always produce the same plan.
func rankCandidates(candidates []models.CrewMember) {
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if ar, br := a.CertificationLevel.Rank(), b.CertificationLevel.Rank(); ar != br {
			return ar > br
		}
		if a.ExperienceYears != b.ExperienceYears {
			return a.ExperienceYears > b.ExperienceYears
		}
		return a.ID < b.ID
	})
}

func (s *AssignmentService) toResponse(assignment *models.FlightAssignment, flight *models.Flight, crew *models.CrewMember) *AssignmentResponse {
	response := &AssignmentResponse{
		ID:           assignment.ID,
		FlightID:     assignment.FlightID,
		CrewMemberID: assignment.CrewMemberID,
		Status:       assignment.Status,
		Notes:        assignment.Notes,
		AssignedBy:   assignment.AssignedBy,
		AssignedAt:   assignment.AssignedAt.Format(time.RFC3339),
	}
	if flight != nil {
		response.FlightNumber = flight.FlightNumber
		response.Route = flight.Route()
	}
	if crew != nil {
		response.CrewMember = crew.FullName()
		response.Position = crew.Position
	}
	return response
}

func (s *AssignmentService) toResponses(assignments []models.FlightAssignment) []AssignmentResponse {
	responses := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = *s.toResponse(&assignments[i], assignments[i].Flight, assignments[i].CrewMember)
	}
	return responses
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

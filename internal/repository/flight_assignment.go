package repository

import (
	"errors"
	"time"

	"airline-crew-backend/internal/database/models"
	apperrors "airline-crew-backend/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for flight assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create inserts an assignment row. The insert races against the partial
// unique index on (flight_id, crew_member_id) for non-cancelled rows; a
// violation is reported as ErrDuplicateAssignment so callers can treat it
// as a normal conflict, not a fault.
func (r *AssignmentRepository) Create(assignment *models.FlightAssignment) error {
	err := r.db.Create(assignment).Error
	if err != nil && isUniqueViolation(err) {
		return apperrors.ErrDuplicateAssignment
	}
	return err
}

// GetByID retrieves an assignment with its flight and crew member
func (r *AssignmentRepository) GetByID(id uint) (*models.FlightAssignment, error) {
	var assignment models.FlightAssignment
	err := r.db.Preload("Flight").Preload("CrewMember").First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByFlightID retrieves all assignments for a flight
func (r *AssignmentRepository) GetByFlightID(flightID uint) ([]models.FlightAssignment, error) {
	var assignments []models.FlightAssignment
	err := r.db.Preload("CrewMember").Where("flight_id = ?", flightID).
		Order("assigned_at DESC").Find(&assignments).Error
	return assignments, err
}

// GetByCrewMemberID retrieves assignments for a crew member, optionally
// restricted to active (non-cancelled) ones
func (r *AssignmentRepository) GetByCrewMemberID(crewMemberID uint, activeOnly bool) ([]models.FlightAssignment, error) {
	var assignments []models.FlightAssignment
	query := r.db.Preload("Flight").Where("crew_member_id = ?", crewMemberID)
	if activeOnly {
		query = query.Where("status <> ?", models.AssignmentStatusCancelled)
	}
	err := query.Order("assigned_at DESC").Find(&assignments).Error
	return assignments, err
}

// GetActiveForCrew retrieves a crew member's ASSIGNED and CONFIRMED
// assignments with flight windows preloaded for overlap checking.
func (r *AssignmentRepository) GetActiveForCrew(crewMemberID uint) ([]models.FlightAssignment, error) {
	var assignments []models.FlightAssignment
	err := r.db.Preload("Flight").
		Where("crew_member_id = ? AND status <> ?", crewMemberID, models.AssignmentStatusCancelled).
		Find(&assignments).Error
	return assignments, err
}

// GetActiveByFlightAndCrew retrieves the single non-cancelled assignment
// for a (flight, crew member) pair, if one exists
func (r *AssignmentRepository) GetActiveByFlightAndCrew(flightID, crewMemberID uint) (*models.FlightAssignment, error) {
	var assignment models.FlightAssignment
	err := r.db.Where("flight_id = ? AND crew_member_id = ? AND status <> ?",
		flightID, crewMemberID, models.AssignmentStatusCancelled).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// CountActiveByPositionForFlight counts non-cancelled assignments per crew
// position for one flight
func (r *AssignmentRepository) CountActiveByPositionForFlight(flightID uint) (map[models.CrewPosition]int, error) {
	type row struct {
		Position models.CrewPosition
		Count    int
	}
	var rows []row

	err := r.db.Model(&models.FlightAssignment{}).
		Select("crew_members.position AS position, COUNT(*) AS count").
		Joins("JOIN crew_members ON crew_members.id = flight_assignments.crew_member_id").
		Where("flight_assignments.flight_id = ? AND flight_assignments.status <> ?",
			flightID, models.AssignmentStatusCancelled).
		Group("crew_members.position").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.CrewPosition]int, len(rows))
	for _, r := range rows {
		counts[r.Position] = r.Count
	}
	return counts, nil
}

// CountActiveForFlight counts all non-cancelled assignments for a flight
func (r *AssignmentRepository) CountActiveForFlight(flightID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.FlightAssignment{}).
		Where("flight_id = ? AND status <> ?", flightID, models.AssignmentStatusCancelled).
		Count(&count).Error
	return count, err
}

// GetByDateRange retrieves assignments whose flight departs inside the range
func (r *AssignmentRepository) GetByDateRange(start, end time.Time, limit, offset int) ([]models.FlightAssignment, int64, error) {
	var assignments []models.FlightAssignment
	var total int64

	query := r.db.Model(&models.FlightAssignment{}).
		Joins("JOIN flights ON flights.id = flight_assignments.flight_id").
		Where("flights.departure_time >= ? AND flights.departure_time <= ?", start, end)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Flight").Preload("CrewMember").
		Order("flight_assignments.assigned_at DESC").
		Limit(limit).Offset(offset).Find(&assignments).Error
	return assignments, total, err
}

// GetAll retrieves assignments with pagination
func (r *AssignmentRepository) GetAll(limit, offset int) ([]models.FlightAssignment, int64, error) {
	var assignments []models.FlightAssignment
	var total int64

	if err := r.db.Model(&models.FlightAssignment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Flight").Preload("CrewMember").
		Order("assigned_at DESC").Limit(limit).Offset(offset).Find(&assignments).Error
	return assignments, total, err
}

// Update updates an assignment
func (r *AssignmentRepository) Update(assignment *models.FlightAssignment) error {
	return r.db.Save(assignment).Error
}

// Delete deletes an assignment row
func (r *AssignmentRepository) Delete(id uint) error {
	return r.db.Delete(&models.FlightAssignment{}, "id = ?", id).Error
}

// CountByStatus counts assignments grouped by status
func (r *AssignmentRepository) CountByStatus() (map[models.AssignmentStatus]int64, error) {
	type row struct {
		Status models.AssignmentStatus
		Count  int64
	}
	var rows []row

	err := r.db.Model(&models.FlightAssignment{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.AssignmentStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

// CountAssignedSince counts assignments created at or after the given time
func (r *AssignmentRepository) CountAssignedSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.FlightAssignment{}).
		Where("assigned_at >= ?", since).
		Count(&count).Error
	return count, err
}

// isUniqueViolation reports whether the error is a Postgres unique
// constraint violation (SQLSTATE 23505), directly or via GORM translation.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

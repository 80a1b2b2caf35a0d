package repository

import (
	"airline-crew-backend/internal/database/models"

	"gorm.io/gorm"
)

// CrewRepository handles database operations for crew members
type CrewRepository struct {
	db *gorm.DB
}

// NewCrewRepository creates a new crew member repository
func NewCrewRepository(db *gorm.DB) *CrewRepository {
	return &CrewRepository{db: db}
}

// Create creates a new crew member
func (r *CrewRepository) Create(member *models.CrewMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a crew member by ID
func (r *CrewRepository) GetByID(id uint) (*models.CrewMember, error) {
	var member models.CrewMember
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByEmployeeCode retrieves a crew member by employee code
func (r *CrewRepository) GetByEmployeeCode(code string) (*models.CrewMember, error) {
	var member models.CrewMember
	err := r.db.First(&member, "employee_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByPosition retrieves every crew member holding the given position.
// The list is the candidate pool for one auto-assignment fill step, so it
// is ordered the way the planner ranks: certification first, then
// experience, then id for a stable tie-break.
func (r *CrewRepository) GetByPosition(position models.CrewPosition) ([]models.CrewMember, error) {
	var members []models.CrewMember
	err := r.db.Where("position = ?", position).
		Order(`CASE certification_level
			WHEN 'CAPTAIN' THEN 3 WHEN 'SENIOR' THEN 2 ELSE 1 END DESC,
			experience_years DESC, id ASC`).
		Find(&members).Error
	return members, err
}

// GetAll retrieves crew members with optional position filter and pagination
func (r *CrewRepository) GetAll(position *models.CrewPosition, limit, offset int) ([]models.CrewMember, int64, error) {
	var members []models.CrewMember
	var total int64

	query := r.db.Model(&models.CrewMember{})
	if position != nil {
		query = query.Where("position = ?", *position)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("last_name ASC, first_name ASC").Limit(limit).Offset(offset).Find(&members).Error
	return members, total, err
}

// Update updates a crew member
func (r *CrewRepository) Update(member *models.CrewMember) error {
	return r.db.Save(member).Error
}

// SetAvailability flips the planned-availability flag. This is independent
// of schedule conflicts, which are derived from active assignments.
func (r *CrewRepository) SetAvailability(id uint, available bool) error {
	result := r.db.Model(&models.CrewMember{}).Where("id = ?", id).Update("is_available", available)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a crew member
func (r *CrewRepository) Delete(id uint) error {
	return r.db.Delete(&models.CrewMember{}, "id = ?", id).Error
}

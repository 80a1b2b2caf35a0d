package service

import (
	"errors"
	"fmt"
	"time"

	"airline-crew-backend/internal/database/models"
	apperrors "airline-crew-backend/internal/errors"
	"airline-crew-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// CrewService handles business logic for crew members
type CrewService struct {
	repo           repository.CrewRepositoryInterface
	assignmentRepo repository.AssignmentRepositoryInterface
	validator      *validator.Validate
}

// NewCrewService creates a new crew service
func NewCrewService(repo repository.CrewRepositoryInterface, assignmentRepo repository.AssignmentRepositoryInterface, validator *validator.Validate) *CrewService {
	return &CrewService{
		repo:           repo,
		assignmentRepo: assignmentRepo,
		validator:      validator,
	}
}

// CreateCrewMemberRequest represents the request to create a crew member
type CreateCrewMemberRequest struct {
	EmployeeCode       string                    `json:"employee_code" validate:"required,max=20"`
	FirstName          string                    `json:"first_name" validate:"required,max=100"`
	LastName           string                    `json:"last_name" validate:"required,max=100"`
	Position           models.CrewPosition       `json:"position" validate:"required"`
	CertificationLevel models.CertificationLevel `json:"certification_level,omitempty"`
	ExperienceYears    int                       `json:"experience_years" validate:"min=0"`
	Phone              string                    `json:"phone,omitempty"`
	Email              string                    `json:"email,omitempty" validate:"omitempty,email"`
}

// UpdateCrewMemberRequest represents the request to update a crew member
type UpdateCrewMemberRequest struct {
	FirstName          *string                    `json:"first_name,omitempty"`
	LastName           *string                    `json:"last_name,omitempty"`
	Position           *models.CrewPosition       `json:"position,omitempty"`
	CertificationLevel *models.CertificationLevel `json:"certification_level,omitempty"`
	ExperienceYears    *int                       `json:"experience_years,omitempty"`
	Phone              *string                    `json:"phone,omitempty"`
	Email              *string                    `json:"email,omitempty"`
}

// CrewMemberResponse represents the response for crew member operations
type CrewMemberResponse struct {
	ID                 uint                      `json:"id"`
	EmployeeCode       string                    `json:"employee_code"`
	FirstName          string                    `json:"first_name"`
	LastName           string                    `json:"last_name"`
	FullName           string                    `json:"full_name"`
	Position           models.CrewPosition       `json:"position"`
	CertificationLevel models.CertificationLevel `json:"certification_level"`
	ExperienceYears    int                       `json:"experience_years"`
	IsAvailable        bool                      `json:"is_available"`
	Phone              string                    `json:"phone,omitempty"`
	Email              string                    `json:"email,omitempty"`
}

// CrewMemberListResponse represents a paginated list of crew members
type CrewMemberListResponse struct {
	CrewMembers []CrewMemberResponse `json:"crew_members"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// CrewWorkloadResponse aggregates a crew member's load over a date range
type CrewWorkloadResponse struct {
	CrewMemberID uint    `json:"crew_member_id"`
	FlightCount  int     `json:"flight_count"`
	TotalHours   float64 `json:"total_hours"`
}

// Create creates a new crew member
func (s *CrewService) Create(req *CreateCrewMemberRequest) (*CrewMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.Position.IsValid() {
		return nil, apperrors.NewValidationError("position", "unknown crew position")
	}
	if req.CertificationLevel == "" {
		req.CertificationLevel = models.CertificationJunior
	}
	if !req.CertificationLevel.IsValid() {
		return nil, apperrors.NewValidationError("certification_level", "unknown certification level")
	}

	if _, err := s.repo.GetByEmployeeCode(req.EmployeeCode); err == nil {
		return nil, apperrors.ErrEmployeeCodeExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewStorageError("check employee code", err)
	}

	member := &models.CrewMember{
		EmployeeCode:       req.EmployeeCode,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Position:           req.Position,
		CertificationLevel: req.CertificationLevel,
		ExperienceYears:    req.ExperienceYears,
		IsAvailable:        true,
		Phone:              req.Phone,
		Email:              req.Email,
	}

	if err := s.repo.Create(member); err != nil {
		return nil, apperrors.NewStorageError("create crew member", err)
	}

	return toCrewResponse(member), nil
}

// GetByID retrieves a crew member by ID
func (s *CrewService) GetByID(id uint) (*CrewMemberResponse, error) {
	member, err := s.getCrewMember(id)
	if err != nil {
		return nil, err
	}
	return toCrewResponse(member), nil
}

// List retrieves crew members with an optional position filter
func (s *CrewService) List(position *models.CrewPosition, page, pageSize int) (*CrewMemberListResponse, error) {
	if position != nil && !position.IsValid() {
		return nil, apperrors.NewValidationError("position", "unknown crew position")
	}

	page, pageSize = normalizePage(page, pageSize)
	members, total, err := s.repo.GetAll(position, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.NewStorageError("list crew members", err)
	}

	return &CrewMemberListResponse{
		CrewMembers: toCrewResponses(members),
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Update updates a crew member
func (s *CrewService) Update(id uint, req *UpdateCrewMemberRequest) (*CrewMemberResponse, error) {
	member, err := s.getCrewMember(id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		member.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		member.LastName = *req.LastName
	}
	if req.Position != nil {
		if !req.Position.IsValid() {
			return nil, apperrors.NewValidationError("position", "unknown crew position")
		}
		member.Position = *req.Position
	}
	if req.CertificationLevel != nil {
		if !req.CertificationLevel.IsValid() {
			return nil, apperrors.NewValidationError("certification_level", "unknown certification level")
		}
		member.CertificationLevel = *req.CertificationLevel
	}
	if req.ExperienceYears != nil {
		if *req.ExperienceYears < 0 {
			return nil, apperrors.NewValidationError("experience_years", "must not be negative")
		}
		member.ExperienceYears = *req.ExperienceYears
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Email != nil {
		member.Email = *req.Email
	}

	if err := s.repo.Update(member); err != nil {
		return nil, apperrors.NewStorageError("update crew member", err)
	}
	return toCrewResponse(member), nil
}

// SetAvailability flips the planned-availability flag
func (s *CrewService) SetAvailability(id uint, available bool) (*CrewMemberResponse, error) {
	if err := s.repo.SetAvailability(id, available); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCrewMemberNotFound
		}
		return nil, apperrors.NewStorageError("set availability", err)
	}
	return s.GetByID(id)
}

// Delete deletes a crew member
func (s *CrewService) Delete(id uint) error {
	if _, err := s.getCrewMember(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return apperrors.NewStorageError("delete crew member", err)
	}
	return nil
}

// Workload sums the crew member's active assignments over a date range
func (s *CrewService) Workload(id uint, start, end time.Time) (*CrewWorkloadResponse, error) {
	if !end.After(start) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	if _, err := s.getCrewMember(id); err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.GetActiveForCrew(id)
	if err != nil {
		return nil, apperrors.NewStorageError("get active assignments", err)
	}

	workload := &CrewWorkloadResponse{CrewMemberID: id}
	for _, assignment := range assignments {
		if assignment.Flight == nil {
			continue
		}
		if assignment.Flight.OverlapsWindow(start, end) {
			workload.FlightCount++
			workload.TotalHours += assignment.Flight.DurationHours()
		}
	}
	return workload, nil
}

func (s *CrewService) getCrewMember(id uint) (*models.CrewMember, error) {
	member, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCrewMemberNotFound
		}
		return nil, apperrors.NewStorageError("get crew member", err)
	}
	return member, nil
}

func toCrewResponse(member *models.CrewMember) *CrewMemberResponse {
	return &CrewMemberResponse{
		ID:                 member.ID,
		EmployeeCode:       member.EmployeeCode,
		FirstName:          member.FirstName,
		LastName:           member.LastName,
		FullName:           member.FullName(),
		Position:           member.Position,
		CertificationLevel: member.CertificationLevel,
		ExperienceYears:    member.ExperienceYears,
		IsAvailable:        member.IsAvailable,
		Phone:              member.Phone,
		Email:              member.Email,
	}
}

func toCrewResponses(members []models.CrewMember) []CrewMemberResponse {
	responses := make([]CrewMemberResponse, len(members))
	for i := range members {
		responses[i] = *toCrewResponse(&members[i])
	}
	return responses
}

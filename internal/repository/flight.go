package repository

import (
	"time"

	"airline-crew-backend/internal/database/models"

	"gorm.io/gorm"
)

// FlightFilter narrows flight listings
type FlightFilter struct {
	Status        *models.FlightStatus
	DepartureFrom *time.Time
	DepartureTo   *time.Time
	City          string
}

// FlightRepository handles database operations for flights
type FlightRepository struct {
	db *gorm.DB
}

// NewFlightRepository creates a new flight repository
func NewFlightRepository(db *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// Create creates a new flight
func (r *FlightRepository) Create(flight *models.Flight) error {
	return r.db.Create(flight).Error
}

// GetByID retrieves a flight by ID
func (r *FlightRepository) GetByID(id uint) (*models.Flight, error) {
	var flight models.Flight
	err := r.db.First(&flight, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &flight, nil
}

// GetByNumber retrieves a flight by its unique flight number
func (r *FlightRepository) GetByNumber(flightNumber string) (*models.Flight, error) {
	var flight models.Flight
	err := r.db.First(&flight, "flight_number = ?", flightNumber).Error
	if err != nil {
		return nil, err
	}
	return &flight, nil
}

// GetAll retrieves flights matching the filter with pagination
func (r *FlightRepository) GetAll(filter FlightFilter, limit, offset int) ([]models.Flight, int64, error) {
	var flights []models.Flight
	var total int64

	query := r.db.Model(&models.Flight{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.DepartureFrom != nil {
		query = query.Where("departure_time >= ?", *filter.DepartureFrom)
	}
	if filter.DepartureTo != nil {
		query = query.Where("departure_time <= ?", *filter.DepartureTo)
	}
	if filter.City != "" {
		query = query.Where("departure_city = ? OR arrival_city = ?", filter.City, filter.City)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("departure_time ASC").Limit(limit).Offset(offset).Find(&flights).Error
	return flights, total, err
}

// GetNeedingCrew retrieves upcoming assignable flights whose active
// assignment count is below the required crew size.
func (r *FlightRepository) GetNeedingCrew(limit, offset int) ([]models.Flight, int64, error) {
	var flights []models.Flight
	var total int64

	query := r.db.Model(&models.Flight{}).
		Where("status IN ?", []models.FlightStatus{models.FlightStatusScheduled, models.FlightStatusDelayed}).
		Where("departure_time > ?", time.Now()).
		Where(`(SELECT COUNT(*) FROM flight_assignments fa
			WHERE fa.flight_id = flights.id AND fa.status <> 'CANCELLED') < crew_required`)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("departure_time ASC").Limit(limit).Offset(offset).Find(&flights).Error
	return flights, total, err
}

// GetDailySchedule retrieves all flights departing on the given day
func (r *FlightRepository) GetDailySchedule(day time.Time) ([]models.Flight, error) {
	var flights []models.Flight
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	err := r.db.Where("departure_time >= ? AND departure_time < ?", start, end).
		Order("departure_time ASC").Find(&flights).Error
	return flights, err
}

// Update updates a flight
func (r *FlightRepository) Update(flight *models.Flight) error {
	return r.db.Save(flight).Error
}

// Delete deletes a flight
func (r *FlightRepository) Delete(id uint) error {
	return r.db.Delete(&models.Flight{}, "id = ?", id).Error
}

package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"airline-crew-backend/internal/config"
	"airline-crew-backend/internal/database"
	"airline-crew-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type FlightData struct {
	FlightNumber  string `yaml:"flight_number"`
	DepartureCity string `yaml:"departure_city"`
	ArrivalCity   string `yaml:"arrival_city"`
	DepartureTime string `yaml:"departure_time"`
	ArrivalTime   string `yaml:"arrival_time"`
	AircraftType  string `yaml:"aircraft_type"`
	CrewRequired  int    `yaml:"crew_required"`
	Status        string `yaml:"status,omitempty"`
}

type CrewMemberData struct {
	EmployeeCode       string `yaml:"employee_code"`
	FirstName          string `yaml:"first_name"`
	LastName           string `yaml:"last_name"`
	Position           string `yaml:"position"`
	CertificationLevel string `yaml:"certification_level,omitempty"`
	ExperienceYears    int    `yaml:"experience_years"`
	IsAvailable        *bool  `yaml:"is_available,omitempty"`
	Phone              string `yaml:"phone,omitempty"`
	Email              string `yaml:"email,omitempty"`
}

// File structures
type FlightsFile struct {
	Flights []FlightData `yaml:"flights"`
}

type CrewMembersFile struct {
	CrewMembers []CrewMemberData `yaml:"crew_members"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	flights, err := loadFlights(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load flights: %w", err)
	}

	crewMembers, err := loadCrewMembers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load crew members: %w", err)
	}

	flightsCreated := 0
	for _, flightData := range flights {
		created, err := createFlight(db, flightData)
		if err != nil {
			return fmt.Errorf("failed to create flight %s: %w", flightData.FlightNumber, err)
		}
		if created {
			flightsCreated++
		}
	}
	log.Printf("✈️  Flights: %d created, %d total", flightsCreated, len(flights))

	crewCreated := 0
	for _, memberData := range crewMembers {
		created, err := createCrewMember(db, memberData)
		if err != nil {
			return fmt.Errorf("failed to create crew member %s: %w", memberData.EmployeeCode, err)
		}
		if created {
			crewCreated++
		}
	}
	log.Printf("🧑‍✈️ Crew members: %d created, %d total", crewCreated, len(crewMembers))

	return nil
}

func loadFlights(dataDir string) ([]FlightData, error) {
	var flights []FlightData
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var file FlightsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		flights = append(flights, file.Flights...)
		return nil
	})
	return flights, err
}

func loadCrewMembers(dataDir string) ([]CrewMemberData, error) {
	var members []CrewMemberData
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var file CrewMembersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		members = append(members, file.CrewMembers...)
		return nil
	})
	return members, err
}

// createFlight inserts a flight unless one with the same number already exists
func createFlight(db *gorm.DB, data FlightData) (bool, error) {
	var existing models.Flight
	err := db.First(&existing, "flight_number = ?", data.FlightNumber).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	departure, err := time.Parse(time.RFC3339, data.DepartureTime)
	if err != nil {
		return false, fmt.Errorf("invalid departure_time %q: %w", data.DepartureTime, err)
	}
	arrival, err := time.Parse(time.RFC3339, data.ArrivalTime)
	if err != nil {
		return false, fmt.Errorf("invalid arrival_time %q: %w", data.ArrivalTime, err)
	}

	status := models.FlightStatusScheduled
	if data.Status != "" {
		status = models.FlightStatus(data.Status)
		if !status.IsValid() {
			return false, fmt.Errorf("invalid status %q", data.Status)
		}
	}

	flight := models.Flight{
		FlightNumber:  data.FlightNumber,
		DepartureCity: data.DepartureCity,
		ArrivalCity:   data.ArrivalCity,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		AircraftType:  data.AircraftType,
		CrewRequired:  data.CrewRequired,
		Status:        status,
	}
	if err := db.Create(&flight).Error; err != nil {
		return false, err
	}
	return true, nil
}

// createCrewMember inserts a crew member unless the employee code is taken
func createCrewMember(db *gorm.DB, data CrewMemberData) (bool, error) {
	var existing models.CrewMember
	err := db.First(&existing, "employee_code = ?", data.EmployeeCode).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	position := models.CrewPosition(data.Position)
	if !position.IsValid() {
		return false, fmt.Errorf("invalid position %q", data.Position)
	}

	level := models.CertificationJunior
	if data.CertificationLevel != "" {
		level = models.CertificationLevel(data.CertificationLevel)
		if !level.IsValid() {
			return false, fmt.Errorf("invalid certification_level %q", data.CertificationLevel)
		}
	}

	available := true
	if data.IsAvailable != nil {
		available = *data.IsAvailable
	}

	member := models.CrewMember{
		EmployeeCode:       data.EmployeeCode,
		FirstName:          data.FirstName,
		LastName:           data.LastName,
		Position:           position,
		CertificationLevel: level,
		ExperienceYears:    data.ExperienceYears,
		IsAvailable:        available,
		Phone:              data.Phone,
		Email:              data.Email,
	}
	if err := db.Create(&member).Error; err != nil {
		return false, err
	}
	return true, nil
}

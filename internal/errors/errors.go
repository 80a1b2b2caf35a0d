package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a uniqueness violation, typically the partial
// unique index on (flight_id, crew_member_id) for non-cancelled rows.
type ConflictError struct {
	Entity  string
	Context string
}

func (e *ConflictError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// EligibilityError represents a crew member that cannot take an assignment:
// unavailable, wrong position, or a schedule overlap.
type EligibilityError struct {
	Reason string
}

func (e *EligibilityError) Error() string {
	return fmt.Sprintf("crew member not eligible: %s", e.Reason)
}

// Is enables errors.Is() comparison for EligibilityError regardless of reason
func (e *EligibilityError) Is(target error) bool {
	_, ok := target.(*EligibilityError)
	return ok
}

// InvalidTransitionError represents a forbidden assignment status transition
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid assignment transition from %s to %s", e.From, e.To)
}

// Is enables errors.Is() comparison for InvalidTransitionError
func (e *InvalidTransitionError) Is(target error) bool {
	_, ok := target.(*InvalidTransitionError)
	return ok
}

// StorageError wraps a collaborator I/O failure. It is propagated, never
// retried here; retry policy belongs to the caller.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage unavailable during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrFlightNotFound     = &NotFoundError{Entity: "flight"}
	ErrCrewMemberNotFound = &NotFoundError{Entity: "crew member"}
	ErrAssignmentNotFound = &NotFoundError{Entity: "assignment"}
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
)

// Conflict Errors
var (
	ErrDuplicateAssignment = &ConflictError{Entity: "assignment", Context: "for this flight and crew member"}
	ErrFlightNumberExists  = &ConflictError{Entity: "flight", Context: "with this flight number"}
	ErrEmployeeCodeExists  = &ConflictError{Entity: "crew member", Context: "with this employee code"}
)

// Business Logic Errors
var (
	ErrFlightNotAssignable   = errors.New("flight is cancelled or completed and cannot be staffed")
	ErrFlightAlreadyDeparted = errors.New("flight has already departed")
	ErrFlightHasAssignments  = errors.New("flight has active assignments and cannot be deleted")
	ErrInvalidTimeRange      = errors.New("invalid time range")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrNoEligibleCrew        = errors.New("no eligible crew members for auto-assignment")
)

// Authentication Errors
var (
	ErrMissingAuthHeader = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidToken      = &AuthenticationError{Message: "invalid or expired token"}
	ErrInsufficientRole  = &AuthorizationError{Message: "role does not permit this operation"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsEligibility checks if an error is an EligibilityError
func IsEligibility(err error) bool {
	var eligibilityErr *EligibilityError
	return errors.As(err, &eligibilityErr)
}

// IsInvalidTransition checks if an error is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var transitionErr *InvalidTransitionError
	return errors.As(err, &transitionErr)
}

// IsStorage checks if an error is a StorageError
func IsStorage(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewEligibilityError creates a new EligibilityError with a reason
func NewEligibilityError(reason string) error {
	return &EligibilityError{Reason: reason}
}

// NewInvalidTransitionError creates a new InvalidTransitionError
func NewInvalidTransitionError(from, to string) error {
	return &InvalidTransitionError{From: from, To: to}
}

// NewStorageError wraps a collaborator failure with the operation name
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

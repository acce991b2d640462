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

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
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

// ConfigurationError represents configuration-related errors. These are
// fatal to the invocation that hit them and are reported once.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrEmployeeNotFound    = &NotFoundError{Entity: "employee"}
	ErrProjectNotFound     = &NotFoundError{Entity: "project"}
	ErrTaskNotFound        = &NotFoundError{Entity: "task"}
	ErrAssignmentNotFound  = &NotFoundError{Entity: "project assignment"}
	ErrRewardPointNotFound = &NotFoundError{Entity: "reward point"}
)

// Already Exists Errors
var (
	ErrEmployeeEmailExists = &AlreadyExistsError{Entity: "employee", Context: "with this email"}
	ErrAssignmentExists    = &AlreadyExistsError{Entity: "project assignment", Context: "for this project and employee"}
)

// Business Logic Errors
var (
	// ErrAssignmentsFailed marks the partial-failure case where the project
	// row was created but its assignment rows were not. The project persists
	// unassigned; callers report this distinctly from total failure.
	ErrAssignmentsFailed = errors.New("project created but assigning employees failed")

	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Configuration Errors
var (
	ErrMailerNotConfigured = &ConfigurationError{Message: "mail transport not configured: SENDGRID_API_KEY is not set"}
	ErrChatNotConfigured   = &ConfigurationError{Message: "chat proxy not configured: CHAT_API_URL or CHAT_API_KEY is not set"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

package service

import (
	"errors"
	"fmt"
	"time"

	"effi-track-backend/internal/database/models"
	apperrors "effi-track-backend/internal/errors"
	"effi-track-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeService handles business logic for employees
type EmployeeService struct {
	repo      repository.EmployeeRepositoryInterface
	validator *validator.Validate
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo repository.EmployeeRepositoryInterface, validator *validator.Validate) *EmployeeService {
	return &EmployeeService{
		repo:      repo,
		validator: validator,
	}
}

// CreateEmployeeRequest represents the request to create an employee
type CreateEmployeeRequest struct {
	Name       string                `json:"name" validate:"required,min=1,max=200"`
	Email      string                `json:"email" validate:"required,email,max=255"`
	Department string                `json:"department" validate:"max=100"`
	Status     models.EmployeeStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateEmployeeRequest represents the request to update an employee.
// Nil fields are left untouched; the UI uses this both for edits and for
// status flips (employees are never hard-deleted).
type UpdateEmployeeRequest struct {
	Name       *string                `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email      *string                `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Department *string                `json:"department,omitempty" validate:"omitempty,max=100"`
	Status     *models.EmployeeStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// EmployeeResponse represents the response for employee operations
type EmployeeResponse struct {
	ID         uuid.UUID             `json:"id"`
	Name       string                `json:"name"`
	Email      string                `json:"email"`
	Department string                `json:"department"`
	Status     models.EmployeeStatus `json:"status"`
	CreatedAt  string                `json:"created_at"`
	UpdatedAt  string                `json:"updated_at"`
}

// EmployeeListResponse represents a paginated list of employees
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create creates a new employee
func (s *EmployeeService) Create(req *CreateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Email is unique across all employees
	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing employee by email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrEmployeeEmailExists
	}

	status := req.Status
	if status == "" {
		status = models.EmployeeStatusActive
	}

	employee := &models.Employee{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Status:     status,
	}

	if err := s.repo.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return s.toResponse(employee), nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return s.toResponse(employee), nil
}

// List retrieves employees with optional status filtering and pagination
func (s *EmployeeService) List(status *models.EmployeeStatus, page, pageSize int) (*EmployeeListResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, apperrors.ErrInvalidPaginationParams
	}
	offset := (page - 1) * pageSize

	var (
		employees []models.Employee
		total     int64
		err       error
	)
	if status != nil {
		employees, total, err = s.repo.GetByStatus(*status, pageSize, offset)
	} else {
		employees, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, *s.toResponse(&employees[i]))
	}

	return &EmployeeListResponse{
		Employees: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update updates an employee
func (s *EmployeeService) Update(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.Email != nil && *req.Email != employee.Email {
		existing, err := s.repo.GetByEmail(*req.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing employee by email: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrEmployeeEmailExists
		}
		employee.Email = *req.Email
	}
	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Department != nil {
		employee.Department = *req.Department
	}
	if req.Status != nil {
		employee.Status = *req.Status
	}

	if err := s.repo.Update(employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return s.toResponse(employee), nil
}

func (s *EmployeeService) toResponse(employee *models.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:         employee.ID,
		Name:       employee.Name,
		Email:      employee.Email,
		Department: employee.Department,
		Status:     employee.Status,
		CreatedAt:  employee.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  employee.UpdatedAt.Format(time.RFC3339),
	}
}

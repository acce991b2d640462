package repository

import (
	"effi-track-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByEmail retrieves an employee by email
func (r *EmployeeRepository) GetByEmail(email string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByIDs batch-fetches employees for a set of IDs. Unknown IDs are
// silently absent from the result.
func (r *EmployeeRepository) GetByIDs(ids []uuid.UUID) ([]models.Employee, error) {
	if len(ids) == 0 {
		return []models.Employee{}, nil
	}
	var employees []models.Employee
	err := r.db.Where("id IN ?", ids).Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

// GetAll retrieves all employees with pagination, oldest first
func (r *EmployeeRepository) GetAll(limit, offset int) ([]models.Employee, int64, error) {
	var employees []models.Employee
	var total int64

	if err := r.db.Model(&models.Employee{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at ASC").Limit(limit).Offset(offset).Find(&employees).Error
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// ListAll retrieves every employee, oldest first. Used by the leaderboard,
// which ranks the whole roster in one pass.
func (r *EmployeeRepository) ListAll() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Order("created_at ASC").Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

// GetByStatus retrieves employees filtered by status with pagination
func (r *EmployeeRepository) GetByStatus(status models.EmployeeStatus, limit, offset int) ([]models.Employee, int64, error) {
	var employees []models.Employee
	var total int64

	query := r.db.Model(&models.Employee{}).Where("status = ?", status)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at ASC").Limit(limit).Offset(offset).Find(&employees).Error
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// Update updates an employee
func (r *EmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

// Count returns the total number of employees
func (r *EmployeeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Employee{}).Count(&count).Error
	return count, err
}

// CountByStatus returns the number of employees with the given status
func (r *EmployeeRepository) CountByStatus(status models.EmployeeStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Employee{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

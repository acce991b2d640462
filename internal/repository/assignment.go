package repository

import (
	"effi-track-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for project assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// BulkCreate inserts one assignment row per employee for the given project
func (r *AssignmentRepository) BulkCreate(projectID uuid.UUID, employeeIDs []uuid.UUID) error {
	if len(employeeIDs) == 0 {
		return nil
	}
	rows := make([]models.ProjectAssignment, 0, len(employeeIDs))
	for _, employeeID := range employeeIDs {
		rows = append(rows, models.ProjectAssignment{
			ProjectID:  projectID,
			EmployeeID: employeeID,
		})
	}
	return r.db.Create(&rows).Error
}

// ReplaceForProject replaces the full assignee set of a project: every
// existing row for the project is deleted, then one row per employee is
// inserted. Runs in a single transaction so readers never observe the
// empty-assignment window between the two steps. Last writer wins across
// concurrent editors; there is no diffing or conflict detection.
func (r *AssignmentRepository) ReplaceForProject(projectID uuid.UUID, employeeIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectAssignment{}).Error; err != nil {
			return err
		}
		if len(employeeIDs) == 0 {
			return nil
		}
		rows := make([]models.ProjectAssignment, 0, len(employeeIDs))
		for _, employeeID := range employeeIDs {
			rows = append(rows, models.ProjectAssignment{
				ProjectID:  projectID,
				EmployeeID: employeeID,
			})
		}
		return tx.Create(&rows).Error
	})
}

// GetEmployeeIDsByProject returns the IDs of the employees assigned to a project
func (r *AssignmentRepository) GetEmployeeIDsByProject(projectID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.ProjectAssignment{}).
		Where("project_id = ?", projectID).
		Pluck("employee_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// GetByProject retrieves all assignment rows for a project
func (r *AssignmentRepository) GetByProject(projectID uuid.UUID) ([]models.ProjectAssignment, error) {
	var rows []models.ProjectAssignment
	err := r.db.Where("project_id = ?", projectID).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

package repository

import (
	"time"

	"effi-track-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// GetByID retrieves a task by ID
func (r *TaskRepository) GetByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetAll retrieves all tasks with pagination, newest first
func (r *TaskRepository) GetAll(limit, offset int) ([]models.Task, int64, error) {
	var tasks []models.Task
	var total int64

	if err := r.db.Model(&models.Task{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// GetFiltered retrieves tasks matching the optional project and assignee
// filters with pagination, newest first. Nil filters match everything.
func (r *TaskRepository) GetFiltered(projectID, assignedTo *uuid.UUID, limit, offset int) ([]models.Task, int64, error) {
	var tasks []models.Task
	var total int64

	query := r.db.Model(&models.Task{})
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}
	if assignedTo != nil {
		query = query.Where("assigned_to = ?", *assignedTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// GetByProjectID retrieves all tasks belonging to a project
func (r *TaskRepository) GetByProjectID(projectID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("project_id = ?", projectID).Order("created_at ASC").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetOpenDueBetween retrieves pending and in-progress tasks whose deadline
// falls within [from, to]. Completed tasks and tasks without a deadline are
// excluded.
func (r *TaskRepository) GetOpenDueBetween(from, to time.Time) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Where("status IN ? AND deadline IS NOT NULL AND deadline >= ? AND deadline <= ?",
			[]models.TaskStatus{models.TaskStatusPending, models.TaskStatusInProgress}, from, to).
		Order("deadline ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update updates a task
func (r *TaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Count returns the total number of tasks
func (r *TaskRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Count(&count).Error
	return count, err
}

// CountByStatus returns the number of tasks with the given status
func (r *TaskRepository) CountByStatus(status models.TaskStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// CountCompletedByEmployee returns completed-task counts grouped by assignee.
// Unassigned completed tasks contribute to nobody.
func (r *TaskRepository) CountCompletedByEmployee() (map[uuid.UUID]int64, error) {
	type row struct {
		AssignedTo uuid.UUID
		Total      int64
	}
	var rows []row
	err := r.db.Model(&models.Task{}).
		Select("assigned_to, COUNT(*) as total").
		Where("status = ? AND assigned_to IS NOT NULL", models.TaskStatusCompleted).
		Group("assigned_to").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		counts[r.AssignedTo] = r.Total
	}
	return counts, nil
}

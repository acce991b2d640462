package repository

import (
	"time"

	"effi-track-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetAllWithAssignments retrieves projects with their assignment rows and the
// referenced employees preloaded, newest first, with pagination
func (r *ProjectRepository) GetAllWithAssignments(limit, offset int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	if err := r.db.Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Preload("Assignments").
		Preload("Assignments.Employee").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// GetOngoingEndingBetween retrieves ongoing projects whose end date falls
// within [from, to]. Projects without an end date and completed projects are
// excluded regardless of date.
func (r *ProjectRepository) GetOngoingEndingBetween(from, to time.Time) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Where("status = ? AND end_date IS NOT NULL AND end_date >= ? AND end_date <= ?",
			models.ProjectStatusOngoing, from, to).
		Order("end_date ASC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Update updates a project
func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Count returns the total number of projects
func (r *ProjectRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Count(&count).Error
	return count, err
}

// CountByStatus returns the number of projects with the given status
func (r *ProjectRepository) CountByStatus(status models.ProjectStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

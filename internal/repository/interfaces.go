package repository

import (
	"time"

	"effi-track-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(id uuid.UUID) (*models.Employee, error)
	GetByEmail(email string) (*models.Employee, error)
	GetByIDs(ids []uuid.UUID) ([]models.Employee, error)
	GetAll(limit, offset int) ([]models.Employee, int64, error)
	ListAll() ([]models.Employee, error)
	GetByStatus(status models.EmployeeStatus, limit, offset int) ([]models.Employee, int64, error)
	Update(employee *models.Employee) error
	Count() (int64, error)
	CountByStatus(status models.EmployeeStatus) (int64, error)
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetAllWithAssignments(limit, offset int) ([]models.Project, int64, error)
	GetOngoingEndingBetween(from, to time.Time) ([]models.Project, error)
	Update(project *models.Project) error
	Count() (int64, error)
	CountByStatus(status models.ProjectStatus) (int64, error)
}

// AssignmentRepositoryInterface defines the interface for project assignment repository operations
type AssignmentRepositoryInterface interface {
	BulkCreate(projectID uuid.UUID, employeeIDs []uuid.UUID) error
	ReplaceForProject(projectID uuid.UUID, employeeIDs []uuid.UUID) error
	GetEmployeeIDsByProject(projectID uuid.UUID) ([]uuid.UUID, error)
	GetByProject(projectID uuid.UUID) ([]models.ProjectAssignment, error)
}

// TaskRepositoryInterface defines the interface for task repository operations
type TaskRepositoryInterface interface {
	Create(task *models.Task) error
	GetByID(id uuid.UUID) (*models.Task, error)
	GetAll(limit, offset int) ([]models.Task, int64, error)
	GetFiltered(projectID, assignedTo *uuid.UUID, limit, offset int) ([]models.Task, int64, error)
	GetByProjectID(projectID uuid.UUID) ([]models.Task, error)
	GetOpenDueBetween(from, to time.Time) ([]models.Task, error)
	Update(task *models.Task) error
	Count() (int64, error)
	CountByStatus(status models.TaskStatus) (int64, error)
	CountCompletedByEmployee() (map[uuid.UUID]int64, error)
}

// RewardPointRepositoryInterface defines the interface for reward point repository operations
type RewardPointRepositoryInterface interface {
	Create(point *models.RewardPoint) error
	GetByEmployeeID(employeeID uuid.UUID, limit, offset int) ([]models.RewardPoint, int64, error)
	SumPointsByEmployee() (map[uuid.UUID]int64, error)
	TotalPoints() (int64, error)
}

package service

import (
	"context"

	"effi-track-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// EmployeeServiceInterface defines the interface for employee service operations
type EmployeeServiceInterface interface {
	Create(req *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetByID(id uuid.UUID) (*EmployeeResponse, error)
	List(status *models.EmployeeStatus, page, pageSize int) (*EmployeeListResponse, error)
	Update(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
}

// ProjectServiceInterface defines the interface for project service operations
type ProjectServiceInterface interface {
	Create(req *CreateProjectRequest) (*ProjectResponse, error)
	GetByID(id uuid.UUID) (*ProjectResponse, error)
	ListWithAssignees(page, pageSize int) (*ProjectListResponse, error)
	Update(id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error)
	SetAssignees(projectID uuid.UUID, employeeIDs []uuid.UUID) error
}

// TaskServiceInterface defines the interface for task service operations
type TaskServiceInterface interface {
	Create(req *CreateTaskRequest) (*TaskResponse, error)
	GetByID(id uuid.UUID) (*TaskResponse, error)
	List(projectID, assignedTo *uuid.UUID, page, pageSize int) (*TaskListResponse, error)
	Update(id uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error)
}

// RewardServiceInterface defines the interface for reward service operations
type RewardServiceInterface interface {
	Award(req *AwardPointsRequest) (*RewardPointResponse, error)
	ListByEmployee(employeeID uuid.UUID, page, pageSize int) (*RewardPointListResponse, error)
	Leaderboard() ([]LeaderboardEntry, error)
}

// StatsServiceInterface defines the interface for dashboard stats operations
type StatsServiceInterface interface {
	GetDashboardStats() (*DashboardStats, error)
}

// NotifierServiceInterface defines the interface for the deadline notifier
type NotifierServiceInterface interface {
	Run(ctx context.Context) (*NotifierSummary, error)
}

// ChatServiceInterface defines the interface for the AI chat proxy
type ChatServiceInterface interface {
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}

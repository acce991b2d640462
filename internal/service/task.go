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

// TaskService handles business logic for tasks
type TaskService struct {
	repo         repository.TaskRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	projectRepo  repository.ProjectRepositoryInterface
	validator    *validator.Validate
}

// NewTaskService creates a new task service
func NewTaskService(repo repository.TaskRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, projectRepo repository.ProjectRepositoryInterface, validator *validator.Validate) *TaskService {
	return &TaskService{
		repo:         repo,
		employeeRepo: employeeRepo,
		projectRepo:  projectRepo,
		validator:    validator,
	}
}

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	Title       string            `json:"title" validate:"required,min=1,max=200"`
	Description string            `json:"description"`
	AssignedTo  *uuid.UUID        `json:"assigned_to,omitempty"`
	ProjectID   *uuid.UUID        `json:"project_id,omitempty"`
	Status      models.TaskStatus `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	Deadline    *time.Time        `json:"deadline,omitempty"`
}

// UpdateTaskRequest represents the request to update a task
type UpdateTaskRequest struct {
	Title       *string            `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string            `json:"description,omitempty"`
	AssignedTo  *uuid.UUID         `json:"assigned_to,omitempty"`
	ProjectID   *uuid.UUID         `json:"project_id,omitempty"`
	Status      *models.TaskStatus `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed"`
	Deadline    *time.Time         `json:"deadline,omitempty"`
}

// TaskResponse represents the response for task operations
type TaskResponse struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	AssignedTo  *uuid.UUID        `json:"assigned_to,omitempty"`
	ProjectID   *uuid.UUID        `json:"project_id,omitempty"`
	Status      models.TaskStatus `json:"status"`
	Deadline    *time.Time        `json:"deadline,omitempty"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

// TaskListResponse represents a paginated list of tasks
type TaskListResponse struct {
	Tasks    []TaskResponse `json:"tasks"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new task
func (s *TaskService) Create(req *CreateTaskRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.AssignedTo != nil {
		if _, err := s.employeeRepo.GetByID(*req.AssignedTo); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrEmployeeNotFound
			}
			return nil, fmt.Errorf("failed to verify assignee: %w", err)
		}
	}
	if req.ProjectID != nil {
		if _, err := s.projectRepo.GetByID(*req.ProjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrProjectNotFound
			}
			return nil, fmt.Errorf("failed to verify project: %w", err)
		}
	}

	status := req.Status
	if status == "" {
		status = models.TaskStatusPending
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		ProjectID:   req.ProjectID,
		Status:      status,
		Deadline:    req.Deadline,
	}
	if status == models.TaskStatusCompleted {
		now := time.Now().UTC()
		task.CompletedAt = &now
	}

	if err := s.repo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.toResponse(task), nil
}

// GetByID retrieves a task by ID
func (s *TaskService) GetByID(id uuid.UUID) (*TaskResponse, error) {
	task, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return s.toResponse(task), nil
}

// List retrieves tasks with optional project and assignee filters plus
// pagination. Nil filters match everything.
func (s *TaskService) List(projectID, assignedTo *uuid.UUID, page, pageSize int) (*TaskListResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, apperrors.ErrInvalidPaginationParams
	}
	offset := (page - 1) * pageSize

	tasks, total, err := s.repo.GetFiltered(projectID, assignedTo, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	responses := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, *s.toResponse(&tasks[i]))
	}

	return &TaskListResponse{
		Tasks:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a task. Moving into completed status stamps CompletedAt;
// moving back out clears it.
func (s *TaskService) Update(id uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	task, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.AssignedTo != nil {
		if _, err := s.employeeRepo.GetByID(*req.AssignedTo); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrEmployeeNotFound
			}
			return nil, fmt.Errorf("failed to verify assignee: %w", err)
		}
		task.AssignedTo = req.AssignedTo
	}
	if req.ProjectID != nil {
		if _, err := s.projectRepo.GetByID(*req.ProjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrProjectNotFound
			}
			return nil, fmt.Errorf("failed to verify project: %w", err)
		}
		task.ProjectID = req.ProjectID
	}
	if req.Deadline != nil {
		task.Deadline = req.Deadline
	}
	if req.Status != nil && *req.Status != task.Status {
		task.Status = *req.Status
		if *req.Status == models.TaskStatusCompleted {
			now := time.Now().UTC()
			task.CompletedAt = &now
		} else {
			task.CompletedAt = nil
		}
	}

	if err := s.repo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.toResponse(task), nil
}

func (s *TaskService) toResponse(task *models.Task) *TaskResponse {
	return &TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		AssignedTo:  task.AssignedTo,
		ProjectID:   task.ProjectID,
		Status:      task.Status,
		Deadline:    task.Deadline,
		CompletedAt: task.CompletedAt,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}
}

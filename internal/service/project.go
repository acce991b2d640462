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

// ProjectService handles business logic for projects and their assignee sets
type ProjectService struct {
	repo           repository.ProjectRepositoryInterface
	assignmentRepo repository.AssignmentRepositoryInterface
	employeeRepo   repository.EmployeeRepositoryInterface
	validator      *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, assignmentRepo repository.AssignmentRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		repo:           repo,
		assignmentRepo: assignmentRepo,
		employeeRepo:   employeeRepo,
		validator:      validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Title       string               `json:"title" validate:"required,min=1,max=200"`
	Description string               `json:"description"`
	Status      models.ProjectStatus `json:"status" validate:"omitempty,oneof=ongoing completed"`
	StartDate   time.Time            `json:"start_date" validate:"required"`
	EndDate     *time.Time           `json:"end_date,omitempty"`
	EmployeeIDs []uuid.UUID          `json:"employee_ids,omitempty"`
}

// UpdateProjectRequest represents the request to update a project
type UpdateProjectRequest struct {
	Title       *string               `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string               `json:"description,omitempty"`
	Status      *models.ProjectStatus `json:"status,omitempty" validate:"omitempty,oneof=ongoing completed"`
	StartDate   *time.Time            `json:"start_date,omitempty"`
	EndDate     *time.Time            `json:"end_date,omitempty"`
}

// AssigneeResponse is the employee summary embedded in project responses
type AssigneeResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// ProjectResponse represents the response for project operations.
// AssignedEmployees is always a list, empty when nobody is assigned.
type ProjectResponse struct {
	ID                uuid.UUID            `json:"id"`
	Title             string               `json:"title"`
	Description       string               `json:"description"`
	Status            models.ProjectStatus `json:"status"`
	StartDate         time.Time            `json:"start_date"`
	EndDate           *time.Time           `json:"end_date,omitempty"`
	AssignedEmployees []AssigneeResponse   `json:"assigned_employees"`
	CreatedAt         string               `json:"created_at"`
	UpdatedAt         string               `json:"updated_at"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create inserts the project row, then bulk-inserts one assignment per
// employee ID. If the assignment insert fails after the project insert
// succeeded, the project persists unassigned and the caller receives
// ErrAssignmentsFailed so it can report the partial failure distinctly.
// There is no automatic rollback.
func (s *ProjectService) Create(req *CreateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := req.Status
	if status == "" {
		status = models.ProjectStatusOngoing
	}

	project := &models.Project{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	if len(req.EmployeeIDs) > 0 {
		if err := s.assignmentRepo.BulkCreate(project.ID, req.EmployeeIDs); err != nil {
			return s.toResponse(project, nil), fmt.Errorf("%w: %v", apperrors.ErrAssignmentsFailed, err)
		}
	}

	assignees, err := s.resolveAssignees(project.ID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(project, assignees), nil
}

// GetByID retrieves a project with its assignees
func (s *ProjectService) GetByID(id uuid.UUID) (*ProjectResponse, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	assignees, err := s.resolveAssignees(project.ID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(project, assignees), nil
}

// ListWithAssignees retrieves projects with their assigned employees resolved
func (s *ProjectService) ListWithAssignees(page, pageSize int) (*ProjectListResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, apperrors.ErrInvalidPaginationParams
	}
	offset := (page - 1) * pageSize

	projects, total, err := s.repo.GetAllWithAssignments(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		project := &projects[i]
		assignees := make([]AssigneeResponse, 0, len(project.Assignments))
		for _, a := range project.Assignments {
			assignees = append(assignees, AssigneeResponse{
				ID:    a.Employee.ID,
				Name:  a.Employee.Name,
				Email: a.Employee.Email,
			})
		}
		responses = append(responses, *s.toResponse(project, assignees))
	}

	return &ProjectListResponse{
		Projects: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a project
func (s *ProjectService) Update(id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.StartDate != nil {
		project.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}

	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	assignees, err := s.resolveAssignees(project.ID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(project, assignees), nil
}

// SetAssignees replaces the full assignee set of a project. This is a
// replace-all write, not a diff: concurrent editors racing on the same
// project silently overwrite each other's last write.
func (s *ProjectService) SetAssignees(projectID uuid.UUID, employeeIDs []uuid.UUID) error {
	if _, err := s.repo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}

	if err := s.assignmentRepo.ReplaceForProject(projectID, employeeIDs); err != nil {
		return fmt.Errorf("failed to replace project assignees: %w", err)
	}
	return nil
}

func (s *ProjectService) resolveAssignees(projectID uuid.UUID) ([]AssigneeResponse, error) {
	ids, err := s.assignmentRepo.GetEmployeeIDsByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project assignments: %w", err)
	}

	employees, err := s.employeeRepo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assigned employees: %w", err)
	}

	assignees := make([]AssigneeResponse, 0, len(employees))
	for _, e := range employees {
		assignees = append(assignees, AssigneeResponse{ID: e.ID, Name: e.Name, Email: e.Email})
	}
	return assignees, nil
}

func (s *ProjectService) toResponse(project *models.Project, assignees []AssigneeResponse) *ProjectResponse {
	if assignees == nil {
		assignees = []AssigneeResponse{}
	}
	return &ProjectResponse{
		ID:                project.ID,
		Title:             project.Title,
		Description:       project.Description,
		Status:            project.Status,
		StartDate:         project.StartDate,
		EndDate:           project.EndDate,
		AssignedEmployees: assignees,
		CreatedAt:         project.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         project.UpdatedAt.Format(time.RFC3339),
	}
}

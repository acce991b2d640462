package testutils

import (
	"fmt"
	"time"

	"effi-track-backend/internal/database/models"

	"github.com/google/uuid"
)

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with default values
func (f *EmployeeFactory) Create() *models.Employee {
	id := uuid.New()
	return &models.Employee{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:       "Jane Doe",
		Email:      fmt.Sprintf("jane.doe+%s@test.com", id.String()[:8]),
		Department: "Engineering",
		Status:     models.EmployeeStatusActive,
	}
}

// WithName sets a custom name for the employee
func (f *EmployeeFactory) WithName(name string) *models.Employee {
	employee := f.Create()
	employee.Name = name
	return employee
}

// WithEmail sets a custom email for the employee
func (f *EmployeeFactory) WithEmail(email string) *models.Employee {
	employee := f.Create()
	employee.Email = email
	return employee
}

// WithStatus sets a custom status for the employee
func (f *EmployeeFactory) WithStatus(status models.EmployeeStatus) *models.Employee {
	employee := f.Create()
	employee.Status = status
	return employee
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "Test Project",
		Description: "A test project",
		Status:      models.ProjectStatusOngoing,
		StartDate:   time.Now().AddDate(0, -1, 0),
	}
}

// WithTitle sets a custom title for the project
func (f *ProjectFactory) WithTitle(title string) *models.Project {
	project := f.Create()
	project.Title = title
	return project
}

// WithEndDate sets an end date for the project
func (f *ProjectFactory) WithEndDate(endDate time.Time) *models.Project {
	project := f.Create()
	project.EndDate = &endDate
	return project
}

// WithStatus sets a custom status for the project
func (f *ProjectFactory) WithStatus(status models.ProjectStatus) *models.Project {
	project := f.Create()
	project.Status = status
	return project
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test Task with default values
func (f *TaskFactory) Create() *models.Task {
	return &models.Task{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "Test Task",
		Description: "A test task",
		Status:      models.TaskStatusPending,
	}
}

// WithAssignee sets the assigned employee for the task
func (f *TaskFactory) WithAssignee(employeeID uuid.UUID) *models.Task {
	task := f.Create()
	task.AssignedTo = &employeeID
	return task
}

// WithProject sets the project for the task
func (f *TaskFactory) WithProject(projectID uuid.UUID) *models.Task {
	task := f.Create()
	task.ProjectID = &projectID
	return task
}

// WithDeadline sets a deadline for the task
func (f *TaskFactory) WithDeadline(deadline time.Time) *models.Task {
	task := f.Create()
	task.Deadline = &deadline
	return task
}

// WithStatus sets a custom status for the task
func (f *TaskFactory) WithStatus(status models.TaskStatus) *models.Task {
	task := f.Create()
	task.Status = status
	return task
}

// RewardPointFactory provides methods to create test RewardPoint data
type RewardPointFactory struct{}

// NewRewardPointFactory creates a new RewardPointFactory
func NewRewardPointFactory() *RewardPointFactory {
	return &RewardPointFactory{}
}

// Create creates a test RewardPoint with default values
func (f *RewardPointFactory) Create() *models.RewardPoint {
	return &models.RewardPoint{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EmployeeID: uuid.New(),
		Points:     10,
		Reason:     "Shipped on time",
	}
}

// ForEmployee sets the employee for the reward point entry
func (f *RewardPointFactory) ForEmployee(employeeID uuid.UUID) *models.RewardPoint {
	point := f.Create()
	point.EmployeeID = employeeID
	return point
}

// WithPoints sets a custom point value
func (f *RewardPointFactory) WithPoints(points int) *models.RewardPoint {
	point := f.Create()
	point.Points = points
	return point
}

// FactorySet provides access to all factories
type FactorySet struct {
	Employee    *EmployeeFactory
	Project     *ProjectFactory
	Task        *TaskFactory
	RewardPoint *RewardPointFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Employee:    NewEmployeeFactory(),
		Project:     NewProjectFactory(),
		Task:        NewTaskFactory(),
		RewardPoint: NewRewardPointFactory(),
	}
}

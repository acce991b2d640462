package service_test

import (
	"testing"

	"effi-track-backend/internal/database/models"
	apperrors "effi-track-backend/internal/errors"
	"effi-track-backend/internal/mocks"
	"effi-track-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TaskServiceTestSuite defines the test suite for TaskService
type TaskServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRepo         *mocks.MockTaskRepositoryInterface
	mockEmployeeRepo *mocks.MockEmployeeRepositoryInterface
	mockProjectRepo  *mocks.MockProjectRepositoryInterface
	taskService      *service.TaskService
	validator        *validator.Validate
}

// SetupTest sets up the test suite
func (suite *TaskServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockTaskRepositoryInterface(suite.ctrl)
	suite.mockEmployeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.taskService = service.NewTaskService(suite.mockRepo, suite.mockEmployeeRepo, suite.mockProjectRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *TaskServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTask tests creating a task with an assignee and a project
func (suite *TaskServiceTestSuite) TestCreateTask() {
	employeeID := uuid.New()
	projectID := uuid.New()
	req := &service.CreateTaskRequest{
		Title:      "Write migration",
		AssignedTo: &employeeID,
		ProjectID:  &projectID,
	}

	suite.mockEmployeeRepo.EXPECT().
		GetByID(employeeID).
		Return(&models.Employee{BaseModel: models.BaseModel{ID: employeeID}}, nil)
	suite.mockProjectRepo.EXPECT().
		GetByID(projectID).
		Return(&models.Project{BaseModel: models.BaseModel{ID: projectID}}, nil)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil)

	response, err := suite.taskService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Write migration", response.Title)
	assert.Equal(suite.T(), models.TaskStatusPending, response.Status) // default status
	assert.Nil(suite.T(), response.CompletedAt)
}

// TestCreateTaskUnknownAssignee tests that a dangling assignee is rejected
func (suite *TaskServiceTestSuite) TestCreateTaskUnknownAssignee() {
	employeeID := uuid.New()
	req := &service.CreateTaskRequest{
		Title:      "Orphan",
		AssignedTo: &employeeID,
	}

	suite.mockEmployeeRepo.EXPECT().
		GetByID(employeeID).
		Return(nil, gorm.ErrRecordNotFound)

	response, err := suite.taskService.Create(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmployeeNotFound)
	assert.Nil(suite.T(), response)
}

// TestListTasksWithProjectFilter tests scoping the listing to one project
func (suite *TaskServiceTestSuite) TestListTasksWithProjectFilter() {
	projectID := uuid.New()

	suite.mockRepo.EXPECT().
		GetFiltered(&projectID, nil, 20, 0).
		Return([]models.Task{
			{Title: "Write the release notes", ProjectID: &projectID, Status: models.TaskStatusPending},
		}, int64(1), nil)

	response, err := suite.taskService.List(&projectID, nil, 1, 20)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Tasks, 1)
	assert.Equal(suite.T(), int64(1), response.Total)
	assert.Equal(suite.T(), projectID, *response.Tasks[0].ProjectID)
}

// TestListTasksInvalidPagination tests rejection of out-of-range paging params
func (suite *TaskServiceTestSuite) TestListTasksInvalidPagination() {
	response, err := suite.taskService.List(nil, nil, 0, 20)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPaginationParams)
	assert.Nil(suite.T(), response)
}

// TestUpdateTaskCompletion tests that moving a task into completed stamps
// the completion time
func (suite *TaskServiceTestSuite) TestUpdateTaskCompletion() {
	id := uuid.New()
	completed := models.TaskStatusCompleted

	suite.mockRepo.EXPECT().
		GetByID(id).
		Return(&models.Task{
			BaseModel: models.BaseModel{ID: id},
			Title:     "Almost done",
			Status:    models.TaskStatusInProgress,
		}, nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil)

	response, err := suite.taskService.Update(id, &service.UpdateTaskRequest{Status: &completed})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TaskStatusCompleted, response.Status)
	assert.NotNil(suite.T(), response.CompletedAt)
}

// TestUpdateTaskReopen tests that leaving completed clears the completion time
func (suite *TaskServiceTestSuite) TestUpdateTaskReopen() {
	id := uuid.New()
	inProgress := models.TaskStatusInProgress
	task := completedTask(id)

	suite.mockRepo.EXPECT().
		GetByID(id).
		Return(task, nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil)

	response, err := suite.taskService.Update(id, &service.UpdateTaskRequest{Status: &inProgress})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TaskStatusInProgress, response.Status)
	assert.Nil(suite.T(), response.CompletedAt)
}

// TestUpdateTaskNotFound tests updating a nonexistent task
func (suite *TaskServiceTestSuite) TestUpdateTaskNotFound() {
	id := uuid.New()
	title := "Ghost"

	suite.mockRepo.EXPECT().
		GetByID(id).
		Return(nil, gorm.ErrRecordNotFound)

	response, err := suite.taskService.Update(id, &service.UpdateTaskRequest{Title: &title})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTaskNotFound)
	assert.Nil(suite.T(), response)
}

func completedTask(id uuid.UUID) *models.Task {
	done := models.TaskStatusCompleted
	task := &models.Task{
		BaseModel: models.BaseModel{ID: id},
		Title:     "Finished",
		Status:    done,
	}
	now := task.CreatedAt
	task.CompletedAt = &now
	return task
}

// TestTaskServiceTestSuite runs the test suite
func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}

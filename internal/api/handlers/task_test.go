package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"effi-track-backend/internal/api/handlers"
	"effi-track-backend/internal/database/models"
	apperrors "effi-track-backend/internal/errors"
	"effi-track-backend/internal/mocks"
	"effi-track-backend/internal/service"
	"effi-track-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTaskServiceInterface
	http        *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TaskHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTaskServiceInterface(suite.ctrl)

	handler := handlers.NewTaskHandler(suite.mockService)
	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.POST("/tasks", handler.CreateTask)
	suite.http.Router.GET("/tasks", handler.ListTasks)
	suite.http.Router.GET("/tasks/:id", handler.GetTask)
	suite.http.Router.PUT("/tasks/:id", handler.UpdateTask)
}

// TearDownTest cleans up after each test
func (suite *TaskHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTask tests successful task creation
func (suite *TaskHandlerTestSuite) TestCreateTask() {
	taskID := uuid.New()
	assigneeID := uuid.New()
	deadline := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	req := service.CreateTaskRequest{
		Title:      "Write the release notes",
		AssignedTo: &assigneeID,
		Deadline:   &deadline,
	}

	suite.mockService.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(got *service.CreateTaskRequest) (*service.TaskResponse, error) {
			assert.Equal(suite.T(), assigneeID, *got.AssignedTo)
			return &service.TaskResponse{
				ID:         taskID,
				Title:      got.Title,
				AssignedTo: got.AssignedTo,
				Status:     models.TaskStatusPending,
				Deadline:   got.Deadline,
			}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPost, "/tasks", req)

	var response service.TaskResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), taskID, response.ID)
	assert.Equal(suite.T(), models.TaskStatusPending, response.Status)
	assert.Nil(suite.T(), response.CompletedAt)
}

// TestCreateTaskUnknownAssignee tests the 404 response for an unknown assignee
func (suite *TaskHandlerTestSuite) TestCreateTaskUnknownAssignee() {
	assigneeID := uuid.New()

	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrEmployeeNotFound)

	recorder := suite.http.MakeRequest(http.MethodPost, "/tasks", service.CreateTaskRequest{
		Title:      "Write the release notes",
		AssignedTo: &assigneeID,
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "employee not found")
}

// TestGetTaskInvalidID tests rejection of a non-UUID path parameter
func (suite *TaskHandlerTestSuite) TestGetTaskInvalidID() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/tasks/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid task ID")
}

// TestGetTaskNotFound tests the 404 response for an unknown task
func (suite *TaskHandlerTestSuite) TestGetTaskNotFound() {
	taskID := uuid.New()

	suite.mockService.EXPECT().
		GetByID(taskID).
		Return(nil, apperrors.ErrTaskNotFound)

	recorder := suite.http.MakeRequest(http.MethodGet, "/tasks/"+taskID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "task not found")
}

// TestListTasks tests the paginated task listing
func (suite *TaskHandlerTestSuite) TestListTasks() {
	suite.mockService.EXPECT().
		List(nil, nil, 1, 20).
		Return(&service.TaskListResponse{
			Tasks: []service.TaskResponse{
				{ID: uuid.New(), Title: "Write the release notes", Status: models.TaskStatusPending},
			},
			Total:    1,
			Page:     1,
			PageSize: 20,
		}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/tasks", nil)

	var response service.TaskListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Tasks, 1)
	assert.Equal(suite.T(), int64(1), response.Total)
}

// TestListTasksFilteredByProject tests scoping the listing to one project
func (suite *TaskHandlerTestSuite) TestListTasksFilteredByProject() {
	projectID := uuid.New()

	suite.mockService.EXPECT().
		List(gomock.Any(), nil, 1, 20).
		DoAndReturn(func(gotProject, gotAssignee *uuid.UUID, page, pageSize int) (*service.TaskListResponse, error) {
			assert.Equal(suite.T(), projectID, *gotProject)
			return &service.TaskListResponse{
				Tasks:    []service.TaskResponse{},
				Page:     page,
				PageSize: pageSize,
			}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodGet, "/tasks?project_id="+projectID.String(), nil)

	var response service.TaskListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Empty(suite.T(), response.Tasks)
}

// TestListTasksInvalidProjectFilter tests rejection of a non-UUID filter value
func (suite *TaskHandlerTestSuite) TestListTasksInvalidProjectFilter() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/tasks?project_id=not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid project ID")
}

// TestUpdateTaskCompletion tests marking a task completed
func (suite *TaskHandlerTestSuite) TestUpdateTaskCompletion() {
	taskID := uuid.New()
	completed := models.TaskStatusCompleted
	completedAt := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

	suite.mockService.EXPECT().
		Update(taskID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.UpdateTaskRequest) (*service.TaskResponse, error) {
			assert.Equal(suite.T(), completed, *req.Status)
			return &service.TaskResponse{
				ID:          taskID,
				Title:       "Write the release notes",
				Status:      completed,
				CompletedAt: &completedAt,
			}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPut, "/tasks/"+taskID.String(),
		service.UpdateTaskRequest{Status: &completed})

	var response service.TaskResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), completed, response.Status)
	assert.NotNil(suite.T(), response.CompletedAt)
}

// TestUpdateTaskNotFound tests updating an unknown task
func (suite *TaskHandlerTestSuite) TestUpdateTaskNotFound() {
	taskID := uuid.New()
	title := "Renamed"

	suite.mockService.EXPECT().
		Update(taskID, gomock.Any()).
		Return(nil, apperrors.ErrTaskNotFound)

	recorder := suite.http.MakeRequest(http.MethodPut, "/tasks/"+taskID.String(),
		service.UpdateTaskRequest{Title: &title})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "task not found")
}

// TestTaskHandlerTestSuite runs the test suite
func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"effi-track-backend/internal/config"
	"effi-track-backend/internal/database/models"
	apperrors "effi-track-backend/internal/errors"
	"effi-track-backend/internal/mailer"
	"effi-track-backend/internal/mocks"
	"effi-track-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// NotifierServiceTestSuite defines the test suite for NotifierService
type NotifierServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockProjectRepo    *mocks.MockProjectRepositoryInterface
	mockTaskRepo       *mocks.MockTaskRepositoryInterface
	mockEmployeeRepo   *mocks.MockEmployeeRepositoryInterface
	mockAssignmentRepo *mocks.MockAssignmentRepositoryInterface
	mockMailer         *mocks.MockMailer
	notifierService    *service.NotifierService
	now                time.Time
}

// SetupTest sets up the test suite
func (suite *NotifierServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockTaskRepo = mocks.NewMockTaskRepositoryInterface(suite.ctrl)
	suite.mockEmployeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.mockAssignmentRepo = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.mockMailer = mocks.NewMockMailer(suite.ctrl)

	suite.notifierService = service.NewNotifierService(
		suite.mockProjectRepo,
		suite.mockTaskRepo,
		suite.mockEmployeeRepo,
		suite.mockAssignmentRepo,
		suite.mockMailer,
		time.Second,
	)

	suite.now = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	suite.notifierService.Now = func() time.Time { return suite.now }
}

// TearDownTest cleans up after each test
func (suite *NotifierServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *NotifierServiceTestSuite) employee(name, email string) models.Employee {
	return models.Employee{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      name,
		Email:     email,
		Status:    models.EmployeeStatusActive,
	}
}

// TestRunUnconfiguredMailer tests that a missing mail transport fails the run
// before any selection happens
func (suite *NotifierServiceTestSuite) TestRunUnconfiguredMailer() {
	suite.mockMailer.EXPECT().Configured().Return(false)

	summary, err := suite.notifierService.Run(context.Background())

	assert.Nil(suite.T(), summary)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMailerNotConfigured)
	assert.True(suite.T(), apperrors.IsConfiguration(err))
}

// TestRunMissingCredentialOutsideDevelopment tests that the transport selected
// for a keyless non-development config fails the run as a configuration error
// rather than reporting a successful batch
func (suite *NotifierServiceTestSuite) TestRunMissingCredentialOutsideDevelopment() {
	cfg := &config.Config{Environment: "production"}
	notifier := service.NewNotifierService(
		suite.mockProjectRepo,
		suite.mockTaskRepo,
		suite.mockEmployeeRepo,
		suite.mockAssignmentRepo,
		mailer.FromConfig(cfg),
		time.Second,
	)

	summary, err := notifier.Run(context.Background())

	assert.Nil(suite.T(), summary)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMailerNotConfigured)
	assert.True(suite.T(), apperrors.IsConfiguration(err))
}

// TestRunEmptyWindow tests that a run with nothing due returns a zero summary
func (suite *NotifierServiceTestSuite) TestRunEmptyWindow() {
	suite.mockMailer.EXPECT().Configured().Return(true)
	suite.mockProjectRepo.EXPECT().
		GetOngoingEndingBetween(suite.now, suite.now.Add(72*time.Hour)).
		Return([]models.Project{}, nil)
	suite.mockTaskRepo.EXPECT().
		GetOpenDueBetween(suite.now, suite.now.Add(72*time.Hour)).
		Return([]models.Task{}, nil)

	summary, err := suite.notifierService.Run(context.Background())

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), summary.Success)
	assert.Equal(suite.T(), "Sent 0 deadline reminder(s)", summary.Message)
	assert.Empty(suite.T(), summary.EmailsSent)
	assert.Equal(suite.T(), 0, summary.ProjectsChecked)
	assert.Equal(suite.T(), 0, summary.TasksChecked)
}

// TestRunProjectReminders tests fan-out of one email per assignee of a
// soon-ending project, with the day count rounded up
func (suite *NotifierServiceTestSuite) TestRunProjectReminders() {
	alice := suite.employee("Alice", "alice@test.com")
	bob := suite.employee("Bob", "bob@test.com")

	endDate := suite.now.Add(36 * time.Hour) // rounds up to 2 days
	project := models.Project{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Title:     "Launch",
		Status:    models.ProjectStatusOngoing,
		EndDate:   &endDate,
	}

	suite.mockMailer.EXPECT().Configured().Return(true)
	suite.mockProjectRepo.EXPECT().
		GetOngoingEndingBetween(gomock.Any(), gomock.Any()).
		Return([]models.Project{project}, nil)
	suite.mockAssignmentRepo.EXPECT().
		GetEmployeeIDsByProject(project.ID).
		Return([]uuid.UUID{alice.ID, bob.ID}, nil)
	suite.mockEmployeeRepo.EXPECT().
		GetByIDs([]uuid.UUID{alice.ID, bob.ID}).
		Return([]models.Employee{alice, bob}, nil)
	suite.mockTaskRepo.EXPECT().
		GetOpenDueBetween(gomock.Any(), gomock.Any()).
		Return([]models.Task{}, nil)

	var bodies []string
	suite.mockMailer.EXPECT().
		Send(gomock.Any(), gomock.Any(), "Deadline approaching: Launch", gomock.Any()).
		DoAndReturn(func(_ context.Context, to, subject, body string) error {
			bodies = append(bodies, body)
			return nil
		}).
		Times(2)

	summary, err := suite.notifierService.Run(context.Background())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"alice@test.com", "bob@test.com"}, summary.EmailsSent)
	assert.Equal(suite.T(), "Sent 2 deadline reminder(s)", summary.Message)
	assert.Equal(suite.T(), 1, summary.ProjectsChecked)
	assert.Contains(suite.T(), bodies[0], "Hi Alice")
	assert.Contains(suite.T(), bodies[0], "2 days")
	assert.Contains(suite.T(), bodies[1], "Hi Bob")
}

// TestRunSingularDayWording tests that a deadline within 24 hours reads
// "1 day", not "1 days"
func (suite *NotifierServiceTestSuite) TestRunSingularDayWording() {
	assignee := suite.employee("Carol", "carol@test.com")
	deadline := suite.now.Add(6 * time.Hour)
	task := models.Task{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		Title:      "Fix login",
		Status:     models.TaskStatusInProgress,
		AssignedTo: &assignee.ID,
		Deadline:   &deadline,
	}

	suite.mockMailer.EXPECT().Configured().Return(true)
	suite.mockProjectRepo.EXPECT().
		GetOngoingEndingBetween(gomock.Any(), gomock.Any()).
		Return([]models.Project{}, nil)
	suite.mockTaskRepo.EXPECT().
		GetOpenDueBetween(gomock.Any(), gomock.Any()).
		Return([]models.Task{task}, nil)
	suite.mockEmployeeRepo.EXPECT().
		GetByID(assignee.ID).
		Return(&assignee, nil)

	var gotBody string
	suite.mockMailer.EXPECT().
		Send(gomock.Any(), "carol@test.com", "Deadline approaching: Fix login", gomock.Any()).
		DoAndReturn(func(_ context.Context, to, subject, body string) error {
			gotBody = body
			return nil
		})

	summary, err := suite.notifierService.Run(context.Background())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"carol@test.com"}, summary.EmailsSent)
	assert.Contains(suite.T(), gotBody, "due in 1 day.")
	assert.Contains(suite.T(), gotBody, "in_progress")
	assert.NotContains(suite.T(), gotBody, "1 days")
}

// TestRunThreeDayBoundary tests that a task due exactly at the window horizon
// is dispatched and worded as "3 days"
func (suite *NotifierServiceTestSuite) TestRunThreeDayBoundary() {
	assignee := suite.employee("Grace", "grace@test.com")
	deadline := suite.now.Add(72 * time.Hour)
	task := models.Task{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		Title:      "Quarterly report",
		Status:     models.TaskStatusPending,
		AssignedTo: &assignee.ID,
		Deadline:   &deadline,
	}

	suite.mockMailer.EXPECT().Configured().Return(true)
	suite.mockProjectRepo.EXPECT().
		GetOngoingEndingBetween(suite.now, deadline).
		Return([]models.Project{}, nil)
	suite.mockTaskRepo.EXPECT().
		GetOpenDueBetween(suite.now, deadline).
		Return([]models.Task{task}, nil)
	suite.mockEmployeeRepo.EXPECT().
		GetByID(assignee.ID).
		Return(&assignee, nil)

	var gotBody string
	suite.mockMailer.EXPECT().
		Send(gomock.Any(), "grace@test.com", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, to, subject, body string) error {
			gotBody = body
			return nil
		})

	summary, err := suite.notifierService.Run(context.Background())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"grace@test.com"}, summary.EmailsSent)
	assert.Contains(suite.T(), gotBody, "due in 3 days.")
}

// TestRunSkipsUnassignedTasks tests that tasks without an assignee produce
// no reminder but still count as checked
func (suite *NotifierServiceTestSuite) TestRunSkipsUnassignedTasks() {
	deadline := suite.now.Add(24 * time.Hour)
	task := models.Task{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Title:     "Orphan task",
		Status:    models.TaskStatusPending,
		Deadline:  &deadline,
	}

	suite.mockMailer.EXPECT().Configured().Return(true)
	suite.mockProjectRepo.EXPECT().
		GetOngoingEndingBetween(gomock.Any(), gomock.Any()).
		Return([]models.Project{}, nil)
	suite.mockTaskRepo.EXPECT().
		GetOpenDueBetween(gomock.Any(), gomock.Any()).
		Return([]models.Task{task}, nil)

	summary, err := suite.notifierService.Run(context.Background())

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), summary.EmailsSent)
	assert.Equal(suite.T(), 1, summary.TasksChecked)
}

// TestRunIsolatedSendFailure tests that one failed dispatch does not abort
// the batch and is excluded from the sent tally
func (suite *NotifierServiceTestSuite) TestRunIsolatedSendFailure() {
	alice := suite.employee("Alice", "alice@test.com")
	bob := suite.employee("Bob", "bob@test.com")

	endDate := suite.now.Add(48 * time.Hour)
	project := models.Project{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Title:     "Launch",
		Status:    models.ProjectStatusOngoing,
		EndDate:   &endDate,
	}

	suite.mockMailer.EXPECT().Configured().Return(true)
	suite.mockProjectRepo.EXPECT().
		GetOngoingEndingBetween(gomock.Any(), gomock.Any()).
		Return([]models.Project{project}, nil)
	suite.mockAssignmentRepo.EXPECT().
		GetEmployeeIDsByProject(project.ID).
		Return([]uuid.UUID{alice.ID, bob.ID}, nil)
	suite.mockEmployeeRepo.EXPECT().
		GetByIDs(gomock.Any()).
		Return([]models.Employee{alice, bob}, nil)
	suite.mockTaskRepo.EXPECT().
		GetOpenDueBetween(gomock.Any(), gomock.Any()).
		Return([]models.Task{}, nil)

	suite.mockMailer.EXPECT().
		Send(gomock.Any(), "alice@test.com", gomock.Any(), gomock.Any()).
		Return(errors.New("smtp 550"))
	suite.mockMailer.EXPECT().
		Send(gomock.Any(), "bob@test.com", gomock.Any(), gomock.Any()).
		Return(nil)

	summary, err := suite.notifierService.Run(context.Background())

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), summary.Success)
	assert.Equal(suite.T(), []string{"bob@test.com"}, summary.EmailsSent)
	assert.Equal(suite.T(), "Sent 1 deadline reminder(s)", summary.Message)
}

// TestRunProjectQueryFailure tests that a failed project selection drops the
// project contribution but still dispatches task reminders
func (suite *NotifierServiceTestSuite) TestRunProjectQueryFailure() {
	assignee := suite.employee("Dave", "dave@test.com")
	deadline := suite.now.Add(24 * time.Hour)
	task := models.Task{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		Title:      "Write report",
		Status:     models.TaskStatusPending,
		AssignedTo: &assignee.ID,
		Deadline:   &deadline,
	}

	suite.mockMailer.EXPECT().Configured().Return(true)
	suite.mockProjectRepo.EXPECT().
		GetOngoingEndingBetween(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset"))
	suite.mockTaskRepo.EXPECT().
		GetOpenDueBetween(gomock.Any(), gomock.Any()).
		Return([]models.Task{task}, nil)
	suite.mockEmployeeRepo.EXPECT().
		GetByID(assignee.ID).
		Return(&assignee, nil)
	suite.mockMailer.EXPECT().
		Send(gomock.Any(), "dave@test.com", gomock.Any(), gomock.Any()).
		Return(nil)

	summary, err := suite.notifierService.Run(context.Background())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, summary.ProjectsChecked)
	assert.Equal(suite.T(), []string{"dave@test.com"}, summary.EmailsSent)
}

// TestRunUnresolvableAssignee tests that a task whose assignee lookup fails
// is skipped without aborting the run
func (suite *NotifierServiceTestSuite) TestRunUnresolvableAssignee() {
	missing := uuid.New()
	assignee := suite.employee("Erin", "erin@test.com")
	deadline := suite.now.Add(24 * time.Hour)
	tasks := []models.Task{
		{
			BaseModel:  models.BaseModel{ID: uuid.New()},
			Title:      "Broken lookup",
			Status:     models.TaskStatusPending,
			AssignedTo: &missing,
			Deadline:   &deadline,
		},
		{
			BaseModel:  models.BaseModel{ID: uuid.New()},
			Title:      "Good lookup",
			Status:     models.TaskStatusPending,
			AssignedTo: &assignee.ID,
			Deadline:   &deadline,
		},
	}

	suite.mockMailer.EXPECT().Configured().Return(true)
	suite.mockProjectRepo.EXPECT().
		GetOngoingEndingBetween(gomock.Any(), gomock.Any()).
		Return([]models.Project{}, nil)
	suite.mockTaskRepo.EXPECT().
		GetOpenDueBetween(gomock.Any(), gomock.Any()).
		Return(tasks, nil)
	suite.mockEmployeeRepo.EXPECT().
		GetByID(missing).
		Return(nil, errors.New("record not found"))
	suite.mockEmployeeRepo.EXPECT().
		GetByID(assignee.ID).
		Return(&assignee, nil)
	suite.mockMailer.EXPECT().
		Send(gomock.Any(), "erin@test.com", gomock.Any(), gomock.Any()).
		Return(nil)

	summary, err := suite.notifierService.Run(context.Background())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"erin@test.com"}, summary.EmailsSent)
	assert.Equal(suite.T(), 2, summary.TasksChecked)
}

// TestRunNoRecipientDeduplication tests that an employee on both a due
// project and a due task receives two separate emails
func (suite *NotifierServiceTestSuite) TestRunNoRecipientDeduplication() {
	alice := suite.employee("Alice", "alice@test.com")

	endDate := suite.now.Add(48 * time.Hour)
	project := models.Project{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Title:     "Launch",
		Status:    models.ProjectStatusOngoing,
		EndDate:   &endDate,
	}
	deadline := suite.now.Add(24 * time.Hour)
	task := models.Task{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		Title:      "Ship it",
		Status:     models.TaskStatusInProgress,
		AssignedTo: &alice.ID,
		Deadline:   &deadline,
	}

	suite.mockMailer.EXPECT().Configured().Return(true)
	suite.mockProjectRepo.EXPECT().
		GetOngoingEndingBetween(gomock.Any(), gomock.Any()).
		Return([]models.Project{project}, nil)
	suite.mockAssignmentRepo.EXPECT().
		GetEmployeeIDsByProject(project.ID).
		Return([]uuid.UUID{alice.ID}, nil)
	suite.mockEmployeeRepo.EXPECT().
		GetByIDs(gomock.Any()).
		Return([]models.Employee{alice}, nil)
	suite.mockTaskRepo.EXPECT().
		GetOpenDueBetween(gomock.Any(), gomock.Any()).
		Return([]models.Task{task}, nil)
	suite.mockEmployeeRepo.EXPECT().
		GetByID(alice.ID).
		Return(&alice, nil)
	suite.mockMailer.EXPECT().
		Send(gomock.Any(), "alice@test.com", gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	summary, err := suite.notifierService.Run(context.Background())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"alice@test.com", "alice@test.com"}, summary.EmailsSent)
}

// TestNotifierServiceTestSuite runs the test suite
func TestNotifierServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotifierServiceTestSuite))
}

package service_test

import (
	"errors"
	"testing"

	"effi-track-backend/internal/mocks"
	"effi-track-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// StatsServiceTestSuite defines the test suite for StatsService
type StatsServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockEmployeeRepo *mocks.MockEmployeeRepositoryInterface
	mockProjectRepo  *mocks.MockProjectRepositoryInterface
	mockTaskRepo     *mocks.MockTaskRepositoryInterface
	mockRewardRepo   *mocks.MockRewardPointRepositoryInterface
	statsService     *service.StatsService
}

// SetupTest sets up the test suite
func (suite *StatsServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEmployeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockTaskRepo = mocks.NewMockTaskRepositoryInterface(suite.ctrl)
	suite.mockRewardRepo = mocks.NewMockRewardPointRepositoryInterface(suite.ctrl)

	suite.statsService = service.NewStatsService(suite.mockEmployeeRepo, suite.mockProjectRepo, suite.mockTaskRepo, suite.mockRewardRepo)
}

// TearDownTest cleans up after each test
func (suite *StatsServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetDashboardStats tests a full set of counters
func (suite *StatsServiceTestSuite) TestGetDashboardStats() {
	suite.mockEmployeeRepo.EXPECT().Count().Return(int64(12), nil)
	suite.mockEmployeeRepo.EXPECT().CountByStatus(gomock.Any()).Return(int64(10), nil)
	suite.mockProjectRepo.EXPECT().Count().Return(int64(4), nil)
	suite.mockProjectRepo.EXPECT().CountByStatus(gomock.Any()).Return(int64(3), nil)
	suite.mockTaskRepo.EXPECT().Count().Return(int64(40), nil)
	suite.mockTaskRepo.EXPECT().CountByStatus(gomock.Any()).Return(int64(25), nil)
	suite.mockRewardRepo.EXPECT().TotalPoints().Return(int64(730), nil)

	stats, err := suite.statsService.GetDashboardStats()

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(12), stats.EmployeeCount)
	assert.Equal(suite.T(), int64(10), stats.ActiveEmployeeCount)
	assert.Equal(suite.T(), int64(4), stats.ProjectCount)
	assert.Equal(suite.T(), int64(3), stats.OngoingProjectCount)
	assert.Equal(suite.T(), int64(40), stats.TaskCount)
	assert.Equal(suite.T(), int64(25), stats.CompletedTaskCount)
	assert.Equal(suite.T(), int64(730), stats.TotalRewardPoints)
}

// TestGetDashboardStatsReadError tests that any failed counter degrades the
// whole overview to zero values along with the error
func (suite *StatsServiceTestSuite) TestGetDashboardStatsReadError() {
	suite.mockEmployeeRepo.EXPECT().Count().Return(int64(12), nil)
	suite.mockEmployeeRepo.EXPECT().CountByStatus(gomock.Any()).Return(int64(10), nil)
	suite.mockProjectRepo.EXPECT().Count().Return(int64(0), errors.New("connection refused"))

	stats, err := suite.statsService.GetDashboardStats()

	assert.Error(suite.T(), err)
	assert.NotNil(suite.T(), stats)
	assert.Equal(suite.T(), int64(0), stats.EmployeeCount)
	assert.Equal(suite.T(), int64(0), stats.ProjectCount)
	assert.Equal(suite.T(), int64(0), stats.TotalRewardPoints)
}

// TestStatsServiceTestSuite runs the test suite
func TestStatsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}

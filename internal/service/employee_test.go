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

// EmployeeServiceTestSuite defines the test suite for EmployeeService
type EmployeeServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockEmployeeRepositoryInterface
	employeeService *service.EmployeeService
	validator       *validator.Validate
}

// SetupTest sets up the test suite
func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.employeeService = service.NewEmployeeService(suite.mockRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *EmployeeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateEmployee tests creating an employee
func (suite *EmployeeServiceTestSuite) TestCreateEmployee() {
	req := &service.CreateEmployeeRequest{
		Name:       "Alice Smith",
		Email:      "alice@test.com",
		Department: "Engineering",
	}

	suite.mockRepo.EXPECT().
		GetByEmail(req.Email).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil)

	response, err := suite.employeeService.Create(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Name, response.Name)
	assert.Equal(suite.T(), req.Email, response.Email)
	assert.Equal(suite.T(), models.EmployeeStatusActive, response.Status) // default status
}

// TestCreateEmployeeDuplicateEmail tests that a taken email is rejected
func (suite *EmployeeServiceTestSuite) TestCreateEmployeeDuplicateEmail() {
	req := &service.CreateEmployeeRequest{
		Name:  "Alice Smith",
		Email: "alice@test.com",
	}

	suite.mockRepo.EXPECT().
		GetByEmail(req.Email).
		Return(&models.Employee{Email: req.Email}, nil)

	response, err := suite.employeeService.Create(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmployeeEmailExists)
	assert.Nil(suite.T(), response)
}

// TestCreateEmployeeValidation tests request validation for employee creation
func (suite *EmployeeServiceTestSuite) TestCreateEmployeeValidation() {
	testCases := []struct {
		name    string
		request *service.CreateEmployeeRequest
	}{
		{
			name:    "Missing name",
			request: &service.CreateEmployeeRequest{Email: "x@test.com"},
		},
		{
			name:    "Missing email",
			request: &service.CreateEmployeeRequest{Name: "No Email"},
		},
		{
			name:    "Malformed email",
			request: &service.CreateEmployeeRequest{Name: "Bad Email", Email: "not-an-email"},
		},
		{
			name: "Invalid status",
			request: &service.CreateEmployeeRequest{
				Name:   "Bad Status",
				Email:  "x@test.com",
				Status: models.EmployeeStatus("fired"),
			},
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			response, err := suite.employeeService.Create(tc.request)
			assert.Error(t, err)
			assert.Nil(t, response)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

// TestUpdateEmployeeStatusFlip tests deactivating an employee through update
func (suite *EmployeeServiceTestSuite) TestUpdateEmployeeStatusFlip() {
	id := uuid.New()
	inactive := models.EmployeeStatusInactive
	req := &service.UpdateEmployeeRequest{Status: &inactive}

	suite.mockRepo.EXPECT().
		GetByID(id).
		Return(&models.Employee{
			BaseModel: models.BaseModel{ID: id},
			Name:      "Alice Smith",
			Email:     "alice@test.com",
			Status:    models.EmployeeStatusActive,
		}, nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil)

	response, err := suite.employeeService.Update(id, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.EmployeeStatusInactive, response.Status)
	assert.Equal(suite.T(), "Alice Smith", response.Name)
}

// TestUpdateEmployeeNotFound tests updating a nonexistent employee
func (suite *EmployeeServiceTestSuite) TestUpdateEmployeeNotFound() {
	id := uuid.New()
	name := "Ghost"

	suite.mockRepo.EXPECT().
		GetByID(id).
		Return(nil, gorm.ErrRecordNotFound)

	response, err := suite.employeeService.Update(id, &service.UpdateEmployeeRequest{Name: &name})

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmployeeNotFound)
	assert.Nil(suite.T(), response)
}

// TestListEmployeesStatusFilter tests listing with a status filter
func (suite *EmployeeServiceTestSuite) TestListEmployeesStatusFilter() {
	active := models.EmployeeStatusActive

	suite.mockRepo.EXPECT().
		GetByStatus(active, 20, 0).
		Return([]models.Employee{{Name: "Alice"}}, int64(1), nil)

	response, err := suite.employeeService.List(&active, 1, 20)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Employees, 1)
	assert.Equal(suite.T(), int64(1), response.Total)
}

// TestListEmployeesInvalidPagination tests pagination bounds
func (suite *EmployeeServiceTestSuite) TestListEmployeesInvalidPagination() {
	_, err := suite.employeeService.List(nil, 0, 20)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPaginationParams)

	_, err = suite.employeeService.List(nil, 1, 101)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPaginationParams)
}

// TestEmployeeServiceTestSuite runs the test suite
func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}

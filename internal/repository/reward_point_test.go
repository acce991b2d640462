package repository

import (
	"testing"

	"effi-track-backend/internal/database/models"
	"effi-track-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// RewardPointRepositoryTestSuite tests the RewardPointRepository
type RewardPointRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *RewardPointRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *RewardPointRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewRewardPointRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *RewardPointRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *RewardPointRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *RewardPointRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *RewardPointRepositoryTestSuite) createEmployee() *models.Employee {
	employee := suite.factories.Employee.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(employee).Error)
	return employee
}

func (suite *RewardPointRepositoryTestSuite) awardPoints(employeeID uuid.UUID, points int) *models.RewardPoint {
	point := suite.factories.RewardPoint.ForEmployee(employeeID)
	point.Points = points
	suite.NoError(suite.repo.Create(point))
	return point
}

// TestCreate tests appending an award to the ledger
func (suite *RewardPointRepositoryTestSuite) TestCreate() {
	employee := suite.createEmployee()

	point := suite.awardPoints(employee.ID, 25)

	var retrieved models.RewardPoint
	suite.NoError(suite.baseTestSuite.DB.First(&retrieved, "id = ?", point.ID).Error)
	suite.Equal(employee.ID, retrieved.EmployeeID)
	suite.Equal(25, retrieved.Points)
}

// TestGetByEmployeeID tests the paginated award history for one employee
func (suite *RewardPointRepositoryTestSuite) TestGetByEmployeeID() {
	alice := suite.createEmployee()
	bob := suite.createEmployee()
	suite.awardPoints(alice.ID, 10)
	suite.awardPoints(alice.ID, 15)
	suite.awardPoints(bob.ID, 40)

	points, total, err := suite.repo.GetByEmployeeID(alice.ID, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(points, 2)
	for _, p := range points {
		suite.Equal(alice.ID, p.EmployeeID)
	}
}

// TestSumPointsByEmployee tests the per-employee point totals
func (suite *RewardPointRepositoryTestSuite) TestSumPointsByEmployee() {
	alice := suite.createEmployee()
	bob := suite.createEmployee()
	suite.awardPoints(alice.ID, 10)
	suite.awardPoints(alice.ID, 30)
	suite.awardPoints(bob.ID, 5)

	totals, err := suite.repo.SumPointsByEmployee()

	suite.NoError(err)
	suite.Len(totals, 2)
	suite.Equal(int64(40), totals[alice.ID])
	suite.Equal(int64(5), totals[bob.ID])
}

// TestSumPointsByEmployeeNegativeRows tests that the sum honors negative ledger rows
func (suite *RewardPointRepositoryTestSuite) TestSumPointsByEmployeeNegativeRows() {
	alice := suite.createEmployee()
	suite.awardPoints(alice.ID, 50)
	suite.awardPoints(alice.ID, -20)

	totals, err := suite.repo.SumPointsByEmployee()

	suite.NoError(err)
	suite.Equal(int64(30), totals[alice.ID])
}

// TestTotalPoints tests the global point total
func (suite *RewardPointRepositoryTestSuite) TestTotalPoints() {
	alice := suite.createEmployee()
	bob := suite.createEmployee()
	suite.awardPoints(alice.ID, 10)
	suite.awardPoints(bob.ID, 15)

	total, err := suite.repo.TotalPoints()

	suite.NoError(err)
	suite.Equal(int64(25), total)
}

// TestTotalPointsEmptyLedger tests that an empty ledger sums to zero
func (suite *RewardPointRepositoryTestSuite) TestTotalPointsEmptyLedger() {
	total, err := suite.repo.TotalPoints()

	suite.NoError(err)
	suite.Equal(int64(0), total)
}

// TestRewardPointRepositoryTestSuite runs the test suite
func TestRewardPointRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RewardPointRepositoryTestSuite))
}

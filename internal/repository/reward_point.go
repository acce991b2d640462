package repository

import (
	"effi-track-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RewardPointRepository handles database operations for reward points.
// Award rows are append-only; the repository exposes no update or delete.
type RewardPointRepository struct {
	db *gorm.DB
}

// NewRewardPointRepository creates a new reward point repository
func NewRewardPointRepository(db *gorm.DB) *RewardPointRepository {
	return &RewardPointRepository{db: db}
}

// Create appends a new point award
func (r *RewardPointRepository) Create(point *models.RewardPoint) error {
	return r.db.Create(point).Error
}

// GetByEmployeeID retrieves an employee's awards with pagination, newest first
func (r *RewardPointRepository) GetByEmployeeID(employeeID uuid.UUID, limit, offset int) ([]models.RewardPoint, int64, error) {
	var points []models.RewardPoint
	var total int64

	query := r.db.Model(&models.RewardPoint{}).Where("employee_id = ?", employeeID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&points).Error
	if err != nil {
		return nil, 0, err
	}

	return points, total, nil
}

// SumPointsByEmployee returns total points grouped by employee
func (r *RewardPointRepository) SumPointsByEmployee() (map[uuid.UUID]int64, error) {
	type row struct {
		EmployeeID uuid.UUID
		Total      int64
	}
	var rows []row
	err := r.db.Model(&models.RewardPoint{}).
		Select("employee_id, COALESCE(SUM(points), 0) as total").
		Group("employee_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		totals[r.EmployeeID] = r.Total
	}
	return totals, nil
}

// TotalPoints returns the sum of all awarded points across all employees
func (r *RewardPointRepository) TotalPoints() (int64, error) {
	var total int64
	err := r.db.Model(&models.RewardPoint{}).
		Select("COALESCE(SUM(points), 0)").
		Scan(&total).Error
	return total, err
}

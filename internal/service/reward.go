package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"effi-track-backend/internal/database/models"
	apperrors "effi-track-backend/internal/errors"
	"effi-track-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RewardService handles business logic for the reward ledger and leaderboard
type RewardService struct {
	repo         repository.RewardPointRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	taskRepo     repository.TaskRepositoryInterface
	validator    *validator.Validate
}

// NewRewardService creates a new reward service
func NewRewardService(repo repository.RewardPointRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, taskRepo repository.TaskRepositoryInterface, validator *validator.Validate) *RewardService {
	return &RewardService{
		repo:         repo,
		employeeRepo: employeeRepo,
		taskRepo:     taskRepo,
		validator:    validator,
	}
}

// AwardPointsRequest represents the request to award points to an employee.
// The ledger column allows negative values, but awards go through this
// request and are at least 1.
type AwardPointsRequest struct {
	EmployeeID uuid.UUID `json:"employee_id" validate:"required"`
	Points     int       `json:"points" validate:"required,min=1"`
	Reason     string    `json:"reason" validate:"required,max=500"`
}

// RewardPointResponse represents a single point award
type RewardPointResponse struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	Points     int       `json:"points"`
	Reason     string    `json:"reason"`
	CreatedAt  string    `json:"created_at"`
}

// RewardPointListResponse represents a paginated list of awards
type RewardPointListResponse struct {
	Points   []RewardPointResponse `json:"points"`
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

// LeaderboardEntry is one ranked row of the leaderboard. Rank is a pure
// function of the final position, starting at 1.
type LeaderboardEntry struct {
	Rank               int       `json:"rank"`
	EmployeeID         uuid.UUID `json:"employee_id"`
	Name               string    `json:"name"`
	TotalPoints        int64     `json:"total_points"`
	CompletedTaskCount int64     `json:"completed_task_count"`
}

// Award appends a point award to the ledger. Rows are immutable once created.
func (s *RewardService) Award(req *AwardPointsRequest) (*RewardPointResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.employeeRepo.GetByID(req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to verify employee: %w", err)
	}

	point := &models.RewardPoint{
		EmployeeID: req.EmployeeID,
		Points:     req.Points,
		Reason:     req.Reason,
	}
	if err := s.repo.Create(point); err != nil {
		return nil, fmt.Errorf("failed to award points: %w", err)
	}

	return s.toResponse(point), nil
}

// ListByEmployee retrieves an employee's awards with pagination
func (s *RewardService) ListByEmployee(employeeID uuid.UUID, page, pageSize int) (*RewardPointListResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, apperrors.ErrInvalidPaginationParams
	}
	offset := (page - 1) * pageSize

	points, total, err := s.repo.GetByEmployeeID(employeeID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reward points: %w", err)
	}

	responses := make([]RewardPointResponse, 0, len(points))
	for i := range points {
		responses = append(responses, *s.toResponse(&points[i]))
	}

	return &RewardPointListResponse{
		Points:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Leaderboard folds the reward ledger and completed-task counts into ranked
// rows, one per employee. Rows are ordered by total points descending; the
// sort is stable, so employees tied on points keep their input order.
func (s *RewardService) Leaderboard() ([]LeaderboardEntry, error) {
	employees, err := s.employeeRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	pointTotals, err := s.repo.SumPointsByEmployee()
	if err != nil {
		return nil, fmt.Errorf("failed to sum reward points: %w", err)
	}

	completedCounts, err := s.taskRepo.CountCompletedByEmployee()
	if err != nil {
		return nil, fmt.Errorf("failed to count completed tasks: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(employees))
	for _, e := range employees {
		entries = append(entries, LeaderboardEntry{
			EmployeeID:         e.ID,
			Name:               e.Name,
			TotalPoints:        pointTotals[e.ID],
			CompletedTaskCount: completedCounts[e.ID],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalPoints > entries[j].TotalPoints
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}

func (s *RewardService) toResponse(point *models.RewardPoint) *RewardPointResponse {
	return &RewardPointResponse{
		ID:         point.ID,
		EmployeeID: point.EmployeeID,
		Points:     point.Points,
		Reason:     point.Reason,
		CreatedAt:  point.CreatedAt.Format(time.RFC3339),
	}
}

package service

import (
	"fmt"

	"effi-track-backend/internal/database/models"
	"effi-track-backend/internal/repository"
)

// StatsService folds entity counts into the dashboard overview
type StatsService struct {
	employeeRepo repository.EmployeeRepositoryInterface
	projectRepo  repository.ProjectRepositoryInterface
	taskRepo     repository.TaskRepositoryInterface
	rewardRepo   repository.RewardPointRepositoryInterface
}

// NewStatsService creates a new stats service
func NewStatsService(employeeRepo repository.EmployeeRepositoryInterface, projectRepo repository.ProjectRepositoryInterface, taskRepo repository.TaskRepositoryInterface, rewardRepo repository.RewardPointRepositoryInterface) *StatsService {
	return &StatsService{
		employeeRepo: employeeRepo,
		projectRepo:  projectRepo,
		taskRepo:     taskRepo,
		rewardRepo:   rewardRepo,
	}
}

// DashboardStats is the dashboard overview. Read-only; no pagination, the
// counts cover the full tables.
type DashboardStats struct {
	EmployeeCount       int64 `json:"employee_count"`
	ActiveEmployeeCount int64 `json:"active_employee_count"`
	ProjectCount        int64 `json:"project_count"`
	OngoingProjectCount int64 `json:"ongoing_project_count"`
	TaskCount           int64 `json:"task_count"`
	CompletedTaskCount  int64 `json:"completed_task_count"`
	TotalRewardPoints   int64 `json:"total_reward_points"`
}

// GetDashboardStats computes the dashboard counters. On any read error it
// returns zero-valued stats together with the error, so callers can degrade
// to an empty dashboard with a visible notification instead of a partial one.
func (s *StatsService) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.EmployeeCount, err = s.employeeRepo.Count(); err != nil {
		return &DashboardStats{}, fmt.Errorf("failed to count employees: %w", err)
	}
	if stats.ActiveEmployeeCount, err = s.employeeRepo.CountByStatus(models.EmployeeStatusActive); err != nil {
		return &DashboardStats{}, fmt.Errorf("failed to count active employees: %w", err)
	}
	if stats.ProjectCount, err = s.projectRepo.Count(); err != nil {
		return &DashboardStats{}, fmt.Errorf("failed to count projects: %w", err)
	}
	if stats.OngoingProjectCount, err = s.projectRepo.CountByStatus(models.ProjectStatusOngoing); err != nil {
		return &DashboardStats{}, fmt.Errorf("failed to count ongoing projects: %w", err)
	}
	if stats.TaskCount, err = s.taskRepo.Count(); err != nil {
		return &DashboardStats{}, fmt.Errorf("failed to count tasks: %w", err)
	}
	if stats.CompletedTaskCount, err = s.taskRepo.CountByStatus(models.TaskStatusCompleted); err != nil {
		return &DashboardStats{}, fmt.Errorf("failed to count completed tasks: %w", err)
	}
	if stats.TotalRewardPoints, err = s.rewardRepo.TotalPoints(); err != nil {
		return &DashboardStats{}, fmt.Errorf("failed to sum reward points: %w", err)
	}

	return stats, nil
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "effi-track-backend/internal/errors"
	"effi-track-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RewardHandler handles HTTP requests for the reward ledger and leaderboard
type RewardHandler struct {
	rewardService service.RewardServiceInterface
}

// NewRewardHandler creates a new reward handler
func NewRewardHandler(rewardService service.RewardServiceInterface) *RewardHandler {
	return &RewardHandler{
		rewardService: rewardService,
	}
}

// AwardPoints handles POST /rewards
// @Summary Award points to an employee
// @Description Append a point award to the ledger. Awards are immutable once created.
// @Tags rewards
// @Accept json
// @Produce json
// @Param award body service.AwardPointsRequest true "Award data"
// @Success 201 {object} service.RewardPointResponse "Successfully awarded points"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rewards [post]
func (h *RewardHandler) AwardPoints(c *gin.Context) {
	var req service.AwardPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	point, err := h.rewardService.Award(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, point)
}

// ListEmployeeRewards handles GET /employees/:id/rewards
// @Summary List an employee's point awards
// @Description Get the reward ledger rows for one employee, newest first
// @Tags rewards
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.RewardPointListResponse "Successfully retrieved awards"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /employees/{id}/rewards [get]
func (h *RewardHandler) ListEmployeeRewards(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	points, err := h.rewardService.ListByEmployee(id, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidPaginationParams) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, points)
}

// GetLeaderboard handles GET /rewards/leaderboard
// @Summary Get the reward leaderboard
// @Description Get employees ranked by total reward points, ties in input order
// @Tags rewards
// @Accept json
// @Produce json
// @Success 200 {array} service.LeaderboardEntry "Successfully retrieved leaderboard"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rewards/leaderboard [get]
func (h *RewardHandler) GetLeaderboard(c *gin.Context) {
	entries, err := h.rewardService.Leaderboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

package handlers

import (
	"net/http"

	"effi-track-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler handles HTTP requests for the dashboard overview
type StatsHandler struct {
	statsService service.StatsServiceInterface
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService service.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetDashboardStats handles GET /stats/dashboard
// @Summary Get dashboard statistics
// @Description Get entity counts and reward totals for the dashboard overview.
// @Description On a read error the stats degrade to zero values and the error is included,
// @Description so the dashboard can render empty cards with a visible notification.
// @Tags stats
// @Accept json
// @Produce json
// @Success 200 {object} service.DashboardStats "Successfully computed stats"
// @Router /stats/dashboard [get]
func (h *StatsHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.statsService.GetDashboardStats()
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"stats": stats,
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

package handlers

import (
	"net/http"

	apperrors "effi-track-backend/internal/errors"
	"effi-track-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotifierHandler exposes the operator-triggered deadline notifier
type NotifierHandler struct {
	notifierService service.NotifierServiceInterface
}

// NewNotifierHandler creates a new notifier handler
func NewNotifierHandler(notifierService service.NotifierServiceInterface) *NotifierHandler {
	return &NotifierHandler{
		notifierService: notifierService,
	}
}

// Run handles POST /notifier/run
// @Summary Send deadline reminder emails
// @Description Select projects and tasks due within the next 3 days and email every
// @Description assigned employee. Individual send failures are swallowed; a summary is
// @Description always returned unless the mail transport is unconfigured.
// @Tags notifier
// @Accept json
// @Produce json
// @Success 200 {object} service.NotifierSummary "Run summary"
// @Failure 500 {object} map[string]interface{} "Mail transport not configured or run failed"
// @Router /notifier/run [post]
func (h *NotifierHandler) Run(c *gin.Context) {
	summary, err := h.notifierService.Run(c.Request.Context())
	if err != nil {
		if apperrors.IsConfiguration(err) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to run deadline notifier"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

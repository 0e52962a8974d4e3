package api

import (
	"net/http"

	"coachdesk/athlete-platform/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler holds the dashboard dependency.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Dashboard handles GET /dashboard.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	sess, err := sessionFromContext(c)
	if err != nil {
		redirectToLogin(c)
		return
	}

	view, err := h.dashboardService.View(c.Request.Context(), sess.CoachID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":           "dashboard",
		"coachName":      sess.CoachName,
		"athletes":       view.Athletes,
		"recentActivity": view.RecentActivity,
		"message":        c.Query("message"),
	})
}

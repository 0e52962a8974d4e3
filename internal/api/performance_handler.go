package api

import (
	"errors"
	"net/http"

	"coachdesk/athlete-platform/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PerformanceHandler holds the performance log dependencies.
type PerformanceHandler struct {
	performanceService service.PerformanceService
	athleteService     service.AthleteService
}

// NewPerformanceHandler creates a new PerformanceHandler.
func NewPerformanceHandler(performanceService service.PerformanceService, athleteService service.AthleteService) *PerformanceHandler {
	return &PerformanceHandler{
		performanceService: performanceService,
		athleteService:     athleteService,
	}
}

type AddPerformanceRequest struct {
	AthleteID  string `form:"athlete_id" binding:"required"`
	MetricName string `form:"metric_name" binding:"required"`
	Value      string `form:"value" binding:"required"`
	Date       string `form:"date" binding:"required"`
	Notes      string `form:"notes"`
}

// Tracking handles GET /performance_tracking/:athlete_id.
func (h *PerformanceHandler) Tracking(c *gin.Context) {
	athleteID, err := primitive.ObjectIDFromHex(c.Param("athlete_id"))
	if err != nil {
		redirectWithError(c, "/athlete_management", "Invalid athlete id")
		return
	}

	athlete, err := h.athleteService.Get(c.Request.Context(), athleteID)
	if err != nil {
		if errors.Is(err, service.ErrAthleteNotFound) {
			redirectWithError(c, "/athlete_management", "Athlete not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to load athlete")
		return
	}

	history, err := h.performanceService.History(c.Request.Context(), athleteID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load performance history")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":        "performance_tracking",
		"athlete":     athlete,
		"performance": history,
		"error":       c.Query("error"),
		"message":     c.Query("message"),
	})
}

// AddPerformance handles POST /add_performance.
func (h *PerformanceHandler) AddPerformance(c *gin.Context) {
	sess, err := sessionFromContext(c)
	if err != nil {
		redirectToLogin(c)
		return
	}

	var req AddPerformanceRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithError(c, "/athlete_management", "Athlete, metric, value and date are required")
		return
	}

	athleteID, err := primitive.ObjectIDFromHex(req.AthleteID)
	if err != nil {
		redirectWithError(c, "/athlete_management", "Invalid athlete id")
		return
	}
	trackingPage := "/performance_tracking/" + req.AthleteID

	_, err = h.performanceService.Record(c.Request.Context(), sess.CoachID, athleteID, req.MetricName, req.Value, req.Date, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			redirectWithError(c, trackingPage, err.Error())
		case errors.Is(err, service.ErrAthleteNotFound):
			redirectWithError(c, "/athlete_management", "Athlete not found")
		default:
			redirectWithError(c, trackingPage, "Failed to record performance")
		}
		return
	}

	redirectWithMessage(c, trackingPage, "Performance data added successfully!")
}

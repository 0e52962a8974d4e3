package api

import (
	"errors"
	"net/http"

	"coachdesk/athlete-platform/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InjuryHandler holds the injury tracker dependencies.
type InjuryHandler struct {
	injuryService  service.InjuryService
	athleteService service.AthleteService
}

// NewInjuryHandler creates a new InjuryHandler.
func NewInjuryHandler(injuryService service.InjuryService, athleteService service.AthleteService) *InjuryHandler {
	return &InjuryHandler{
		injuryService:  injuryService,
		athleteService: athleteService,
	}
}

type ReportInjuryRequest struct {
	AthleteID    string `form:"athlete_id" binding:"required"`
	InjuryType   string `form:"injury_type" binding:"required"`
	BodyPart     string `form:"body_part"`
	Severity     string `form:"severity" binding:"required"`
	Description  string `form:"description"`
	RecoveryPlan string `form:"recovery_plan"`
}

// Prevention handles GET /injury_prevention.
func (h *InjuryHandler) Prevention(c *gin.Context) {
	sess, err := sessionFromContext(c)
	if err != nil {
		redirectToLogin(c)
		return
	}

	athletes, err := h.athleteService.List(c.Request.Context(), sess.CoachID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load athletes")
		return
	}
	injuries, err := h.injuryService.List(c.Request.Context(), sess.CoachID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load injuries")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":     "injury_prevention",
		"athletes": athletes,
		"injuries": injuries,
		"error":    c.Query("error"),
		"message":  c.Query("message"),
	})
}

// ReportInjury handles POST /report_injury.
func (h *InjuryHandler) ReportInjury(c *gin.Context) {
	sess, err := sessionFromContext(c)
	if err != nil {
		redirectToLogin(c)
		return
	}

	var req ReportInjuryRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithError(c, "/injury_prevention", "Athlete, injury type and severity are required")
		return
	}

	athleteID, err := primitive.ObjectIDFromHex(req.AthleteID)
	if err != nil {
		redirectWithError(c, "/injury_prevention", "Invalid athlete id")
		return
	}

	_, err = h.injuryService.Report(c.Request.Context(), sess.CoachID, athleteID, service.InjuryInput{
		InjuryType:   req.InjuryType,
		BodyPart:     req.BodyPart,
		Severity:     req.Severity,
		Description:  req.Description,
		RecoveryPlan: req.RecoveryPlan,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			redirectWithError(c, "/injury_prevention", err.Error())
		case errors.Is(err, service.ErrAthleteNotFound):
			redirectWithError(c, "/injury_prevention", "Athlete not found")
		default:
			redirectWithError(c, "/injury_prevention", "Failed to report injury")
		}
		return
	}

	redirectWithMessage(c, "/injury_prevention", "Injury reported successfully!")
}

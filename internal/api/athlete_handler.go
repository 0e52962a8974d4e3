package api

import (
	"errors"
	"net/http"

	"coachdesk/athlete-platform/internal/service"

	"github.com/gin-gonic/gin"
)

// AthleteHandler holds the athlete registry dependency.
type AthleteHandler struct {
	athleteService service.AthleteService
}

// NewAthleteHandler creates a new AthleteHandler.
func NewAthleteHandler(athleteService service.AthleteService) *AthleteHandler {
	return &AthleteHandler{athleteService: athleteService}
}

type AddAthleteRequest struct {
	Name               string `form:"name" binding:"required"`
	Age                string `form:"age" binding:"required"`
	Sport              string `form:"sport"`
	Gender             string `form:"gender"`
	Location           string `form:"location"`
	Contact            string `form:"contact"`
	Disabilities       string `form:"disabilities"`
	LanguagePreference string `form:"language_preference"`
}

// Management handles GET /athlete_management.
func (h *AthleteHandler) Management(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{
		"page":     "athlete_management",
		"athletes": athletes,
		"error":    c.Query("error"),
		"message":  c.Query("message"),
	})
}

// AddAthlete handles POST /add_athlete.
func (h *AthleteHandler) AddAthlete(c *gin.Context) {
	sess, err := sessionFromContext(c)
	if err != nil {
		redirectToLogin(c)
		return
	}

	var req AddAthleteRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithError(c, "/athlete_management", "Name and age are required")
		return
	}

	_, err = h.athleteService.Add(c.Request.Context(), sess.CoachID, service.AthleteInput{
		Name:               req.Name,
		Age:                req.Age,
		Sport:              req.Sport,
		Gender:             req.Gender,
		Location:           req.Location,
		Contact:            req.Contact,
		Disabilities:       req.Disabilities,
		LanguagePreference: req.LanguagePreference,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			redirectWithError(c, "/athlete_management", err.Error())
			return
		}
		redirectWithError(c, "/athlete_management", "Failed to add athlete")
		return
	}

	redirectWithMessage(c, "/athlete_management", "Athlete added successfully!")
}

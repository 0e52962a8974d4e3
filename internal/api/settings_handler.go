package api

import (
	"errors"
	"net/http"

	"coachdesk/athlete-platform/internal/service"

	"github.com/gin-gonic/gin"
)

// SettingsHandler holds the settings page dependencies.
type SettingsHandler struct {
	authService service.AuthService
	sessions    *service.SessionManager
	languages   map[string]string
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(authService service.AuthService, sessions *service.SessionManager, languages map[string]string) *SettingsHandler {
	return &SettingsHandler{
		authService: authService,
		sessions:    sessions,
		languages:   languages,
	}
}

type UpdateSettingsRequest struct {
	Name            string `form:"name" binding:"required"`
	Sport           string `form:"sport"`
	Language        string `form:"language"`
	CurrentPassword string `form:"current_password"`
	NewPassword     string `form:"new_password"`
}

// Settings handles GET /settings.
func (h *SettingsHandler) Settings(c *gin.Context) {
	sess, err := sessionFromContext(c)
	if err != nil {
		redirectToLogin(c)
		return
	}

	coach, err := h.authService.GetCoach(c.Request.Context(), sess.CoachID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":      "settings",
		"coach":     coach,
		"languages": h.languages,
		"error":     c.Query("error"),
		"message":   c.Query("message"),
	})
}

// UpdateSettings handles POST /settings. A wrong current password aborts
// the whole update; the session cookie is refreshed on success so the
// displayed coach name stays consistent.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	sess, err := sessionFromContext(c)
	if err != nil {
		redirectToLogin(c)
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithError(c, "/settings", "Name is required")
		return
	}

	token, err := h.authService.UpdateSettings(
		c.Request.Context(),
		sess.CoachID,
		req.Name,
		req.Sport,
		req.Language,
		req.CurrentPassword,
		req.NewPassword,
	)
	if err != nil {
		if errors.Is(err, service.ErrIncorrectPassword) {
			redirectWithError(c, "/settings", "Current password is incorrect")
			return
		}
		redirectWithError(c, "/settings", "Failed to update settings")
		return
	}

	setSessionCookie(c, token, h.sessions.Lifetime())
	redirectWithMessage(c, "/settings", "Settings updated successfully!")
}

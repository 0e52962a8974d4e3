package api

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"coachdesk/athlete-platform/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName is the cookie carrying the signed session token.
	SessionCookieName = "session"

	contextSessionKey = "session"
)

// SessionMiddleware gates every authenticated route. Requests without a
// valid session are redirected to /login before any handler logic runs, so
// an unauthenticated mutation never has a partial effect.
func SessionMiddleware(sessions *service.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			redirectToLogin(c)
			return
		}

		sess, err := sessions.Verify(token)
		if err != nil {
			redirectToLogin(c)
			return
		}

		c.Set(contextSessionKey, sess)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/login")
	c.Abort()
}

// sessionFromContext returns the session placed by SessionMiddleware.
func sessionFromContext(c *gin.Context) (*service.Session, error) {
	raw, exists := c.Get(contextSessionKey)
	if !exists {
		return nil, errors.New("session not found in context")
	}
	sess, ok := raw.(*service.Session)
	if !ok {
		return nil, errors.New("invalid session type in context")
	}
	return sess, nil
}

// setSessionCookie installs the session token as an HttpOnly cookie.
func setSessionCookie(c *gin.Context, token string, lifetime time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(lifetime.Seconds()), "/", "", false, true)
}

// clearSessionCookie expires the session cookie immediately.
func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}

// Helper to return a JSON error response and abort the request.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// redirectWithError sends the browser back to the originating form with a
// user-visible error message.
func redirectWithError(c *gin.Context, location, message string) {
	c.Redirect(http.StatusSeeOther, location+"?error="+url.QueryEscape(message))
}

// redirectWithMessage sends the browser on with a success message.
func redirectWithMessage(c *gin.Context, location, message string) {
	c.Redirect(http.StatusSeeOther, location+"?message="+url.QueryEscape(message))
}

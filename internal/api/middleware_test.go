package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coachdesk/athlete-platform/internal/domain"
	"coachdesk/athlete-platform/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// protectedRouter mounts a probe route behind the session middleware and
// reports whether the handler ran.
func protectedRouter(sessions *service.SessionManager) (*gin.Engine, *bool) {
	handlerRan := false
	router := gin.New()
	protected := router.Group("")
	protected.Use(SessionMiddleware(sessions))
	protected.POST("/probe", func(c *gin.Context) {
		handlerRan = true
		sess, err := sessionFromContext(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"coachName": sess.CoachName})
	})
	return router, &handlerRan
}

func issueCookie(t *testing.T, sessions *service.SessionManager, name string) *http.Cookie {
	t.Helper()
	token, err := sessions.Issue(&domain.Coach{ID: primitive.NewObjectID(), Name: name})
	require.NoError(t, err)
	return &http.Cookie{Name: SessionCookieName, Value: token}
}

func TestMiddlewareRedirectsWithoutSession(t *testing.T) {
	sessions := service.NewSessionManager("secret", time.Hour)
	router, handlerRan := protectedRouter(sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/probe", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.False(t, *handlerRan, "the handler must not run without a session")
}

func TestMiddlewareRejectsTamperedToken(t *testing.T) {
	sessions := service.NewSessionManager("secret", time.Hour)
	other := service.NewSessionManager("other-secret", time.Hour)
	router, handlerRan := protectedRouter(sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/probe", nil)
	req.AddCookie(issueCookie(t, other, "Mallory"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.False(t, *handlerRan)
}

func TestMiddlewareAcceptsValidSession(t *testing.T) {
	sessions := service.NewSessionManager("secret", time.Hour)
	router, handlerRan := protectedRouter(sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/probe", nil)
	req.AddCookie(issueCookie(t, sessions, "Asha"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *handlerRan)
	assert.Contains(t, w.Body.String(), "Asha")
}

func TestMiddlewareRejectsRevokedSession(t *testing.T) {
	sessions := service.NewSessionManager("secret", time.Hour)
	router, handlerRan := protectedRouter(sessions)

	cookie := issueCookie(t, sessions, "Asha")
	sessions.Revoke(cookie.Value)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/probe", nil)
	req.AddCookie(cookie)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.False(t, *handlerRan, "a revoked session must not reach the handler")
}

package api

import (
	"errors"
	"net/http"

	"coachdesk/athlete-platform/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication dependencies.
type AuthHandler struct {
	authService service.AuthService
	sessions    *service.SessionManager
	languages   map[string]string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, sessions *service.SessionManager, languages map[string]string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		languages:   languages,
	}
}

// --- Request Structs ---

type LoginRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
	Sport    string `form:"sport"`
	Language string `form:"language"`
}

// --- Handler Methods ---

// Landing handles GET /. Authenticated coaches go straight to the dashboard.
func (h *AuthHandler) Landing(c *gin.Context) {
	if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
		if _, err := h.sessions.Verify(token); err == nil {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"page":    "landing",
		"message": c.Query("message"),
	})
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":  "login",
		"error": c.Query("error"),
	})
}

// Login handles POST /login. Success sets the session cookie and redirects
// to the dashboard; failure re-routes to the login form with an error.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithError(c, "/login", "Email and password are required")
		return
	}

	token, _, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			redirectWithError(c, "/login", "Invalid email or password")
			return
		}
		redirectWithError(c, "/login", "Login failed, please try again")
		return
	}

	setSessionCookie(c, token, h.sessions.Lifetime())
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// RegisterPage handles GET /register.
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":      "register",
		"error":     c.Query("error"),
		"languages": h.languages,
	})
}

// Register handles POST /register. A new coach is logged in immediately.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithError(c, "/register", "Name, email and password are required")
		return
	}

	token, _, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Sport, req.Language)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			redirectWithError(c, "/register", "Email already registered")
			return
		}
		redirectWithError(c, "/register", "Registration failed, please try again")
		return
	}

	setSessionCookie(c, token, h.sessions.Lifetime())
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout handles GET /logout. The session token is revoked server-side, not
// just dropped from the cookie jar.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
		h.sessions.Revoke(token)
	}
	clearSessionCookie(c)
	redirectWithMessage(c, "/", "You have been logged out")
}

package api

import (
	"net/http"

	"coachdesk/athlete-platform/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the full HTTP surface. Everything below the session
// middleware requires an authenticated coach; unauthenticated requests are
// redirected to /login with no side effects.
func SetupRoutes(
	router *gin.Engine,
	sessions *service.SessionManager,
	authService service.AuthService,
	athleteService service.AthleteService,
	performanceService service.PerformanceService,
	injuryService service.InjuryService,
	videoService service.VideoService,
	dashboardService service.DashboardService,
	languages map[string]string,
) {
	authHandler := NewAuthHandler(authService, sessions, languages)
	athleteHandler := NewAthleteHandler(athleteService)
	performanceHandler := NewPerformanceHandler(performanceService, athleteService)
	injuryHandler := NewInjuryHandler(injuryService, athleteService)
	videoHandler := NewVideoHandler(videoService, athleteService)
	settingsHandler := NewSettingsHandler(authService, sessions, languages)
	dashboardHandler := NewDashboardHandler(dashboardService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Public routes.
	router.GET("/", authHandler.Landing)
	router.GET("/login", authHandler.LoginPage)
	router.POST("/login", authHandler.Login)
	router.GET("/register", authHandler.RegisterPage)
	router.POST("/register", authHandler.Register)
	router.GET("/logout", authHandler.Logout)

	// Authenticated routes.
	protected := router.Group("")
	protected.Use(SessionMiddleware(sessions))
	{
		protected.GET("/dashboard", dashboardHandler.Dashboard)

		protected.GET("/athlete_management", athleteHandler.Management)
		protected.POST("/add_athlete", athleteHandler.AddAthlete)

		protected.GET("/performance_tracking/:athlete_id", performanceHandler.Tracking)
		protected.POST("/add_performance", performanceHandler.AddPerformance)

		protected.GET("/injury_prevention", injuryHandler.Prevention)
		protected.POST("/report_injury", injuryHandler.ReportInjury)

		protected.GET("/video_analysis", videoHandler.Analysis)
		protected.POST("/upload_video", videoHandler.UploadVideo)
		protected.GET("/analyze_video/:video_id", videoHandler.AnalyzeVideo)
		protected.GET("/watch_video/:video_id", videoHandler.WatchVideo)

		protected.GET("/settings", settingsHandler.Settings)
		protected.POST("/settings", settingsHandler.UpdateSettings)
	}
}

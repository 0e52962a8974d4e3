package api

import (
	"errors"
	"net/http"

	"coachdesk/athlete-platform/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VideoHandler holds the video submission dependencies.
type VideoHandler struct {
	videoService   service.VideoService
	athleteService service.AthleteService
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(videoService service.VideoService, athleteService service.AthleteService) *VideoHandler {
	return &VideoHandler{
		videoService:   videoService,
		athleteService: athleteService,
	}
}

type UploadVideoRequest struct {
	AthleteID    string `form:"athlete_id" binding:"required"`
	AnalysisType string `form:"analysis_type"`
	Notes        string `form:"notes"`
}

// Analysis handles GET /video_analysis.
func (h *VideoHandler) Analysis(c *gin.Context) {
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
	videos, err := h.videoService.List(c.Request.Context(), sess.CoachID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load videos")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":     "video_analysis",
		"athletes": athletes,
		"videos":   videos,
		"error":    c.Query("error"),
		"message":  c.Query("message"),
	})
}

// UploadVideo handles POST /upload_video (multipart form, field "video_file").
func (h *VideoHandler) UploadVideo(c *gin.Context) {
	sess, err := sessionFromContext(c)
	if err != nil {
		redirectToLogin(c)
		return
	}

	var req UploadVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithError(c, "/video_analysis", "Athlete is required")
		return
	}
	athleteID, err := primitive.ObjectIDFromHex(req.AthleteID)
	if err != nil {
		redirectWithError(c, "/video_analysis", "Invalid athlete id")
		return
	}

	fileHeader, err := c.FormFile("video_file")
	if err != nil || fileHeader.Filename == "" {
		redirectWithError(c, "/video_analysis", "No file selected")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		redirectWithError(c, "/video_analysis", "Failed to read uploaded file")
		return
	}
	defer file.Close()

	_, err = h.videoService.Upload(
		c.Request.Context(),
		sess.CoachID,
		athleteID,
		fileHeader.Filename,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
		file,
		req.AnalysisType,
		req.Notes,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFileSelected):
			redirectWithError(c, "/video_analysis", "No file selected")
		case errors.Is(err, service.ErrInvalidInput):
			redirectWithError(c, "/video_analysis", err.Error())
		case errors.Is(err, service.ErrAthleteNotFound):
			redirectWithError(c, "/video_analysis", "Athlete not found")
		default:
			redirectWithError(c, "/video_analysis", "Failed to upload video")
		}
		return
	}

	redirectWithMessage(c, "/video_analysis", "Video uploaded successfully!")
}

// AnalyzeVideo handles GET /analyze_video/:video_id.
func (h *VideoHandler) AnalyzeVideo(c *gin.Context) {
	sess, err := sessionFromContext(c)
	if err != nil {
		redirectToLogin(c)
		return
	}

	videoID, err := primitive.ObjectIDFromHex(c.Param("video_id"))
	if err != nil {
		redirectWithError(c, "/video_analysis", "Invalid video id")
		return
	}

	_, err = h.videoService.Analyze(c.Request.Context(), sess.CoachID, videoID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVideoNotFound):
			redirectWithError(c, "/video_analysis", "Video not found")
		case errors.Is(err, service.ErrAlreadyAnalyzed):
			redirectWithError(c, "/video_analysis", "Video has already been analyzed")
		default:
			redirectWithError(c, "/video_analysis", "Failed to analyze video")
		}
		return
	}

	redirectWithMessage(c, "/video_analysis", "Video analysis completed!")
}

// WatchVideo handles GET /watch_video/:video_id by redirecting to a
// temporary download URL for the stored clip.
func (h *VideoHandler) WatchVideo(c *gin.Context) {
	videoID, err := primitive.ObjectIDFromHex(c.Param("video_id"))
	if err != nil {
		redirectWithError(c, "/video_analysis", "Invalid video id")
		return
	}

	url, err := h.videoService.DownloadURL(c.Request.Context(), videoID)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			redirectWithError(c, "/video_analysis", "Video not found")
			return
		}
		redirectWithError(c, "/video_analysis", "Failed to generate video link")
		return
	}

	c.Redirect(http.StatusFound, url)
}

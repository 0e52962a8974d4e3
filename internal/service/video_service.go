package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"coachdesk/athlete-platform/internal/config"
	"coachdesk/athlete-platform/internal/domain"
	"coachdesk/athlete-platform/internal/repository"
	"coachdesk/athlete-platform/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNoFileSelected  = errors.New("no file selected")
	ErrVideoNotFound   = errors.New("video not found")
	ErrAlreadyAnalyzed = errors.New("video has already been analyzed")
)

// VideoService handles video uploads and the analysis step.
type VideoService interface {
	// Upload persists the file bytes first and only then creates the
	// metadata record, so a failed blob write leaves no orphaned record.
	Upload(ctx context.Context, coachID, athleteID primitive.ObjectID, fileName string, size int64, contentType string, body io.Reader, analysisType, notes string) (*domain.Video, error)
	// List returns the coach's videos, most recently uploaded first.
	List(ctx context.Context, coachID primitive.ObjectID) ([]domain.Video, error)
	// Analyze runs the analyzer on a pending video and attaches the result.
	Analyze(ctx context.Context, coachID, videoID primitive.ObjectID) (*domain.Video, error)
	// DownloadURL returns a temporary URL for viewing the stored clip.
	DownloadURL(ctx context.Context, videoID primitive.ObjectID) (string, error)
}

type videoService struct {
	videoRepo   repository.VideoRepository
	athleteRepo repository.AthleteRepository
	activities  ActivityService
	blobs       storage.BlobStorage
	analyzer    VideoAnalyzer

	allowedExtensions map[string]struct{}
	maxSizeBytes      int64
	reanalyze         bool
}

// NewVideoService creates a new instance of videoService. Upload limits and
// the re-analysis policy come from configuration.
func NewVideoService(
	videoRepo repository.VideoRepository,
	athleteRepo repository.AthleteRepository,
	activities ActivityService,
	blobs storage.BlobStorage,
	analyzer VideoAnalyzer,
	uploadCfg config.UploadConfig,
	analysisCfg config.AnalysisConfig,
) VideoService {
	allowed := make(map[string]struct{}, len(uploadCfg.AllowedExtensions))
	for _, ext := range uploadCfg.AllowedExtensions {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}
	return &videoService{
		videoRepo:         videoRepo,
		athleteRepo:       athleteRepo,
		activities:        activities,
		blobs:             blobs,
		analyzer:          analyzer,
		allowedExtensions: allowed,
		maxSizeBytes:      uploadCfg.MaxSizeBytes,
		reanalyze:         analysisCfg.Reanalyze,
	}
}

func (s *videoService) Upload(ctx context.Context, coachID, athleteID primitive.ObjectID, fileName string, size int64, contentType string, body io.Reader, analysisType, notes string) (*domain.Video, error) {
	if fileName == "" || body == nil {
		return nil, ErrNoFileSelected
	}

	safeName := SanitizeFilename(fileName)
	if safeName == "" {
		return nil, fmt.Errorf("%w: unusable filename %q", ErrInvalidInput, fileName)
	}
	if len(s.allowedExtensions) > 0 {
		ext := strings.ToLower(strings.TrimPrefix(path.Ext(safeName), "."))
		if _, ok := s.allowedExtensions[ext]; !ok {
			return nil, fmt.Errorf("%w: file type %q is not allowed", ErrInvalidInput, ext)
		}
	}
	if s.maxSizeBytes > 0 && size > s.maxSizeBytes {
		return nil, fmt.Errorf("%w: file exceeds the %d byte upload limit", ErrInvalidInput, s.maxSizeBytes)
	}

	athlete, err := s.athleteRepo.GetByID(ctx, athleteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAthleteNotFound
		}
		return nil, err
	}

	// Blob first, metadata second.
	objectKey := fmt.Sprintf("videos/%s/%s_%s", coachID.Hex(), uuid.NewString(), safeName)
	if err := s.blobs.Upload(ctx, objectKey, contentType, size, body); err != nil {
		return nil, err
	}

	video := &domain.Video{
		CoachID:      coachID,
		AthleteID:    athleteID,
		FileName:     safeName,
		ObjectKey:    objectKey,
		AnalysisType: analysisType,
		Notes:        notes,
		Status:       domain.VideoPendingAnalysis,
	}

	videoID, err := s.videoRepo.Create(ctx, video)
	if err != nil {
		return nil, err
	}
	video.ID = videoID

	action := fmt.Sprintf("Uploaded video for %s: %s analysis", athlete.Name, analysisType)
	if err := s.activities.Append(ctx, coachID, action); err != nil {
		return nil, err
	}

	return video, nil
}

func (s *videoService) List(ctx context.Context, coachID primitive.ObjectID) ([]domain.Video, error) {
	return s.videoRepo.GetByCoachID(ctx, coachID)
}

func (s *videoService) Analyze(ctx context.Context, coachID, videoID primitive.ObjectID) (*domain.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	if video.Status == domain.VideoAnalyzed && !s.reanalyze {
		return nil, ErrAlreadyAnalyzed
	}

	athlete, err := s.athleteRepo.GetByID(ctx, video.AthleteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAthleteNotFound
		}
		return nil, err
	}

	result, err := s.analyzer.Analyze(ctx, video)
	if err != nil {
		return nil, err
	}

	if err := s.videoRepo.SetAnalysis(ctx, videoID, result); err != nil {
		return nil, err
	}
	video.Status = domain.VideoAnalyzed
	video.AnalysisData = result

	if err := s.activities.Append(ctx, coachID, fmt.Sprintf("Analyzed video for %s", athlete.Name)); err != nil {
		return nil, err
	}

	return video, nil
}

func (s *videoService) DownloadURL(ctx context.Context, videoID primitive.ObjectID) (string, error) {
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrVideoNotFound
		}
		return "", err
	}
	return s.blobs.GeneratePresignedDownloadURL(ctx, video.ObjectKey, storage.DefaultPresignedURLExpiry)
}

// SanitizeFilename reduces a client-supplied filename to a safe basename:
// any directory components are dropped and characters outside
// [A-Za-z0-9._-] are replaced or removed. Returns "" when nothing safe
// remains.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	// Leading dots or separators could still smuggle relative paths.
	return strings.Trim(b.String(), "._-")
}

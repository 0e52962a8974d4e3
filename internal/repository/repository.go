package repository

import (
	"context"

	"coachdesk/athlete-platform/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound       = RepositoryError("not found")
	ErrDuplicateEmail = RepositoryError("email already registered")
	ErrUpdateFailed   = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// CoachRepository defines the interface for interacting with coach accounts.
type CoachRepository interface {
	Create(ctx context.Context, coach *domain.Coach) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.Coach, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Coach, error)
	// UpdateProfile overwrites name, sport and language. passwordHash is
	// only overwritten when non-empty.
	UpdateProfile(ctx context.Context, id primitive.ObjectID, name, sport, language, passwordHash string) error
}

// AthleteRepository defines the interface for interacting with athlete records.
type AthleteRepository interface {
	Create(ctx context.Context, athlete *domain.Athlete) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error)
	GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.Athlete, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status domain.AthleteStatus) error
}

// PerformanceRepository stores append-only performance records.
type PerformanceRepository interface {
	Create(ctx context.Context, record *domain.PerformanceRecord) (primitive.ObjectID, error)
	// GetByAthleteID returns records sorted by date, most recent first.
	GetByAthleteID(ctx context.Context, athleteID primitive.ObjectID) ([]domain.PerformanceRecord, error)
}

// InjuryRepository stores append-only injury reports.
type InjuryRepository interface {
	Create(ctx context.Context, report *domain.InjuryReport) (primitive.ObjectID, error)
	// GetByCoachID returns reports sorted by dateReported, most recent first.
	GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.InjuryReport, error)
}

// VideoRepository defines the interface for interacting with video metadata.
type VideoRepository interface {
	Create(ctx context.Context, video *domain.Video) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Video, error)
	// GetByCoachID returns videos sorted by uploadDate, most recent first.
	GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.Video, error)
	SetAnalysis(ctx context.Context, id primitive.ObjectID, result *domain.AnalysisResult) error
}

// ActivityRepository stores the append-only audit trail.
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) (primitive.ObjectID, error)
	// GetRecentByCoachID returns up to limit entries, newest first.
	GetRecentByCoachID(ctx context.Context, coachID primitive.ObjectID, limit int64) ([]domain.Activity, error)
}

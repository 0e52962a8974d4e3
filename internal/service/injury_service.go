package service

import (
	"context"
	"errors"
	"fmt"

	"coachdesk/athlete-platform/internal/domain"
	"coachdesk/athlete-platform/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InjuryInput carries the report-injury form fields.
type InjuryInput struct {
	InjuryType   string
	BodyPart     string
	Severity     string
	Description  string
	RecoveryPlan string
}

// InjuryService files injury reports and applies the athlete status rule.
type InjuryService interface {
	Report(ctx context.Context, coachID, athleteID primitive.ObjectID, input InjuryInput) (*domain.InjuryReport, error)
	// List returns the coach's reports, most recently reported first.
	List(ctx context.Context, coachID primitive.ObjectID) ([]domain.InjuryReport, error)
}

type injuryService struct {
	injuryRepo  repository.InjuryRepository
	athleteRepo repository.AthleteRepository
	activities  ActivityService
}

// NewInjuryService creates a new instance of injuryService.
func NewInjuryService(injuryRepo repository.InjuryRepository, athleteRepo repository.AthleteRepository, activities ActivityService) InjuryService {
	return &injuryService{
		injuryRepo:  injuryRepo,
		athleteRepo: athleteRepo,
		activities:  activities,
	}
}

// Report files an injury for the athlete. A severe or critical report also
// flips the athlete's status to injured. The two writes are separate
// single-document operations, injury first; a crash in between leaves the
// report filed with the status flip still pending, never the reverse.
func (s *injuryService) Report(ctx context.Context, coachID, athleteID primitive.ObjectID, input InjuryInput) (*domain.InjuryReport, error) {
	severity := domain.InjurySeverity(input.Severity)
	if !severity.IsValid() {
		return nil, fmt.Errorf("%w: unknown severity %q", ErrInvalidInput, input.Severity)
	}

	athlete, err := s.athleteRepo.GetByID(ctx, athleteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAthleteNotFound
		}
		return nil, err
	}

	report := &domain.InjuryReport{
		CoachID:      coachID,
		AthleteID:    athleteID,
		InjuryType:   input.InjuryType,
		BodyPart:     input.BodyPart,
		Severity:     severity,
		Description:  input.Description,
		RecoveryPlan: input.RecoveryPlan,
		Status:       domain.InjuryActive,
	}

	reportID, err := s.injuryRepo.Create(ctx, report)
	if err != nil {
		return nil, err
	}
	report.ID = reportID

	if severity.SidelinesAthlete() {
		if err := s.athleteRepo.SetStatus(ctx, athleteID, domain.AthleteInjured); err != nil {
			return nil, err
		}
	}

	action := fmt.Sprintf("Reported injury for %s: %s", athlete.Name, report.InjuryType)
	if err := s.activities.Append(ctx, coachID, action); err != nil {
		return nil, err
	}

	return report, nil
}

func (s *injuryService) List(ctx context.Context, coachID primitive.ObjectID) ([]domain.InjuryReport, error) {
	return s.injuryRepo.GetByCoachID(ctx, coachID)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"coachdesk/athlete-platform/internal/domain"
	"coachdesk/athlete-platform/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dates on performance records are calendar dates in this fixed format.
const performanceDateLayout = "2006-01-02"

// PerformanceService records and retrieves per-athlete metrics. Records are
// append-only; there is no update or delete.
type PerformanceService interface {
	// Record validates value (float) and date (YYYY-MM-DD); on any parse
	// failure nothing is written.
	Record(ctx context.Context, coachID, athleteID primitive.ObjectID, metricName, value, date, notes string) (*domain.PerformanceRecord, error)
	// History returns the athlete's records, most recent date first.
	History(ctx context.Context, athleteID primitive.ObjectID) ([]domain.PerformanceRecord, error)
}

type performanceService struct {
	performanceRepo repository.PerformanceRepository
	athleteRepo     repository.AthleteRepository
	activities      ActivityService
}

// NewPerformanceService creates a new instance of performanceService.
func NewPerformanceService(performanceRepo repository.PerformanceRepository, athleteRepo repository.AthleteRepository, activities ActivityService) PerformanceService {
	return &performanceService{
		performanceRepo: performanceRepo,
		athleteRepo:     athleteRepo,
		activities:      activities,
	}
}

func (s *performanceService) Record(ctx context.Context, coachID, athleteID primitive.ObjectID, metricName, value, date, notes string) (*domain.PerformanceRecord, error) {
	if metricName == "" {
		return nil, fmt.Errorf("%w: metric name is required", ErrInvalidInput)
	}
	parsedValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: value must be a number", ErrInvalidInput)
	}
	parsedDate, err := time.Parse(performanceDateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	athlete, err := s.athleteRepo.GetByID(ctx, athleteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAthleteNotFound
		}
		return nil, err
	}

	record := &domain.PerformanceRecord{
		AthleteID:  athleteID,
		MetricName: metricName,
		Value:      parsedValue,
		Date:       parsedDate,
		Notes:      notes,
	}

	recordID, err := s.performanceRepo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	record.ID = recordID

	action := fmt.Sprintf("Recorded performance for %s: %s = %s", athlete.Name, metricName, value)
	if err := s.activities.Append(ctx, coachID, action); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *performanceService) History(ctx context.Context, athleteID primitive.ObjectID) ([]domain.PerformanceRecord, error) {
	return s.performanceRepo.GetByAthleteID(ctx, athleteID)
}

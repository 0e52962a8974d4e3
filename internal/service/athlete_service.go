package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"coachdesk/athlete-platform/internal/domain"
	"coachdesk/athlete-platform/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrAthleteNotFound = errors.New("athlete not found")
)

// AthleteInput carries the add-athlete form fields. Age arrives as the raw
// form string and is validated here.
type AthleteInput struct {
	Name               string
	Age                string
	Sport              string
	Gender             string
	Location           string
	Contact            string
	Disabilities       string
	LanguagePreference string
}

// AthleteService manages the coach-scoped athlete registry.
type AthleteService interface {
	Add(ctx context.Context, coachID primitive.ObjectID, input AthleteInput) (*domain.Athlete, error)
	// List returns only athletes belonging to coachID, never another coach's.
	List(ctx context.Context, coachID primitive.ObjectID) ([]domain.Athlete, error)
	Get(ctx context.Context, athleteID primitive.ObjectID) (*domain.Athlete, error)
}

type athleteService struct {
	athleteRepo repository.AthleteRepository
	activities  ActivityService
}

// NewAthleteService creates a new instance of athleteService.
func NewAthleteService(athleteRepo repository.AthleteRepository, activities ActivityService) AthleteService {
	return &athleteService{
		athleteRepo: athleteRepo,
		activities:  activities,
	}
}

// Add registers a new athlete for the coach. New athletes always start out
// active.
func (s *athleteService) Add(ctx context.Context, coachID primitive.ObjectID, input AthleteInput) (*domain.Athlete, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: athlete name is required", ErrInvalidInput)
	}
	age, err := strconv.Atoi(input.Age)
	if err != nil || age < 0 {
		return nil, fmt.Errorf("%w: age must be a non-negative integer", ErrInvalidInput)
	}
	if input.LanguagePreference == "" {
		input.LanguagePreference = "en"
	}

	athlete := &domain.Athlete{
		CoachID:            coachID,
		Name:               input.Name,
		Age:                age,
		Sport:              input.Sport,
		Gender:             input.Gender,
		Location:           input.Location,
		Contact:            input.Contact,
		Disabilities:       input.Disabilities,
		LanguagePreference: input.LanguagePreference,
		Status:             domain.AthleteActive,
	}

	athleteID, err := s.athleteRepo.Create(ctx, athlete)
	if err != nil {
		return nil, err
	}
	athlete.ID = athleteID

	if err := s.activities.Append(ctx, coachID, fmt.Sprintf("Added athlete: %s", athlete.Name)); err != nil {
		return nil, err
	}

	return athlete, nil
}

// List returns the athletes belonging to the coach.
func (s *athleteService) List(ctx context.Context, coachID primitive.ObjectID) ([]domain.Athlete, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID cannot be nil")
	}
	return s.athleteRepo.GetByCoachID(ctx, coachID)
}

// Get fetches a single athlete by id.
func (s *athleteService) Get(ctx context.Context, athleteID primitive.ObjectID) (*domain.Athlete, error) {
	athlete, err := s.athleteRepo.GetByID(ctx, athleteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAthleteNotFound
		}
		return nil, err
	}
	return athlete, nil
}

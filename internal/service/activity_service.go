package service

import (
	"context"

	"coachdesk/athlete-platform/internal/domain"
	"coachdesk/athlete-platform/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityService maintains the append-only audit trail of coach actions.
// Every mutating operation in the other services appends exactly one entry.
type ActivityService interface {
	Append(ctx context.Context, coachID primitive.ObjectID, action string) error
	Recent(ctx context.Context, coachID primitive.ObjectID, limit int64) ([]domain.Activity, error)
}

type activityService struct {
	activityRepo repository.ActivityRepository
}

// NewActivityService creates a new instance of activityService.
func NewActivityService(activityRepo repository.ActivityRepository) ActivityService {
	return &activityService{activityRepo: activityRepo}
}

func (s *activityService) Append(ctx context.Context, coachID primitive.ObjectID, action string) error {
	_, err := s.activityRepo.Create(ctx, &domain.Activity{
		CoachID: coachID,
		Action:  action,
	})
	return err
}

func (s *activityService) Recent(ctx context.Context, coachID primitive.ObjectID, limit int64) ([]domain.Activity, error) {
	return s.activityRepo.GetRecentByCoachID(ctx, coachID, limit)
}

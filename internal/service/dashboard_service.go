package service

import (
	"context"

	"coachdesk/athlete-platform/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// How many audit entries the dashboard shows.
const dashboardActivityLimit = 5

// DashboardView is the read-only composition backing the dashboard page.
type DashboardView struct {
	Athletes       []domain.Athlete  `json:"athletes"`
	RecentActivity []domain.Activity `json:"recentActivity"`
}

// DashboardService composes the athlete registry with the activity log.
// It performs no writes.
type DashboardService interface {
	View(ctx context.Context, coachID primitive.ObjectID) (*DashboardView, error)
}

type dashboardService struct {
	athletes   AthleteService
	activities ActivityService
}

// NewDashboardService creates a new instance of dashboardService.
func NewDashboardService(athletes AthleteService, activities ActivityService) DashboardService {
	return &dashboardService{
		athletes:   athletes,
		activities: activities,
	}
}

func (s *dashboardService) View(ctx context.Context, coachID primitive.ObjectID) (*DashboardView, error) {
	athletes, err := s.athletes.List(ctx, coachID)
	if err != nil {
		return nil, err
	}
	recent, err := s.activities.Recent(ctx, coachID, dashboardActivityLimit)
	if err != nil {
		return nil, err
	}
	return &DashboardView{
		Athletes:       athletes,
		RecentActivity: recent,
	}, nil
}

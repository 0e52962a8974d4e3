package service

import (
	"context"
	"testing"

	"coachdesk/athlete-platform/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestAthleteService() (AthleteService, *fakeAthleteRepo, *fakeActivityRepo) {
	athleteRepo := newFakeAthleteRepo()
	activityRepo := newFakeActivityRepo()
	svc := NewAthleteService(athleteRepo, NewActivityService(activityRepo))
	return svc, athleteRepo, activityRepo
}

func validAthleteInput(name string) AthleteInput {
	return AthleteInput{
		Name:   name,
		Age:    "16",
		Sport:  "Track",
		Gender: "male",
	}
}

func TestAddAthleteStartsActive(t *testing.T) {
	svc, _, activityRepo := newTestAthleteService()
	coachID := primitive.NewObjectID()

	athlete, err := svc.Add(context.Background(), coachID, validAthleteInput("Ravi"))
	require.NoError(t, err)

	assert.Equal(t, domain.AthleteActive, athlete.Status)
	assert.Equal(t, 16, athlete.Age)
	assert.Equal(t, coachID, athlete.CoachID)
	assert.Equal(t, []string{"Added athlete: Ravi"}, activityRepo.actionsFor(coachID))
}

func TestAddAthleteRejectsNonNumericAge(t *testing.T) {
	svc, athleteRepo, activityRepo := newTestAthleteService()
	coachID := primitive.NewObjectID()

	input := validAthleteInput("Ravi")
	input.Age = "sixteen"

	_, err := svc.Add(context.Background(), coachID, input)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, athleteRepo.athletes, "no record may be written on invalid input")
	assert.Empty(t, activityRepo.actionsFor(coachID))
}

func TestAddAthleteRejectsNegativeAge(t *testing.T) {
	svc, athleteRepo, _ := newTestAthleteService()

	input := validAthleteInput("Ravi")
	input.Age = "-3"

	_, err := svc.Add(context.Background(), primitive.NewObjectID(), input)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, athleteRepo.athletes)
}

func TestListIsScopedToCoach(t *testing.T) {
	svc, _, _ := newTestAthleteService()
	coachA := primitive.NewObjectID()
	coachB := primitive.NewObjectID()

	_, err := svc.Add(context.Background(), coachA, validAthleteInput("Ravi"))
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), coachA, validAthleteInput("Meera"))
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), coachB, validAthleteInput("Arjun"))
	require.NoError(t, err)

	athletes, err := svc.List(context.Background(), coachA)
	require.NoError(t, err)
	assert.Len(t, athletes, 2)
	for _, athlete := range athletes {
		assert.Equal(t, coachA, athlete.CoachID, "list must never return another coach's athlete")
	}
}

func TestGetUnknownAthlete(t *testing.T) {
	svc, _, _ := newTestAthleteService()

	_, err := svc.Get(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrAthleteNotFound)
}

package service

import (
	"context"
	"testing"

	"coachdesk/athlete-platform/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type injuryFixture struct {
	svc          InjuryService
	athleteRepo  *fakeAthleteRepo
	injuryRepo   *fakeInjuryRepo
	activityRepo *fakeActivityRepo
	coachID      primitive.ObjectID
	athleteID    primitive.ObjectID
}

func newInjuryFixture(t *testing.T) *injuryFixture {
	t.Helper()
	athleteRepo := newFakeAthleteRepo()
	injuryRepo := newFakeInjuryRepo()
	activityRepo := newFakeActivityRepo()

	coachID := primitive.NewObjectID()
	athleteID, err := athleteRepo.Create(context.Background(), &domain.Athlete{
		CoachID: coachID,
		Name:    "Ravi",
		Age:     16,
		Status:  domain.AthleteActive,
	})
	require.NoError(t, err)

	return &injuryFixture{
		svc:          NewInjuryService(injuryRepo, athleteRepo, NewActivityService(activityRepo)),
		athleteRepo:  athleteRepo,
		injuryRepo:   injuryRepo,
		activityRepo: activityRepo,
		coachID:      coachID,
		athleteID:    athleteID,
	}
}

func sprainInput(severity string) InjuryInput {
	return InjuryInput{
		InjuryType:   "Sprain",
		BodyPart:     "Ankle",
		Severity:     severity,
		Description:  "Rolled ankle on landing",
		RecoveryPlan: "Rest and ice",
	}
}

func TestCriticalInjurySidelinesAthlete(t *testing.T) {
	f := newInjuryFixture(t)

	report, err := f.svc.Report(context.Background(), f.coachID, f.athleteID, sprainInput("critical"))
	require.NoError(t, err)
	assert.Equal(t, domain.InjuryActive, report.Status)

	athlete, err := f.athleteRepo.GetByID(context.Background(), f.athleteID)
	require.NoError(t, err)
	assert.Equal(t, domain.AthleteInjured, athlete.Status)
}

func TestSevereInjurySidelinesAthlete(t *testing.T) {
	f := newInjuryFixture(t)

	_, err := f.svc.Report(context.Background(), f.coachID, f.athleteID, sprainInput("severe"))
	require.NoError(t, err)

	athlete, err := f.athleteRepo.GetByID(context.Background(), f.athleteID)
	require.NoError(t, err)
	assert.Equal(t, domain.AthleteInjured, athlete.Status)
}

func TestMinorInjuryLeavesStatusAlone(t *testing.T) {
	f := newInjuryFixture(t)

	for _, severity := range []string{"minor", "moderate"} {
		_, err := f.svc.Report(context.Background(), f.coachID, f.athleteID, sprainInput(severity))
		require.NoError(t, err)

		athlete, err := f.athleteRepo.GetByID(context.Background(), f.athleteID)
		require.NoError(t, err)
		assert.Equal(t, domain.AthleteActive, athlete.Status, "severity %q must not change status", severity)
	}
}

func TestUnknownSeverityRejected(t *testing.T) {
	f := newInjuryFixture(t)

	_, err := f.svc.Report(context.Background(), f.coachID, f.athleteID, sprainInput("catastrophic"))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, f.injuryRepo.reports, "no report may be filed for an unknown severity")
}

func TestReportUnknownAthlete(t *testing.T) {
	f := newInjuryFixture(t)

	_, err := f.svc.Report(context.Background(), f.coachID, primitive.NewObjectID(), sprainInput("minor"))
	assert.ErrorIs(t, err, ErrAthleteNotFound)
	assert.Empty(t, f.injuryRepo.reports)
}

func TestReportEmitsActivity(t *testing.T) {
	f := newInjuryFixture(t)

	_, err := f.svc.Report(context.Background(), f.coachID, f.athleteID, sprainInput("minor"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Reported injury for Ravi: Sprain"}, f.activityRepo.actionsFor(f.coachID))
}

func TestSeverityStatusRule(t *testing.T) {
	assert.False(t, domain.SeverityMinor.SidelinesAthlete())
	assert.False(t, domain.SeverityModerate.SidelinesAthlete())
	assert.True(t, domain.SeveritySevere.SidelinesAthlete())
	assert.True(t, domain.SeverityCritical.SidelinesAthlete())
}

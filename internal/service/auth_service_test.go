package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService() (AuthService, *fakeCoachRepo, *SessionManager) {
	coachRepo := newFakeCoachRepo()
	sessions := NewSessionManager("test-secret", 2*time.Hour)
	return NewAuthService(coachRepo, sessions), coachRepo, sessions
}

func TestRegisterIssuesSession(t *testing.T) {
	svc, _, sessions := newTestAuthService()

	token, coach, err := svc.Register(context.Background(), "Asha", "asha@x.com", "pw123", "Track", "en")
	require.NoError(t, err)
	require.NotNil(t, coach)
	assert.Empty(t, coach.PasswordHash, "password hash must not leak out of the service")

	sess, err := sessions.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, coach.ID, sess.CoachID)
	assert.Equal(t, "Asha", sess.CoachName)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, coachRepo, _ := newTestAuthService()

	_, _, err := svc.Register(context.Background(), "Asha", "asha@x.com", "pw123", "Track", "en")
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "Imposter", "asha@x.com", "other", "Track", "en")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, coachRepo.coaches, 1, "a second coach record must never be created")
}

func TestRegisterNeverStoresClearPassword(t *testing.T) {
	svc, coachRepo, _ := newTestAuthService()

	_, coach, err := svc.Register(context.Background(), "Asha", "asha@x.com", "pw123", "Track", "en")
	require.NoError(t, err)

	stored := coachRepo.coaches[coach.ID]
	assert.NotEqual(t, "pw123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw123")))
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, _, err := svc.Register(context.Background(), "Asha", "asha@x.com", "pw123", "Track", "en")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "asha@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, _, err := svc.Login(context.Background(), "nobody@x.com", "pw123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginSuccess(t *testing.T) {
	svc, _, sessions := newTestAuthService()

	_, registered, err := svc.Register(context.Background(), "Asha", "asha@x.com", "pw123", "Track", "en")
	require.NoError(t, err)

	token, coach, err := svc.Login(context.Background(), "asha@x.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, coach.ID)

	sess, err := sessions.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, sess.CoachID)
}

func TestUpdateSettingsWrongCurrentPassword(t *testing.T) {
	svc, coachRepo, _ := newTestAuthService()

	_, coach, err := svc.Register(context.Background(), "Asha", "asha@x.com", "pw123", "Track", "en")
	require.NoError(t, err)
	hashBefore := coachRepo.coaches[coach.ID].PasswordHash

	_, err = svc.UpdateSettings(context.Background(), coach.ID, "Renamed", "Swimming", "hi", "wrong", "newpw")
	assert.ErrorIs(t, err, ErrIncorrectPassword)

	stored := coachRepo.coaches[coach.ID]
	assert.Equal(t, hashBefore, stored.PasswordHash, "stored hash must not change")
	assert.Equal(t, "Asha", stored.Name, "a failed password check aborts the whole update")
}

func TestUpdateSettingsChangesPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, coach, err := svc.Register(context.Background(), "Asha", "asha@x.com", "pw123", "Track", "en")
	require.NoError(t, err)

	_, err = svc.UpdateSettings(context.Background(), coach.ID, "Asha", "Track", "en", "pw123", "newpw")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "asha@x.com", "pw123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(context.Background(), "asha@x.com", "newpw")
	assert.NoError(t, err)
}

func TestUpdateSettingsRefreshesSessionName(t *testing.T) {
	svc, _, sessions := newTestAuthService()

	_, coach, err := svc.Register(context.Background(), "Asha", "asha@x.com", "pw123", "Track", "en")
	require.NoError(t, err)

	token, err := svc.UpdateSettings(context.Background(), coach.ID, "Asha R.", "Track", "en", "", "")
	require.NoError(t, err)

	sess, err := sessions.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "Asha R.", sess.CoachName)
}

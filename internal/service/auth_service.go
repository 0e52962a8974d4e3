package service

import (
	"context"
	"errors"

	"coachdesk/athlete-platform/internal/domain"
	"coachdesk/athlete-platform/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrIncorrectPassword  = errors.New("current password is incorrect")
	ErrCoachNotFound      = errors.New("coach not found")
	ErrHashingFailed      = errors.New("failed to hash password")
	ErrTokenGeneration    = errors.New("failed to generate session token")
)

// AuthService covers coach accounts: registration, login, and the settings
// page's profile/password update. Login and registration both establish a
// session.
type AuthService interface {
	Register(ctx context.Context, name, email, password, sport, language string) (token string, coach *domain.Coach, err error)
	Login(ctx context.Context, email, password string) (token string, coach *domain.Coach, err error)
	GetCoach(ctx context.Context, coachID primitive.ObjectID) (*domain.Coach, error)
	// UpdateSettings overwrites the coach's profile and, when both password
	// fields are supplied, the password hash. It returns a fresh session
	// token so the session's display name stays current.
	UpdateSettings(ctx context.Context, coachID primitive.ObjectID, name, sport, language, currentPassword, newPassword string) (token string, err error)
}

// authService implements the AuthService interface.
type authService struct {
	coachRepo repository.CoachRepository
	sessions  *SessionManager
}

// NewAuthService creates a new instance of authService.
func NewAuthService(coachRepo repository.CoachRepository, sessions *SessionManager) AuthService {
	return &authService{
		coachRepo: coachRepo,
		sessions:  sessions,
	}
}

// Register handles new coach registration. The new coach is logged in
// immediately, so a session token is issued alongside the account.
func (s *authService) Register(ctx context.Context, name, email, password, sport, language string) (string, *domain.Coach, error) {
	if name == "" || email == "" || password == "" {
		return "", nil, errors.New("name, email and password cannot be empty")
	}
	if language == "" {
		language = "en"
	}

	// Check if the email is already taken. The unique index on email covers
	// the race between this check and the insert.
	_, err := s.coachRepo.GetByEmail(ctx, email)
	if err == nil {
		return "", nil, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, ErrHashingFailed
	}

	coach := &domain.Coach{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Sport:        sport,
		Language:     language,
	}

	coachID, err := s.coachRepo.Create(ctx, coach)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return "", nil, ErrEmailTaken
		}
		return "", nil, err
	}
	coach.ID = coachID

	token, err := s.sessions.Issue(coach)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	coach.PasswordHash = ""
	return token, coach, nil
}

// Login authenticates a coach and issues a session token.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.Coach, error) {
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	coach, err := s.coachRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(coach.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(coach)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	coach.PasswordHash = ""
	return token, coach, nil
}

// GetCoach fetches a coach account for the settings view.
func (s *authService) GetCoach(ctx context.Context, coachID primitive.ObjectID) (*domain.Coach, error) {
	coach, err := s.coachRepo.GetByID(ctx, coachID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCoachNotFound
		}
		return nil, err
	}
	coach.PasswordHash = ""
	return coach, nil
}

// UpdateSettings applies the settings form. An incorrect current password
// aborts the whole update; nothing is written in that case, the profile
// fields included.
func (s *authService) UpdateSettings(ctx context.Context, coachID primitive.ObjectID, name, sport, language, currentPassword, newPassword string) (string, error) {
	coach, err := s.coachRepo.GetByID(ctx, coachID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrCoachNotFound
		}
		return "", err
	}

	newHash := ""
	if currentPassword != "" && newPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(coach.PasswordHash), []byte(currentPassword)); err != nil {
			return "", ErrIncorrectPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return "", ErrHashingFailed
		}
		newHash = string(hashed)
	}

	if err := s.coachRepo.UpdateProfile(ctx, coachID, name, sport, language, newHash); err != nil {
		return "", err
	}

	// Re-issue the session so the coach name carried in it matches the
	// updated profile.
	coach.Name = name
	token, err := s.sessions.Issue(coach)
	if err != nil {
		return "", ErrTokenGeneration
	}
	return token, nil
}

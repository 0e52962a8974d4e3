package service

import (
	"errors"
	"fmt"
	"time"

	"coachdesk/athlete-platform/internal/domain"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrSessionInvalid = errors.New("session is missing, invalid or expired")
)

// Session is a time-bounded proof of a successful login. Its contents were
// verified against the stored credentials when the token was issued and are
// protected by the token signature after that.
type Session struct {
	CoachID   primitive.ObjectID
	CoachName string
}

// sessionClaims defines the structure of the session token payload.
type sessionClaims struct {
	CoachName string `json:"name"`
	jwt.RegisteredClaims
}

// SessionManager issues and verifies signed session tokens. Tokens carry an
// absolute expiry; logout revokes the token id server-side so invalidation
// takes effect before the expiry is reached.
type SessionManager struct {
	secret   []byte
	lifetime time.Duration
	revoked  *cache.Cache
}

// NewSessionManager creates a SessionManager signing with secret. Tokens
// expire lifetime after issuance.
func NewSessionManager(secret string, lifetime time.Duration) *SessionManager {
	if secret == "" {
		panic("session secret cannot be empty") // Critical configuration
	}
	if lifetime <= 0 {
		lifetime = 2 * time.Hour
	}
	return &SessionManager{
		secret:   []byte(secret),
		lifetime: lifetime,
		// Revoked token ids only need to outlive the tokens themselves.
		revoked: cache.New(lifetime, 10*time.Minute),
	}
}

// Lifetime returns the configured absolute session lifetime.
func (m *SessionManager) Lifetime() time.Duration {
	return m.lifetime
}

// Issue creates a signed session token for the given coach.
func (m *SessionManager) Issue(coach *domain.Coach) (string, error) {
	now := time.Now()
	claims := &sessionClaims{
		CoachName: coach.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   coach.ID.Hex(),
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "athlete-platform",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses and validates a session token. It fails for malformed,
// tampered, expired and revoked tokens alike.
func (m *SessionManager) Verify(tokenString string) (*Session, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		return nil, ErrSessionInvalid
	}

	if _, gone := m.revoked.Get(claims.ID); gone {
		return nil, ErrSessionInvalid
	}

	coachID, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return nil, ErrSessionInvalid
	}

	return &Session{
		CoachID:   coachID,
		CoachName: claims.CoachName,
	}, nil
}

// Revoke invalidates a token immediately. The token id is remembered until
// the token would have expired on its own. Invalid tokens are ignored; they
// never verified in the first place.
func (m *SessionManager) Revoke(tokenString string) {
	claims, err := m.parse(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return
	}
	m.revoked.Set(claims.ID, struct{}{}, time.Until(claims.ExpiresAt.Time))
}

func (m *SessionManager) parse(tokenString string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" || claims.ID == "" {
		return nil, ErrSessionInvalid
	}
	return claims, nil
}

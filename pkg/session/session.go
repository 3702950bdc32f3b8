package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is an anonymous browser session. Its ID keys everything the
// application scopes to the session, such as the entitlement state.
type Session struct {
	ID             uuid.UUID
	Token          string
	CreatedAt      time.Time
	LastActivityAt time.Time
	ExpiresAt      time.Time
}

// New creates a session valid for ttl from now.
func New(token string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:             uuid.New(),
		Token:          token,
		CreatedAt:      now,
		LastActivityAt: now,
		ExpiresAt:      now.Add(ttl),
	}
}

func (s *Session) IsExpired() bool {
	return s != nil && time.Now().After(s.ExpiresAt)
}

// Touch extends the session by ttl from now.
func (s *Session) Touch(ttl time.Duration) {
	now := time.Now()
	s.LastActivityAt = now
	s.ExpiresAt = now.Add(ttl)
}

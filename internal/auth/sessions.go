package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionCookie names the HTTP cookie carrying the session token.
const SessionCookie = "session_token"

// Session represents one authenticated browser session.
type Session struct {
	Token    string
	UserID   int64
	Username string
	Role     string
	LoginAt  time.Time
}

// SessionStore keeps sessions in memory, keyed by token.
// Sessions do not survive a process restart.
type SessionStore struct {
	clock Clock

	mu       sync.RWMutex
	sessions map[string]Session
}

// NewSessionStore creates an in-memory session store.
func NewSessionStore(clock Clock) *SessionStore {
	if clock == nil {
		clock = RealClock{}
	}
	return &SessionStore{
		clock:    clock,
		sessions: make(map[string]Session),
	}
}

// Create registers a new session and returns it.
func (s *SessionStore) Create(userID int64, username, role string) Session {
	sess := Session{
		Token:    uuid.NewString(),
		UserID:   userID,
		Username: username,
		Role:     role,
		LoginAt:  s.clock.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = sess
	return sess
}

// Get returns the session for the token, if present.
func (s *SessionStore) Get(token string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[token]
	return sess, ok
}

// Delete removes the session for the token.
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

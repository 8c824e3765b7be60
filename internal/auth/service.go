package auth

import (
	"context"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"

	"parcel-tracking-service/internal/apperr"
	"parcel-tracking-service/internal/logx"
)

const (
	maxUsernameLen = 50
	maxPasswordLen = 100
)

// reUsername restricts usernames to a safe character set.
var reUsername = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// dummyHash keeps the credential check constant-work when the username
// is unknown: a bcrypt comparison runs either way.
var dummyHash = mustHash("placeholder-password")

func mustHash(password string) []byte {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return b
}

// Service authenticates operators and enforces the lockout and
// session-expiry policies of the management console.
type Service struct {
	users      userRepository
	ledger     *AttemptLedger
	sessions   *SessionStore
	clock      Clock
	sessionTTL time.Duration
	logger     logx.Logger
}

// NewService creates an auth Service.
func NewService(users userRepository, ledger *AttemptLedger, sessions *SessionStore, clock Clock, sessionTTL time.Duration, logger logx.Logger) *Service {
	if clock == nil {
		clock = RealClock{}
	}
	if sessionTTL <= 0 {
		sessionTTL = 2 * time.Hour
	}
	return &Service{
		users:      users,
		ledger:     ledger,
		sessions:   sessions,
		clock:      clock,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// IsRateLimited reports whether the client is currently locked out.
func (s *Service) IsRateLimited(clientID string) bool {
	return s.ledger.IsRateLimited(clientID)
}

// Login checks credentials and establishes a session.
// Every unsuccessful attempt (malformed input or bad credentials) is
// recorded against the client; successful logins are not recorded.
func (s *Service) Login(ctx context.Context, clientID, username, password string) (Session, error) {
	if s.ledger.IsRateLimited(clientID) {
		s.logger.Warn("login locked out", logx.String("client", clientID))
		return Session{}, apperr.RateLimited
	}

	if err := validateLoginInput(username, password); err != nil {
		s.ledger.Record(clientID)
		return Session{}, err
	}

	user, err := s.users.GetActiveByUsername(ctx, username)
	if err != nil {
		return Session{}, err
	}

	hash := dummyHash
	if user != nil {
		hash = []byte(user.PasswordHash)
	}
	cmpErr := bcrypt.CompareHashAndPassword(hash, []byte(password))
	if user == nil || cmpErr != nil {
		s.ledger.Record(clientID)
		s.logger.Warn("login failed",
			logx.String("username", username),
			logx.String("client", clientID),
		)
		return Session{}, apperr.Unauthorized
	}

	sess := s.sessions.Create(user.ID, user.Username, user.Role)
	s.logger.Info("login succeeded",
		logx.String("username", user.Username),
		logx.String("client", clientID),
	)
	return sess, nil
}

// Validate returns the session for the token if it is still within its
// absolute lifetime; an expired session is invalidated on access.
func (s *Service) Validate(token string) (Session, error) {
	sess, ok := s.sessions.Get(token)
	if !ok {
		return Session{}, apperr.Unauthorized
	}
	if s.clock.Now().Sub(sess.LoginAt) > s.sessionTTL {
		s.sessions.Delete(token)
		return Session{}, apperr.Unauthorized
	}
	return sess, nil
}

// Logout invalidates the session for the token.
func (s *Service) Logout(token string) {
	s.sessions.Delete(token)
}

func validateLoginInput(username, password string) error {
	if username == "" || password == "" {
		return apperr.Invalid
	}
	if len(username) > maxUsernameLen || len(password) > maxPasswordLen {
		return apperr.Invalid
	}
	if !reUsername.MatchString(username) {
		return apperr.Invalid
	}
	return nil
}

// HashPassword derives a bcrypt hash for storing new credentials.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

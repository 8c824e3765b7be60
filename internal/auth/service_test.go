package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"parcel-tracking-service/internal/apperr"
	"parcel-tracking-service/internal/domain"
	"parcel-tracking-service/internal/logx"
)

type stubUserRepo struct {
	getFn func(ctx context.Context, username string) (*domain.User, error)
}

func (s *stubUserRepo) GetActiveByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.getFn(ctx, username)
}

func newTestService(t *testing.T, users userRepository, clock Clock, ttl time.Duration) *Service {
	t.Helper()
	ledger := NewAttemptLedger(clock, 5, 15*time.Minute)
	sessions := NewSessionStore(clock)
	return NewService(users, ledger, sessions, clock, ttl, logx.Nop())
}

func adminRepo(t *testing.T, password string) *stubUserRepo {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return &stubUserRepo{getFn: func(_ context.Context, username string) (*domain.User, error) {
		if username != "admin" {
			return nil, nil
		}
		return &domain.User{
			ID:           1,
			Username:     "admin",
			PasswordHash: hash,
			Role:         domain.RoleAdmin,
			Active:       true,
		}, nil
	}}
}

func TestService_Login_Success(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestService(t, adminRepo(t, "s3cret"), clock, 2*time.Hour)

	sess, err := svc.Login(context.Background(), "10.0.0.1", "admin", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	require.Equal(t, "admin", sess.Username)
	require.Equal(t, domain.RoleAdmin, sess.Role)

	got, err := svc.Validate(sess.Token)
	require.NoError(t, err)
	require.Equal(t, sess.Token, got.Token)

	// successful logins must not count toward the lockout
	require.False(t, svc.IsRateLimited("10.0.0.1"))
}

func TestService_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestService(t, adminRepo(t, "s3cret"), clock, 2*time.Hour)

	_, err := svc.Login(context.Background(), "10.0.0.1", "admin", "wrong")
	require.ErrorIs(t, err, apperr.Unauthorized)
}

func TestService_Login_UnknownUser(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestService(t, adminRepo(t, "s3cret"), clock, 2*time.Hour)

	_, err := svc.Login(context.Background(), "10.0.0.1", "nobody", "whatever")
	require.ErrorIs(t, err, apperr.Unauthorized)
}

func TestService_Login_InvalidInput(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "pw"},
		{"empty password", "admin", ""},
		{"username too long", string(make([]byte, maxUsernameLen+1)), "pw"},
		{"forbidden characters", "admin; DROP TABLE", "pw"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(t, adminRepo(t, "s3cret"), clock, 2*time.Hour)
			_, err := svc.Login(context.Background(), "10.0.0.1", tc.username, tc.password)
			require.ErrorIs(t, err, apperr.Invalid)
			// malformed input still counts as an attempt
			require.Equal(t, 1, svc.ledger.CountRecent("10.0.0.1"))
		})
	}
}

func TestService_Login_LockoutAfterFiveFailures(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestService(t, adminRepo(t, "s3cret"), clock, 2*time.Hour)

	for range 5 {
		_, err := svc.Login(context.Background(), "10.0.0.1", "admin", "wrong")
		require.ErrorIs(t, err, apperr.Unauthorized)
	}

	// even the correct password is refused while locked out
	_, err := svc.Login(context.Background(), "10.0.0.1", "admin", "s3cret")
	require.ErrorIs(t, err, apperr.RateLimited)

	// the window slides: after 15 minutes the client may try again
	clock.advance(15*time.Minute + time.Second)
	sess, err := svc.Login(context.Background(), "10.0.0.1", "admin", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
}

func TestService_Login_RepoError(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	repo := &stubUserRepo{getFn: func(context.Context, string) (*domain.User, error) {
		return nil, boom
	}}
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestService(t, repo, clock, 2*time.Hour)

	_, err := svc.Login(context.Background(), "10.0.0.1", "admin", "s3cret")
	require.ErrorIs(t, err, boom)
	// infrastructure failures are not the client's fault
	require.Equal(t, 0, svc.ledger.CountRecent("10.0.0.1"))
}

func TestService_Validate_Expiry(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestService(t, adminRepo(t, "s3cret"), clock, 2*time.Hour)

	sess, err := svc.Login(context.Background(), "10.0.0.1", "admin", "s3cret")
	require.NoError(t, err)

	// still valid exactly at the TTL boundary
	clock.advance(2 * time.Hour)
	_, err = svc.Validate(sess.Token)
	require.NoError(t, err)

	clock.advance(time.Second)
	_, err = svc.Validate(sess.Token)
	require.ErrorIs(t, err, apperr.Unauthorized)

	// the expired session was removed, not just rejected
	_, ok := svc.sessions.Get(sess.Token)
	require.False(t, ok)
}

func TestService_Logout(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestService(t, adminRepo(t, "s3cret"), clock, 2*time.Hour)

	sess, err := svc.Login(context.Background(), "10.0.0.1", "admin", "s3cret")
	require.NoError(t, err)

	svc.Logout(sess.Token)
	_, err = svc.Validate(sess.Token)
	require.ErrorIs(t, err, apperr.Unauthorized)

	// logging out twice is harmless
	svc.Logout(sess.Token)
}

func TestSessionStore_TokensAreUnique(t *testing.T) {
	t.Parallel()

	store := NewSessionStore(nil)
	a := store.Create(1, "admin", domain.RoleAdmin)
	b := store.Create(1, "admin", domain.RoleAdmin)
	require.NotEqual(t, a.Token, b.Token)

	store.Delete(a.Token)
	_, ok := store.Get(a.Token)
	require.False(t, ok)
	_, ok = store.Get(b.Token)
	require.True(t, ok)
}

func TestMustHash_ComparableAtInit(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, dummyHash)
	require.NoError(t, bcrypt.CompareHashAndPassword(dummyHash, []byte("placeholder-password")))
	require.Error(t, bcrypt.CompareHashAndPassword(dummyHash, []byte("anything-else")))
}

package auth

import (
	"sync"
	"time"
)

// AttemptLedger counts login attempts per client over a sliding window.
// Entries older than the window are pruned lazily on read. State is
// process-local and resets on restart.
type AttemptLedger struct {
	clock     Clock
	threshold int
	window    time.Duration

	mu       sync.Mutex
	attempts map[string][]time.Time
}

// NewAttemptLedger creates a ledger with explicit limits and injected clock.
func NewAttemptLedger(clock Clock, threshold int, window time.Duration) *AttemptLedger {
	if clock == nil {
		clock = RealClock{}
	}
	if threshold <= 0 {
		threshold = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &AttemptLedger{
		clock:     clock,
		threshold: threshold,
		window:    window,
		attempts:  make(map[string][]time.Time),
	}
}

// Record appends the current timestamp to the client's attempt list.
func (l *AttemptLedger) Record(clientID string) {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.attempts[clientID] = append(l.attempts[clientID], now)
}

// IsRateLimited reports whether the client has reached the attempt
// threshold within the trailing window. The window slides continuously,
// so a client unlocks as soon as enough old attempts age out.
func (l *AttemptLedger) IsRateLimited(clientID string) bool {
	return l.CountRecent(clientID) >= l.threshold
}

// CountRecent returns the number of attempts still inside the window,
// pruning aged-out entries as a side effect.
func (l *AttemptLedger) CountRecent(clientID string) int {
	cutoff := l.clock.Now().Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	recorded := l.attempts[clientID]
	recent := recorded[:0]
	for _, at := range recorded {
		if at.After(cutoff) {
			recent = append(recent, at)
		}
	}
	if len(recent) == 0 {
		delete(l.attempts, clientID)
		return 0
	}
	l.attempts[clientID] = recent
	return len(recent)
}

package duty

import (
	"sync"
	"time"
)

// Tracker owns the session ledger and the weekly aggregator. A single mutex
// guards both, so a toggle that closes a session and records its duration is
// never split by a concurrent snapshot.
//
// Only derived values leave the Tracker. Callers do their I/O with those
// values after the call returns.
type Tracker struct {
	mu     sync.Mutex
	ledger *Ledger
	weekly *Aggregator
}

func NewTracker() *Tracker {
	return &Tracker{
		ledger: NewLedger(),
		weekly: NewAggregator(),
	}
}

// Toggle flips the duty state of userID. On clock-out the elapsed time is
// added to the weekly total in the same critical section.
func (t *Tracker) Toggle(userID UserID, now time.Time) ToggleResult {
	t.mu.Lock()
	defer t.mu.Unlock()

	result := t.ledger.Toggle(userID, now)
	if result.Transition == ClockedOut {
		t.weekly.Record(userID, result.Elapsed)
	}

	return result
}

func (t *Tracker) Record(userID UserID, elapsed time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.weekly.Record(userID, elapsed)
}

// SnapshotAndReset drains the weekly totals. Open sessions are left alone.
func (t *Tracker) SnapshotAndReset() (Report, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.weekly.SnapshotAndReset()
}

func (t *Tracker) Session(userID UserID) (Session, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.ledger.Session(userID)
}

// WeeklyTotal returns the seconds recorded for userID in the current window.
func (t *Tracker) WeeklyTotal(userID UserID) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.weekly.Total(userID)
}

// OnDuty returns the number of open sessions.
func (t *Tracker) OnDuty() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.ledger.Len()
}

package duty

import (
	"time"

	"github.com/google/uuid"
)

// Ledger tracks who is currently on duty and since when.
// It is not safe for concurrent use, see Tracker.
type Ledger struct {
	open map[UserID]Session
}

func NewLedger() *Ledger {
	return &Ledger{open: make(map[UserID]Session)}
}

// Toggle flips the duty state of userID. Presence of an open session means
// the user is on duty, so a toggle never fails.
func (l *Ledger) Toggle(userID UserID, now time.Time) ToggleResult {
	session, onDuty := l.open[userID]
	if !onDuty {
		session = Session{
			ID:      uuid.New(),
			UserID:  userID,
			ClockIn: now,
		}
		l.open[userID] = session

		return ToggleResult{Transition: ClockedIn, Session: session}
	}

	delete(l.open, userID)

	elapsed := now.Sub(session.ClockIn)
	if elapsed < 0 {
		elapsed = 0
	}

	return ToggleResult{
		Transition: ClockedOut,
		Session:    session,
		ClockOut:   now,
		Elapsed:    elapsed,
	}
}

func (l *Ledger) Session(userID UserID) (Session, bool) {
	session, ok := l.open[userID]
	return session, ok
}

func (l *Ledger) Len() int {
	return len(l.open)
}

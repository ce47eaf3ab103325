package duty

import (
	"time"

	"github.com/google/uuid"
)

// UserID is the platform account id of an officer.
type UserID int64

// Session is an open duty session. It exists only while the user is on duty.
type Session struct {
	ID      uuid.UUID
	UserID  UserID
	ClockIn time.Time
}

type Transition int

const (
	ClockedIn Transition = iota + 1
	ClockedOut
)

func (t Transition) String() string {
	switch t {
	case ClockedIn:
		return "clocked_in"
	case ClockedOut:
		return "clocked_out"
	default:
		return "unknown"
	}
}

// ToggleResult describes what a toggle did. ClockOut and Elapsed are only
// set for ClockedOut.
type ToggleResult struct {
	Transition Transition
	Session    Session
	ClockOut   time.Time
	Elapsed    time.Duration
}

// Entry is a single line of a weekly report.
type Entry struct {
	UserID       UserID
	TotalSeconds float64
}

// Report holds weekly totals ordered by TotalSeconds, most duty time first.
type Report struct {
	Entries []Entry
}

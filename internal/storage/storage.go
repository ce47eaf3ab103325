package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrUnknownDriver = errors.New("unknown journal driver")

const (
	DriverSqlite   = "sqlite"
	DriverPostgres = "postgres"
	DriverNone     = "none"
)

// Journal is an append-only audit trail of duty sessions and weekly reports.
// Nothing is ever read back into the tracker.
type Journal interface {
	Up(ctx context.Context) error
	SaveSession(ctx context.Context, session SessionRecord) error
	SaveReport(ctx context.Context, report ReportRecord) error
	Close() error
}

type Event string

const (
	EventClockIn  Event = "clock_in"
	EventClockOut Event = "clock_out"
)

type SessionRecord struct {
	SessionId uuid.UUID
	Event     Event
	UserId    int64
	UserName  string
	ClockIn   time.Time

	// Zero for clock-in events
	ClockOut       time.Time
	ElapsedSeconds float64
}

type ReportRecord struct {
	GeneratedAt time.Time
	Rows        []ReportRow
}

type ReportRow struct {
	Rank         int
	UserId       int64
	UserName     string
	TotalSeconds float64
}

type nopJournal struct{}

// Nop returns a journal that discards everything.
func Nop() Journal {
	return nopJournal{}
}

func (nopJournal) Up(context.Context) error                         { return nil }
func (nopJournal) SaveSession(context.Context, SessionRecord) error { return nil }
func (nopJournal) SaveReport(context.Context, ReportRecord) error   { return nil }
func (nopJournal) Close() error                                     { return nil }

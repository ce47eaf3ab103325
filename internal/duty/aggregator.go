package duty

import (
	"cmp"
	"time"

	"golang.org/x/exp/slices"
)

// Aggregator accumulates closed session durations per user for the current
// reporting window. It is not safe for concurrent use, see Tracker.
type Aggregator struct {
	totals map[UserID]float64

	// First-record order within the window, used to break ties.
	order []UserID
}

func NewAggregator() *Aggregator {
	return &Aggregator{totals: make(map[UserID]float64)}
}

// Record adds elapsed to the running total of userID. Negative durations
// are ignored so totals never go below zero.
func (a *Aggregator) Record(userID UserID, elapsed time.Duration) {
	if elapsed < 0 {
		return
	}

	if _, ok := a.totals[userID]; !ok {
		a.order = append(a.order, userID)
	}
	a.totals[userID] += elapsed.Seconds()
}

func (a *Aggregator) Total(userID UserID) float64 {
	return a.totals[userID]
}

func (a *Aggregator) Len() int {
	return len(a.totals)
}

// SnapshotAndReset returns the window's totals ranked by duty time and clears
// them. The boolean is false when nothing was recorded; nothing is reset then.
func (a *Aggregator) SnapshotAndReset() (Report, bool) {
	if len(a.totals) == 0 {
		return Report{}, false
	}

	entries := make([]Entry, 0, len(a.order))
	for _, userID := range a.order {
		entries = append(entries, Entry{UserID: userID, TotalSeconds: a.totals[userID]})
	}

	slices.SortStableFunc(entries, func(i, j Entry) int {
		return cmp.Compare(j.TotalSeconds, i.TotalSeconds)
	})

	a.totals = make(map[UserID]float64)
	a.order = nil

	return Report{Entries: entries}, true
}

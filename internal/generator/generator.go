package generator

import "time"

type Generator interface {
	Generate(leaderboard Leaderboard) (Report, error)
}

// Leaderboard is the render-ready form of a weekly duty report.
type Leaderboard struct {
	Title       string
	GeneratedAt time.Time
	Rows        []Row
}

type Row struct {
	Rank         int
	Name         string
	Hours        int
	Minutes      int
	TotalSeconds float64
}

type Report struct {
	Name string
	Data []byte
}

package bot

import (
	"fmt"
	"math"
	"time"
)

const clockTimeLayout = "2006-01-02 15:04:05"

func formatClockTime(t time.Time) string {
	return t.Format(clockTimeLayout)
}

// formatElapsed renders d as H:MM:SS, dropping fractions of a second.
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	total := int64(d / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// hoursMinutes splits seconds into whole hours and whole remaining minutes.
func hoursMinutes(seconds float64) (int, int) {
	if seconds < 0 {
		seconds = 0
	}

	s := int64(math.Floor(seconds))
	return int(s / 3600), int((s % 3600) / 60)
}

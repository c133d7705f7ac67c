package entity

import (
	"time"
)

// Habit is a user-owned habit with its recorded completions.
// Completions is append-only and holds at most one entry per calendar day
// as observed by the server process.
type Habit struct {
	ID          string
	UserID      string
	Name        string
	Completions []time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DayKey reduces an instant to its calendar date in the server's local
// timezone. Completion uniqueness is keyed on this value, both when checking
// and when storing.
func DayKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// CompletedOn reports whether the habit already has a completion on the
// calendar day identified by day (a DayKey value).
func (h *Habit) CompletedOn(day string) bool {
	for _, c := range h.Completions {
		if DayKey(c) == day {
			return true
		}
	}
	return false
}

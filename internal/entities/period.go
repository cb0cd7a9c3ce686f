package entities

import "time"

// RentalPeriod is a half-open interval [Start, End): the end instant itself
// is free, so a rental ending exactly at another's start does not collide.
type RentalPeriod struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// NewRentalPeriod builds the period covering the given number of whole days
// from start.
func NewRentalPeriod(start time.Time, days int) RentalPeriod {
	return RentalPeriod{
		Start: start,
		End:   start.Add(time.Duration(days) * 24 * time.Hour),
	}
}

// Conflicts reports whether the two periods overlap.
func (p RentalPeriod) Conflicts(other RentalPeriod) bool {
	return p.Start.Before(other.End) && other.Start.Before(p.End)
}

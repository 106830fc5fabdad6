package domain

import "time"

// Interval is a half-open time span [Start, End).
// All overlap logic operates on Intervals, never on bare timestamps.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds the interval occupied by an appointment starting at
// start and lasting durationMinutes
func NewInterval(start time.Time, durationMinutes int) Interval {
	return Interval{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

// Overlaps reports whether two half-open intervals strictly intersect.
// Touching endpoints (a.End == b.Start) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Contains reports whether t falls inside the interval
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// Duration returns the interval length
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

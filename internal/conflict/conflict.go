// Package conflict is the single source of truth for "do these two bookings
// conflict". The same predicate filters slots before rendering and validates
// create/update requests before they are persisted, so the two call sites can
// never disagree about what counts as a conflict.
package conflict

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atelierhub/SBM-SchedulingService/internal/domain"
)

// ErrConflict сигнальная ошибка пересечения записей
// Конкретные детали несёт *Error, который разворачивается в ErrConflict
var ErrConflict = errors.New("conflict: overlapping appointment")

// Error describes a detected conflict: who is double-booked, the attempted
// interval and the existing appointment that blocks it.
type Error struct {
	Professional     string
	Candidate        domain.Interval
	ExistingID       int64
	ExistingInterval domain.Interval
}

func (e *Error) Error() string {
	who := e.Professional
	if who == "" {
		who = "unassigned"
	}
	return fmt.Sprintf("conflict: professional %q already booked %s-%s (appointment %d), attempted %s-%s",
		who,
		e.ExistingInterval.Start.Format(domain.TimeFormat),
		e.ExistingInterval.End.Format(domain.TimeFormat),
		e.ExistingID,
		e.Candidate.Start.Format(domain.TimeFormat),
		e.Candidate.End.Format(domain.TimeFormat),
	)
}

// Unwrap makes errors.Is(err, ErrConflict) work for *Error values
func (e *Error) Unwrap() error {
	return ErrConflict
}

// Detect returns a *Error for the first existing appointment that strictly
// overlaps the candidate interval, or nil when the slot is free.
//
// Rules:
//   - only appointments in the same professional partition are considered;
//     an empty professional means "no partition" and is checked against all
//     existing appointments (conservative)
//   - cancelled appointments never conflict
//   - the appointment with ID == excludeID is ignored (in-place edits must
//     not conflict with themselves); excludeID 0 excludes nothing
//   - touching endpoints (candidate.End == existing.Start) do not conflict
func Detect(candidate domain.Interval, professional string, existing []*domain.Appointment, excludeID int64) *Error {
	key := strings.TrimSpace(professional)

	for _, appt := range existing {
		if appt.IsCancelled() {
			continue
		}
		if excludeID != 0 && appt.ID == excludeID {
			continue
		}
		if key != "" && appt.ProfessionalKey() != key {
			continue
		}
		if candidate.Overlaps(appt.Interval()) {
			return &Error{
				Professional:     key,
				Candidate:        candidate,
				ExistingID:       appt.ID,
				ExistingInterval: appt.Interval(),
			}
		}
	}
	return nil
}

// Blocked reports whether a candidate interval is unavailable. Convenience
// wrapper over Detect for slot classification.
func Blocked(start time.Time, durationMinutes int, professional string, existing []*domain.Appointment, excludeID int64) bool {
	return Detect(domain.NewInterval(start, durationMinutes), professional, existing, excludeID) != nil
}

package domain

import (
	"strings"
	"time"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusInvoiced  AppointmentStatus = "invoiced"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a booked service appointment
type Appointment struct {
	ID         int64
	CustomerID int64
	ServiceID  int64

	// StartsAt is the start of the appointment; the occupied span is
	// [StartsAt, StartsAt + DurationMinutes).
	StartsAt        time.Time
	DurationMinutes int
	Status          AppointmentStatus

	// Professional is a free-text label of the assigned staff member.
	// It is the partition key for conflict detection: appointments of
	// different professionals never conflict. Two spellings of the same
	// name are two different partitions.
	Professional *string

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	CustomerName string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the occupied time span of the appointment
func (a *Appointment) Interval() Interval {
	return NewInterval(a.StartsAt, a.DurationMinutes)
}

// ProfessionalKey returns the trimmed professional label used for
// conflict partitioning; empty when no professional is assigned
func (a *Appointment) ProfessionalKey() string {
	if a.Professional == nil {
		return ""
	}
	return strings.TrimSpace(*a.Professional)
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// IsTerminal returns true if the appointment is in a terminal state
func (a *Appointment) IsTerminal() bool {
	return IsTerminalStatus(a.Status)
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed || a.Status == StatusCompleted
}

// CanBeRescheduled returns true if date/service/professional edits are allowed
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// DayFilter фильтр для выборки записей на конкретный день
type DayFilter struct {
	Day              time.Time // Обязательный параметр (календарный день)
	Professional     *string   // Фильтр по мастеру (опционально, nil - все мастера)
	IncludeCancelled bool      // Включать ли отменённые записи
}

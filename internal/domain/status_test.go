package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"scheduled to confirmed", StatusScheduled, StatusConfirmed, true},
		{"scheduled to cancelled", StatusScheduled, StatusCancelled, true},
		{"scheduled to completed skips confirm", StatusScheduled, StatusCompleted, false},
		{"scheduled to invoiced skips steps", StatusScheduled, StatusInvoiced, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed back to scheduled", StatusConfirmed, StatusScheduled, false},
		{"completed to invoiced", StatusCompleted, StatusInvoiced, true},
		{"completed to cancelled", StatusCompleted, StatusCancelled, true},
		{"completed back to confirmed", StatusCompleted, StatusConfirmed, false},
		{"invoiced is terminal", StatusInvoiced, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusScheduled, false},
		{"cancelled cannot be re-cancelled", StatusCancelled, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminalStatus(t *testing.T) {
	assert.True(t, IsTerminalStatus(StatusInvoiced))
	assert.True(t, IsTerminalStatus(StatusCancelled))
	assert.False(t, IsTerminalStatus(StatusScheduled))
	assert.False(t, IsTerminalStatus(StatusConfirmed))
	assert.False(t, IsTerminalStatus(StatusCompleted))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusScheduled))
	assert.True(t, ValidStatus(StatusInvoiced))
	assert.False(t, ValidStatus(AppointmentStatus("pending")))
	assert.False(t, ValidStatus(AppointmentStatus("")))
}

func TestRescheduleStatus(t *testing.T) {
	t.Run("confirmed is demoted with explicit flag", func(t *testing.T) {
		outcome := RescheduleStatus(StatusConfirmed)
		assert.Equal(t, StatusScheduled, outcome.Status)
		assert.True(t, outcome.StatusReset)
	})

	t.Run("scheduled keeps its status", func(t *testing.T) {
		outcome := RescheduleStatus(StatusScheduled)
		assert.Equal(t, StatusScheduled, outcome.Status)
		assert.False(t, outcome.StatusReset)
	})
}

func TestAppointmentLifecycleGuards(t *testing.T) {
	tests := []struct {
		status        AppointmentStatus
		cancellable   bool
		reschedulable bool
	}{
		{StatusScheduled, true, true},
		{StatusConfirmed, true, true},
		{StatusCompleted, true, false},
		{StatusInvoiced, false, false},
		{StatusCancelled, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			appt := &Appointment{Status: tt.status}
			assert.Equal(t, tt.cancellable, appt.CanBeCancelled())
			assert.Equal(t, tt.reschedulable, appt.CanBeRescheduled())
		})
	}
}

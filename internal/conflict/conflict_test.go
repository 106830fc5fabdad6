package conflict

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierhub/SBM-SchedulingService/internal/domain"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 14, hour, min, 0, 0, time.UTC)
}

func appt(id int64, professional string, start time.Time, durationMinutes int, status domain.AppointmentStatus) *domain.Appointment {
	a := &domain.Appointment{
		ID:              id,
		StartsAt:        start,
		DurationMinutes: durationMinutes,
		Status:          status,
	}
	if professional != "" {
		a.Professional = &professional
	}
	return a
}

func TestDetect(t *testing.T) {
	// Ana занята 09:00-09:40
	existing := []*domain.Appointment{
		appt(1, "Ana", at(9, 0), 40, domain.StatusConfirmed),
	}

	t.Run("overlapping candidate is blocked", func(t *testing.T) {
		candidate := domain.NewInterval(at(9, 15), 30)

		err := Detect(candidate, "Ana", existing, 0)
		require.NotNil(t, err)
		assert.Equal(t, int64(1), err.ExistingID)
		assert.Equal(t, "Ana", err.Professional)
		assert.True(t, errors.Is(err, ErrConflict))
	})

	t.Run("touching candidate is free", func(t *testing.T) {
		candidate := domain.NewInterval(at(9, 40), 30)
		assert.Nil(t, Detect(candidate, "Ana", existing, 0))
	})

	t.Run("candidate ending at existing start is free", func(t *testing.T) {
		candidate := domain.NewInterval(at(8, 30), 30)
		assert.Nil(t, Detect(candidate, "Ana", existing, 0))
	})

	t.Run("other professional never conflicts", func(t *testing.T) {
		candidate := domain.NewInterval(at(9, 15), 30)
		assert.Nil(t, Detect(candidate, "Beto", existing, 0))
	})

	t.Run("professional is trimmed before comparison", func(t *testing.T) {
		candidate := domain.NewInterval(at(9, 15), 30)
		assert.NotNil(t, Detect(candidate, "  Ana ", existing, 0))
	})

	t.Run("spelling differences are different partitions", func(t *testing.T) {
		candidate := domain.NewInterval(at(9, 15), 30)
		assert.Nil(t, Detect(candidate, "ana", existing, 0))
	})

	t.Run("empty professional checks all partitions", func(t *testing.T) {
		candidate := domain.NewInterval(at(9, 15), 30)
		assert.NotNil(t, Detect(candidate, "", existing, 0))
	})

	t.Run("cancelled appointments never conflict", func(t *testing.T) {
		cancelled := []*domain.Appointment{
			appt(2, "Ana", at(9, 0), 40, domain.StatusCancelled),
		}
		candidate := domain.NewInterval(at(9, 15), 30)
		assert.Nil(t, Detect(candidate, "Ana", cancelled, 0))
	})

	t.Run("excludeID skips own interval", func(t *testing.T) {
		candidate := domain.NewInterval(at(9, 15), 30)
		assert.Nil(t, Detect(candidate, "Ana", existing, 1))
		assert.NotNil(t, Detect(candidate, "Ana", existing, 99))
	})
}

func TestDetectOrderIndependent(t *testing.T) {
	appointments := []*domain.Appointment{
		appt(1, "Ana", at(9, 0), 30, domain.StatusScheduled),
		appt(2, "Ana", at(10, 0), 60, domain.StatusConfirmed),
		appt(3, "Ana", at(12, 0), 30, domain.StatusCompleted),
		appt(4, "Beto", at(9, 0), 240, domain.StatusConfirmed),
	}

	candidates := []struct {
		start    time.Time
		duration int
		blocked  bool
	}{
		{at(9, 0), 30, true},
		{at(9, 30), 30, false},
		{at(10, 30), 30, true},
		{at(11, 0), 60, false},
		{at(12, 15), 15, true},
	}

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		shuffled := make([]*domain.Appointment, len(appointments))
		copy(shuffled, appointments)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		for _, c := range candidates {
			got := Blocked(c.start, c.duration, "Ana", shuffled, 0)
			assert.Equal(t, c.blocked, got,
				"trial %d: candidate %s+%dm", trial, c.start.Format("15:04"), c.duration)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	err := Detect(domain.NewInterval(at(9, 15), 30), "Ana",
		[]*domain.Appointment{appt(7, "Ana", at(9, 0), 40, domain.StatusScheduled)}, 0)
	require.NotNil(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "Ana")
	assert.Contains(t, msg, "09:00")
	assert.Contains(t, msg, "09:40")
	assert.Contains(t, msg, "09:15")
}

package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierhub/SBM-SchedulingService/internal/domain"
	"github.com/atelierhub/SBM-SchedulingService/internal/timegrid"
	"github.com/atelierhub/SBM-SchedulingService/pkg/types"
)

var testGrid = timegrid.DefaultConfig()

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func busyAppt(id int64, professional string, start time.Time, durationMinutes int) *domain.Appointment {
	a := &domain.Appointment{
		ID:              id,
		StartsAt:        start,
		DurationMinutes: durationMinutes,
		Status:          domain.StatusConfirmed,
	}
	if professional != "" {
		a.Professional = &professional
	}
	return a
}

func stateOf(slots []Slot, startTime types.TimeString) SlotState {
	for _, s := range slots {
		if s.StartTime == startTime {
			return s.State
		}
	}
	return SlotState("missing")
}

func TestClassifySlotsEmptyDay(t *testing.T) {
	date := day(2026, 3, 20)
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	slots := classifySlots(testGrid.DailySlots(), date, now, 30, "", nil, 0)

	require.Len(t, slots, 25)
	for _, s := range slots {
		assert.Equal(t, SlotAvailable, s.State, "slot %s", s.StartTime)
		assert.Equal(t, 30, s.DurationMinutes)
	}
}

func TestClassifySlotsPastDay(t *testing.T) {
	date := day(2026, 3, 10)
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	slots := classifySlots(testGrid.DailySlots(), date, now, 30, "", nil, 0)

	for _, s := range slots {
		assert.Equal(t, SlotPast, s.State)
	}
}

func TestClassifySlotsToday(t *testing.T) {
	date := day(2026, 3, 14)
	// Сейчас 14:05: слоты по 14:00 включительно прошли, 14:30 ещё нет
	now := time.Date(2026, 3, 14, 14, 5, 0, 0, time.UTC)

	slots := classifySlots(testGrid.DailySlots(), date, now, 30, "", nil, 0)

	assert.Equal(t, SlotPast, stateOf(slots, "08:00"))
	assert.Equal(t, SlotPast, stateOf(slots, "14:00"))
	assert.Equal(t, SlotAvailable, stateOf(slots, "14:30"))
	assert.Equal(t, SlotAvailable, stateOf(slots, "20:00"))
}

func TestClassifySlotsExactSlotBoundaryNow(t *testing.T) {
	date := day(2026, 3, 14)
	// Ровно 14:00: слот 14:00 уже недоступен (начало не позже текущего времени)
	now := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)

	slots := classifySlots(testGrid.DailySlots(), date, now, 30, "", nil, 0)

	assert.Equal(t, SlotPast, stateOf(slots, "14:00"))
	assert.Equal(t, SlotAvailable, stateOf(slots, "14:30"))
}

func TestClassifySlotsConflicts(t *testing.T) {
	date := day(2026, 3, 20)
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	// Ana занята 09:00-09:40
	busy := []*domain.Appointment{
		busyAppt(1, "Ana", time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC), 40),
	}

	t.Run("40 minute appointment blocks two slots of a 30m candidate", func(t *testing.T) {
		slots := classifySlots(testGrid.DailySlots(), date, now, 30, "Ana", busy, 0)

		assert.Equal(t, SlotAvailable, stateOf(slots, "08:00"))
		// Кандидат 08:30-09:00 граничит с занятым интервалом — свободен
		assert.Equal(t, SlotAvailable, stateOf(slots, "08:30"))
		assert.Equal(t, SlotConflict, stateOf(slots, "09:00"))
		// Кандидат 09:30-10:00 пересекается с хвостом 09:30-09:40
		assert.Equal(t, SlotConflict, stateOf(slots, "09:30"))
		assert.Equal(t, SlotAvailable, stateOf(slots, "10:00"))
	})

	t.Run("different professional sees a free day", func(t *testing.T) {
		slots := classifySlots(testGrid.DailySlots(), date, now, 30, "Beto", busy, 0)
		assert.Equal(t, SlotAvailable, stateOf(slots, "09:00"))
	})

	t.Run("no professional is checked against everyone", func(t *testing.T) {
		slots := classifySlots(testGrid.DailySlots(), date, now, 30, "", busy, 0)
		assert.Equal(t, SlotConflict, stateOf(slots, "09:00"))
	})

	t.Run("excludeID frees own interval when editing", func(t *testing.T) {
		slots := classifySlots(testGrid.DailySlots(), date, now, 30, "Ana", busy, 1)
		assert.Equal(t, SlotAvailable, stateOf(slots, "09:00"))
	})

	t.Run("past wins over conflict on a past day", func(t *testing.T) {
		pastBusy := []*domain.Appointment{
			busyAppt(2, "Ana", time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), 40),
		}
		slots := classifySlots(testGrid.DailySlots(), day(2026, 3, 10), now, 30, "Ana", pastBusy, 0)
		assert.Equal(t, SlotPast, stateOf(slots, "09:00"))
	})

	t.Run("idempotent", func(t *testing.T) {
		first := classifySlots(testGrid.DailySlots(), date, now, 30, "Ana", busy, 0)
		second := classifySlots(testGrid.DailySlots(), date, now, 30, "Ana", busy, 0)
		assert.Equal(t, first, second)
	})
}

func TestVisibleSlots(t *testing.T) {
	now := time.Date(2026, 3, 14, 14, 5, 0, 0, time.UTC)

	t.Run("today hides past slots entirely", func(t *testing.T) {
		slots := classifySlots(testGrid.DailySlots(), day(2026, 3, 14), now, 30, "", nil, 0)
		visible := visibleSlots(slots, day(2026, 3, 14), now)

		require.NotEmpty(t, visible)
		assert.Equal(t, types.TimeString("14:30"), visible[0].StartTime)
		for _, s := range visible {
			assert.NotEqual(t, SlotPast, s.State)
		}
	})

	t.Run("other days keep the full list", func(t *testing.T) {
		slots := classifySlots(testGrid.DailySlots(), day(2026, 3, 20), now, 30, "", nil, 0)
		visible := visibleSlots(slots, day(2026, 3, 20), now)
		assert.Len(t, visible, len(slots))
	})
}

func TestResolveSelection(t *testing.T) {
	date := day(2026, 3, 20)
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	busy := []*domain.Appointment{
		busyAppt(1, "Ana", time.Date(2026, 3, 20, 8, 0, 0, 0, time.UTC), 60),
	}
	slots := classifySlots(testGrid.DailySlots(), date, now, 30, "Ana", busy, 0)

	t.Run("no selection moves to first available", func(t *testing.T) {
		selected, moved, none := resolveSelection(slots, "")
		assert.Equal(t, types.TimeString("09:00"), selected)
		assert.False(t, moved, "empty selection is not a move")
		assert.False(t, none)
	})

	t.Run("available selection is kept", func(t *testing.T) {
		selected, moved, none := resolveSelection(slots, "10:00")
		assert.Equal(t, types.TimeString("10:00"), selected)
		assert.False(t, moved)
		assert.False(t, none)
	})

	t.Run("blocked selection is moved with a flag", func(t *testing.T) {
		selected, moved, none := resolveSelection(slots, "08:00")
		assert.Equal(t, types.TimeString("09:00"), selected)
		assert.True(t, moved)
		assert.False(t, none)
	})

	t.Run("fully booked day reports no availability", func(t *testing.T) {
		fullDay := []*domain.Appointment{
			busyAppt(2, "Ana", time.Date(2026, 3, 20, 8, 0, 0, 0, time.UTC), 750),
		}
		blocked := classifySlots(testGrid.DailySlots(), date, now, 30, "Ana", fullDay, 0)

		selected, moved, none := resolveSelection(blocked, "10:00")
		assert.Equal(t, types.TimeString(""), selected)
		assert.False(t, moved)
		assert.True(t, none)
	})
}

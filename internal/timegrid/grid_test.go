package timegrid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierhub/SBM-SchedulingService/pkg/types"
)

func TestDailySlots(t *testing.T) {
	t.Run("default grid has 25 starts", func(t *testing.T) {
		slots := DefaultConfig().DailySlots()

		// 08:00..20:00 включительно с шагом 30 минут
		require.Len(t, slots, 25)
		assert.Equal(t, types.TimeString("08:00"), slots[0])
		assert.Equal(t, types.TimeString("08:30"), slots[1])
		assert.Equal(t, types.TimeString("20:00"), slots[len(slots)-1])
	})

	t.Run("extended evening grid has 29 starts", func(t *testing.T) {
		cfg := Config{DayStart: "08:00", DayEnd: "22:00", StepMinutes: 30}
		slots := cfg.DailySlots()

		require.Len(t, slots, 29)
		assert.Equal(t, types.TimeString("22:00"), slots[len(slots)-1])
	})

	t.Run("deterministic", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.Equal(t, cfg.DailySlots(), cfg.DailySlots())
	})

	t.Run("hour step", func(t *testing.T) {
		cfg := Config{DayStart: "09:00", DayEnd: "12:00", StepMinutes: 60}
		slots := cfg.DailySlots()

		require.Len(t, slots, 4)
		assert.Equal(t, types.TimeString("09:00"), slots[0])
		assert.Equal(t, types.TimeString("12:00"), slots[3])
	})
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	bad := Config{DayStart: "20:00", DayEnd: "08:00", StepMinutes: 30}
	assert.Error(t, bad.Validate())

	zeroStep := Config{DayStart: "08:00", DayEnd: "20:00", StepMinutes: 0}
	assert.Error(t, zeroStep.Validate())
}

func TestAligned(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.Aligned(time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)))
	assert.True(t, cfg.Aligned(time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)))
	assert.False(t, cfg.Aligned(time.Date(2026, 3, 14, 10, 15, 0, 0, time.UTC)))
	assert.False(t, cfg.Aligned(time.Date(2026, 3, 14, 10, 0, 30, 0, time.UTC)), "seconds break alignment")
	assert.True(t, cfg.Aligned(time.Date(2026, 3, 14, 7, 30, 0, 0, time.UTC)), "phase holds before opening")
	assert.False(t, cfg.Aligned(time.Date(2026, 3, 14, 7, 45, 0, 0, time.UTC)))
	assert.True(t, cfg.Aligned(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)), "midnight keeps the phase")
}

func TestWithinBusinessHours(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.WithinBusinessHours(time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)))
	assert.True(t, cfg.WithinBusinessHours(time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)), "last slot start allowed")
	assert.False(t, cfg.WithinBusinessHours(time.Date(2026, 3, 14, 7, 30, 0, 0, time.UTC)))
	assert.False(t, cfg.WithinBusinessHours(time.Date(2026, 3, 14, 20, 30, 0, 0, time.UTC)))
}

func TestMonthGrid(t *testing.T) {
	t.Run("march 2026", func(t *testing.T) {
		weeks := MonthGrid(2026, time.March)

		// 1 марта 2026 — воскресенье, 31 день: ровно 5 недель
		require.Len(t, weeks, 5)
		for _, week := range weeks {
			require.Len(t, week, 7)
		}

		assert.Equal(t, time.Sunday, weeks[0][0].Date.Weekday())
		assert.True(t, weeks[0][0].InMonth)
		assert.Equal(t, 1, weeks[0][0].Date.Day())

		// Последняя неделя дополнена днями апреля
		last := weeks[4]
		assert.Equal(t, 31, last[2].Date.Day())
		assert.True(t, last[2].InMonth)
		assert.False(t, last[3].InMonth)
		assert.Equal(t, time.April, last[3].Date.Month())
	})

	t.Run("february 2026 starts mid-week", func(t *testing.T) {
		weeks := MonthGrid(2026, time.February)

		// 1 февраля 2026 — воскресенье, 28 дней: ровно 4 недели без прокладки
		require.Len(t, weeks, 4)
		assert.True(t, weeks[0][0].InMonth)
		assert.True(t, weeks[3][6].InMonth)
		assert.Equal(t, 28, weeks[3][6].Date.Day())
	})

	t.Run("month starting on saturday has leading padding", func(t *testing.T) {
		// 1 августа 2026 — суббота
		weeks := MonthGrid(2026, time.August)

		first := weeks[0]
		for i := 0; i < 6; i++ {
			assert.False(t, first[i].InMonth, "leading July cell %d", i)
			assert.Equal(t, time.July, first[i].Date.Month())
		}
		assert.True(t, first[6].InMonth)
		assert.Equal(t, 1, first[6].Date.Day())
	})
}

func TestIsPastDay(t *testing.T) {
	now := time.Date(2026, 3, 14, 14, 5, 0, 0, time.UTC)

	assert.True(t, IsPastDay(time.Date(2026, 3, 13, 23, 59, 0, 0, time.UTC), now))
	assert.False(t, IsPastDay(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), now), "today is not past")
	assert.False(t, IsPastDay(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), now))
}

func TestIsSameDay(t *testing.T) {
	assert.True(t, IsSameDay(
		time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC),
	))
	assert.False(t, IsSameDay(
		time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC),
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	))
}

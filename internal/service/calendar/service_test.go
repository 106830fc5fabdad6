package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{}) {}
func (nopLogger) Warn(format string, v ...interface{}) {}

func TestMonthGrid(t *testing.T) {
	svc := NewService(nopLogger{})

	t.Run("march 2026", func(t *testing.T) {
		resp, err := svc.MonthGrid(2026, 3)
		require.NoError(t, err)

		assert.Equal(t, 2026, resp.Year)
		assert.Equal(t, 3, resp.Month)
		// Март 2026 начинается с воскресенья и занимает 5 полных недель
		require.Len(t, resp.Weeks, 5)
		for _, week := range resp.Weeks {
			require.Len(t, week.Days, 7)
		}

		first := resp.Weeks[0].Days[0]
		assert.Equal(t, "2026-03-01", first.Date)
		assert.Equal(t, 1, first.Day)
		assert.True(t, first.InMonth)

		// Хвост последней недели уходит в апрель
		last := resp.Weeks[4].Days[6]
		assert.Equal(t, "2026-04-04", last.Date)
		assert.False(t, last.InMonth)
	})

	t.Run("leading padding from previous month", func(t *testing.T) {
		// Август 2026 начинается с субботы: шесть июльских ячеек в начале
		resp, err := svc.MonthGrid(2026, 8)
		require.NoError(t, err)

		for i := 0; i < 6; i++ {
			assert.False(t, resp.Weeks[0].Days[i].InMonth, "day index %d", i)
		}
		assert.True(t, resp.Weeks[0].Days[6].InMonth)
		assert.Equal(t, "2026-08-01", resp.Weeks[0].Days[6].Date)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := svc.MonthGrid(2026, 0)
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.MonthGrid(2026, 13)
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.MonthGrid(1899, 5)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

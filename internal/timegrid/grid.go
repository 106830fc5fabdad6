// Package timegrid generates the fixed catalogue of bookable time-of-day
// slots and the calendar month grid used by date pickers. Pure, stateless.
package timegrid

import (
	"fmt"
	"time"

	"github.com/atelierhub/SBM-SchedulingService/internal/domain"
	"github.com/atelierhub/SBM-SchedulingService/pkg/types"
)

// Config задает границы рабочего дня и шаг сетки слотов
type Config struct {
	DayStart    types.TimeString // Начало рабочего дня, например "08:00"
	DayEnd      types.TimeString // Конец рабочего дня (включительно для стартов слотов)
	StepMinutes int              // Шаг сетки в минутах
}

// DefaultConfig returns the standard business-day grid: 08:00 to 20:00,
// 30-minute steps.
func DefaultConfig() Config {
	return Config{
		DayStart:    types.TimeString(domain.DefaultDayStart),
		DayEnd:      types.TimeString(domain.DefaultDayEnd),
		StepMinutes: domain.DefaultSlotStepMinutes,
	}
}

// Validate checks the grid bounds and step
func (c Config) Validate() error {
	if err := c.DayStart.Validate(); err != nil {
		return fmt.Errorf("timegrid: day start: %w", err)
	}
	if err := c.DayEnd.Validate(); err != nil {
		return fmt.Errorf("timegrid: day end: %w", err)
	}
	if !c.DayStart.IsBefore(c.DayEnd) {
		return fmt.Errorf("timegrid: day start %s must be before day end %s", c.DayStart, c.DayEnd)
	}
	if c.StepMinutes <= 0 {
		return fmt.Errorf("timegrid: step must be positive, got %d", c.StepMinutes)
	}
	return nil
}

// DailySlots returns the ordered catalogue of slot start times for a
// business day, from DayStart to DayEnd inclusive with StepMinutes steps.
// Deterministic and side-effect free.
func (c Config) DailySlots() []types.TimeString {
	start, err := c.DayStart.Minutes()
	if err != nil {
		return nil
	}
	end, err := c.DayEnd.Minutes()
	if err != nil {
		return nil
	}
	if c.StepMinutes <= 0 || end < start {
		return nil
	}

	slots := make([]types.TimeString, 0, (end-start)/c.StepMinutes+1)
	slot := c.DayStart
	for m := start; m <= end; m += c.StepMinutes {
		slots = append(slots, slot)
		next, err := slot.AddMinutes(c.StepMinutes)
		if err != nil {
			break
		}
		slot = next
	}
	return slots
}

// Aligned reports whether the time-of-day of t falls on the slot grid
// phase. Only the phase is checked: times before DayStart can still be
// aligned, the day bounds belong to WithinBusinessHours.
func (c Config) Aligned(t time.Time) bool {
	start, err := c.DayStart.Minutes()
	if err != nil {
		return false
	}
	if t.Second() != 0 || t.Nanosecond() != 0 {
		return false
	}
	minutes := t.Hour()*60 + t.Minute()
	phase := (minutes - start) % c.StepMinutes
	if phase < 0 {
		phase += c.StepMinutes
	}
	return phase == 0
}

// WithinBusinessHours reports whether the time-of-day of t is a valid slot
// start: no earlier than DayStart and no later than DayEnd. The service may
// run past DayEnd; only the start is constrained, as in the slot catalogue.
func (c Config) WithinBusinessHours(t time.Time) bool {
	start, err := c.DayStart.Minutes()
	if err != nil {
		return false
	}
	end, err := c.DayEnd.Minutes()
	if err != nil {
		return false
	}
	minutes := t.Hour()*60 + t.Minute()
	return minutes >= start && minutes <= end
}

// DayCell is one cell of the month grid
type DayCell struct {
	Date    time.Time
	InMonth bool // false for the adjacent-month padding cells
}

// MonthGrid builds the calendar grid for a month: complete Sunday-first
// weeks, with cells outside the target month filled by adjacent-month dates
// so every week has exactly 7 entries.
func MonthGrid(year int, month time.Month) [][]DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	// Back up to the Sunday that starts the first week.
	cursor := first.AddDate(0, 0, -int(first.Weekday()))

	var weeks [][]DayCell
	for {
		week := make([]DayCell, 0, 7)
		for i := 0; i < 7; i++ {
			week = append(week, DayCell{
				Date:    cursor,
				InMonth: cursor.Month() == month && cursor.Year() == year,
			})
			cursor = cursor.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)

		// The grid is complete once the next week starts past the month.
		if cursor.Month() != month || cursor.Year() != year {
			break
		}
	}
	return weeks
}

// IsPastDay reports whether date falls on a calendar day strictly before
// now's day. Date-level, not time-level.
func IsPastDay(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location())
	return dateOnly.Before(nowOnly)
}

// IsSameDay reports whether two timestamps fall on the same calendar day
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

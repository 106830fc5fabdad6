package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 14, hour, min, 0, 0, time.UTC)
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Interval
		overlaps bool
	}{
		{
			name:     "identical intervals overlap",
			a:        NewInterval(at(10, 0), 30),
			b:        NewInterval(at(10, 0), 30),
			overlaps: true,
		},
		{
			name:     "partial overlap",
			a:        NewInterval(at(10, 0), 40),
			b:        NewInterval(at(10, 30), 30),
			overlaps: true,
		},
		{
			name:     "containment overlaps",
			a:        NewInterval(at(10, 0), 120),
			b:        NewInterval(at(10, 30), 30),
			overlaps: true,
		},
		{
			name:     "touching endpoints do not overlap",
			a:        NewInterval(at(10, 0), 30),
			b:        NewInterval(at(10, 30), 30),
			overlaps: false,
		},
		{
			name:     "touching endpoints reversed",
			a:        NewInterval(at(10, 30), 30),
			b:        NewInterval(at(10, 0), 30),
			overlaps: false,
		},
		{
			name:     "disjoint",
			a:        NewInterval(at(9, 0), 30),
			b:        NewInterval(at(12, 0), 30),
			overlaps: false,
		},
		{
			name:     "one minute of common ground",
			a:        NewInterval(at(10, 0), 31),
			b:        NewInterval(at(10, 30), 30),
			overlaps: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.overlaps, tt.b.Overlaps(tt.a))
		})
	}
}

func TestIntervalContains(t *testing.T) {
	i := NewInterval(at(10, 0), 30)

	assert.True(t, i.Contains(at(10, 0)), "start is inside")
	assert.True(t, i.Contains(at(10, 29)))
	assert.False(t, i.Contains(at(10, 30)), "end is outside, half-open")
	assert.False(t, i.Contains(at(9, 59)))
}

func TestProfessionalKey(t *testing.T) {
	ana := "  Ana "
	appt := &Appointment{Professional: &ana}
	assert.Equal(t, "Ana", appt.ProfessionalKey())

	// Разные написания имени — разные ключи
	anaLower := "ana"
	other := &Appointment{Professional: &anaLower}
	assert.NotEqual(t, appt.ProfessionalKey(), other.ProfessionalKey())

	unassigned := &Appointment{}
	assert.Equal(t, "", unassigned.ProfessionalKey())
}

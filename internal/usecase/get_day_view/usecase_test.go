package get_day_view

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierhub/SBM-SchedulingService/internal/domain"
)

type mockAppointmentRepo struct {
	appointments []*domain.Appointment
	lastFilter   domain.DayFilter
}

func (m *mockAppointmentRepo) GetByDay(ctx context.Context, filter domain.DayFilter) ([]*domain.Appointment, error) {
	m.lastFilter = filter
	if filter.IncludeCancelled {
		return m.appointments, nil
	}
	active := make([]*domain.Appointment, 0, len(m.appointments))
	for _, appt := range m.appointments {
		if appt.IsCancelled() {
			continue
		}
		active = append(active, appt)
	}
	return active, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var day = time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

func appt(id int64, hour, min, durationMinutes int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		StartsAt:        time.Date(2026, 3, 20, hour, min, 0, 0, time.UTC),
		DurationMinutes: durationMinutes,
		Status:          status,
	}
}

func TestExecuteOverlapLayout(t *testing.T) {
	repo := &mockAppointmentRepo{appointments: []*domain.Appointment{
		appt(1, 9, 0, 60, domain.StatusConfirmed),
		appt(2, 9, 30, 60, domain.StatusScheduled),
		appt(3, 14, 0, 30, domain.StatusScheduled),
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: day})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 3)

	// Пересекающаяся пара делит ширину пополам
	first, second, third := resp.Entries[0], resp.Entries[1], resp.Entries[2]
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, 2, first.ColumnCount)
	assert.Equal(t, 0, first.ColumnIndex)
	assert.InDelta(t, 50.0, first.WidthPct, 0.01)

	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, 2, second.ColumnCount)
	assert.Equal(t, 1, second.ColumnIndex)
	assert.InDelta(t, 50.0, second.OffsetPct, 0.01)

	// Одиночная запись занимает полную ширину
	assert.Equal(t, int64(3), third.ID)
	assert.Equal(t, 1, third.ColumnCount)
	assert.InDelta(t, 100.0, third.WidthPct, 0.01)
}

func TestExecuteCancelledEntries(t *testing.T) {
	repo := &mockAppointmentRepo{appointments: []*domain.Appointment{
		appt(1, 9, 0, 60, domain.StatusScheduled),
		appt(2, 9, 0, 60, domain.StatusCancelled),
	}}
	uc := NewUseCase(repo, nopLogger{})

	t.Run("hidden by default", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{Date: day})
		require.NoError(t, err)
		require.Len(t, resp.Entries, 1)
		assert.Equal(t, int64(1), resp.Entries[0].ID)
		// Отменённая запись не сжимает активную
		assert.Equal(t, 1, resp.Entries[0].ColumnCount)
	})

	t.Run("included on request at full width", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{Date: day, IncludeCancelled: true})
		require.NoError(t, err)
		require.Len(t, resp.Entries, 2)

		cancelled := resp.Entries[1]
		assert.Equal(t, int64(2), cancelled.ID)
		assert.Equal(t, "cancelled", cancelled.Status)
		assert.Equal(t, 1, cancelled.ColumnCount)
		assert.InDelta(t, 100.0, cancelled.WidthPct, 0.01)

		// Активная запись всё ещё не делит ширину с отменённой
		assert.Equal(t, 1, resp.Entries[0].ColumnCount)
	})
}

func TestExecutePassesFilter(t *testing.T) {
	repo := &mockAppointmentRepo{}
	uc := NewUseCase(repo, nopLogger{})

	ana := "Ana"
	_, err := uc.Execute(context.Background(), &Request{Date: day, Professional: &ana})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.Professional)
	assert.Equal(t, "Ana", *repo.lastFilter.Professional)
}

func TestExecuteInvalidInput(t *testing.T) {
	uc := NewUseCase(&mockAppointmentRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

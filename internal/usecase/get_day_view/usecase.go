package get_day_view

import (
	"context"
	"fmt"
	"sort"

	"github.com/atelierhub/SBM-SchedulingService/internal/domain"
	"github.com/atelierhub/SBM-SchedulingService/internal/layout"
)

// UseCase use case дневного календаря: записи дня с раскладкой пересечений
type UseCase struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute выполняет use case дневного календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayView: date=%s, professional=%v, includeCancelled=%v",
		req.Date.Format(domain.DateFormat), req.Professional, req.IncludeCancelled)

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем записи дня
	filter := domain.DayFilter{
		Day:              req.Date,
		Professional:     req.Professional,
		IncludeCancelled: req.IncludeCancelled,
	}

	appointments, err := uc.appointmentRepo.GetByDay(ctx, filter)
	if err != nil {
		uc.logger.Error("GetDayView: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 3. Отменённые записи в раскладке не участвуют
	active := make([]*domain.Appointment, 0, len(appointments))
	for _, appt := range appointments {
		if appt.IsCancelled() {
			continue
		}
		active = append(active, appt)
	}

	placements := layout.Pack(active)
	placementByID := make(map[int64]layout.Placement, len(placements))
	for _, p := range placements {
		placementByID[p.AppointmentID] = p
	}

	// 4. Собираем выдачу; отменённые записи получают полную ширину
	entries := make([]Entry, 0, len(appointments))
	for _, appt := range appointments {
		entry := Entry{
			ID:              appt.ID,
			CustomerID:      appt.CustomerID,
			ServiceID:       appt.ServiceID,
			StartsAt:        appt.StartsAt,
			DurationMinutes: appt.DurationMinutes,
			Status:          string(appt.Status),
			Professional:    appt.Professional,
			ServiceName:     appt.ServiceName,
			CustomerName:    appt.CustomerName,
			ColumnIndex:     0,
			ColumnCount:     1,
			WidthPct:        100.0,
			OffsetPct:       0.0,
		}

		if p, ok := placementByID[appt.ID]; ok {
			entry.ColumnIndex = p.ColumnIndex
			entry.ColumnCount = p.ColumnCount
			entry.WidthPct = p.WidthPct
			entry.OffsetPct = p.OffsetPct
		}

		entries = append(entries, entry)
	}

	// Сортировка по времени начала, затем по ID — стабильный порядок выдачи
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].StartsAt.Equal(entries[j].StartsAt) {
			return entries[i].ID < entries[j].ID
		}
		return entries[i].StartsAt.Before(entries[j].StartsAt)
	})

	return &Response{
		Date:    req.Date,
		Entries: entries,
	}, nil
}

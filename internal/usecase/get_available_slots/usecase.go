package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atelierhub/SBM-SchedulingService/internal/domain"
	catalogClient "github.com/atelierhub/SBM-SchedulingService/internal/integrations/catalogservice"
	"github.com/atelierhub/SBM-SchedulingService/internal/timegrid"
)

// UseCase use case классификации слотов дня (Slot Availability Resolver)
//
// Та же проверка пересечений (internal/conflict) используется и здесь при
// отрисовке слотов, и при финальной валидации создания/переноса записи —
// обе стороны не могут разойтись в том, что считается конфликтом.
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogClient   CatalogServiceClient
	grid            timegrid.Config
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogClient CatalogServiceClient,
	grid timegrid.Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogClient:   catalogClient,
		grid:            grid,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case классификации слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s, professional=%v, exclude=%d",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.Professional, req.ExcludeAppointmentID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу — её длительность определяет интервал-кандидат
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Получаем busy-интервалы дня
	// Если мастер выбран — только его записи; иначе записи всех мастеров
	// как консервативный фильтр
	filter := domain.DayFilter{
		Day:          req.Date,
		Professional: req.Professional,
	}

	busy, err := uc.appointmentRepo.GetByDay(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Классифицируем каждый слот сетки
	professional := ""
	if req.Professional != nil {
		professional = strings.TrimSpace(*req.Professional)
	}

	slots := classifySlots(
		uc.grid.DailySlots(),
		req.Date,
		now,
		service.DurationMinutes,
		professional,
		busy,
		req.ExcludeAppointmentID,
	)

	// 6. Список для отображения и авто-перевод выбора
	visible := visibleSlots(slots, req.Date, now)
	selected, moved, noAvailability := resolveSelection(slots, req.SelectedTime)

	if noAvailability {
		uc.logger.Info("GetAvailableSlots: no availability on %s for service=%d",
			req.Date.Format(domain.DateFormat), req.ServiceID)
	}

	return &Response{
		Date:           req.Date,
		ServiceID:      req.ServiceID,
		Professional:   req.Professional,
		Slots:          slots,
		Visible:        visible,
		Selected:       selected,
		SelectionMoved: moved,
		NoAvailability: noAvailability,
	}, nil
}

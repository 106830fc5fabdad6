package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atelierhub/SBM-SchedulingService/internal/conflict"
	"github.com/atelierhub/SBM-SchedulingService/internal/domain"
	apptStorage "github.com/atelierhub/SBM-SchedulingService/internal/infra/storage/appointment"
	catalogClient "github.com/atelierhub/SBM-SchedulingService/internal/integrations/catalogservice"
	"github.com/atelierhub/SBM-SchedulingService/internal/timegrid"
	"github.com/atelierhub/SBM-SchedulingService/pkg/ptr"
)

// UseCase use case для переноса записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogClient   CatalogServiceClient
	txManager       TransactionManager
	grid            timegrid.Config
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	grid timegrid.Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogClient:   catalogClient,
		txManager:       txManager,
		grid:            grid,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case переноса записи
// Использует сериализуемую транзакцию: строка записи и записи целевого дня
// блокируются (FOR UPDATE), финальная проверка пересечений исключает
// собственный интервал записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: id=%d, startsAt=%s, actor=%d",
		req.AppointmentID, req.StartsAt.Format(domain.DateTimeFormat), req.ActorCustomerID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Обоснование обязательно для self-service переноса
	if err := validateJustification(req.ActorCustomerID, req.Justification); err != nil {
		uc.logger.Warn("RescheduleAppointment: id=%d: %v", req.AppointmentID, err)
		return nil, err
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Валидация нового времени (рабочие часы, не в прошлом)
	if err := validateStartTime(req.StartsAt, now, uc.grid); err != nil {
		uc.logger.Warn("RescheduleAppointment: start time validation failed: %v", err)
		return nil, err
	}

	// 5. Если услуга меняется — получаем новую услугу до транзакции
	var newService *catalogClient.Service
	if req.ServiceID != nil {
		service, err := uc.catalogClient.GetService(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogClient.ErrServiceNotFound) {
				uc.logger.Warn("RescheduleAppointment: service id=%d not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if !service.Active {
			uc.logger.Warn("RescheduleAppointment: service id=%d is not active", *req.ServiceID)
			return nil, ErrServiceInactive
		}
		if service.DurationMinutes < domain.MinServiceDurationMinutes ||
			service.DurationMinutes > domain.MaxServiceDurationMinutes {
			uc.logger.Error("RescheduleAppointment: service id=%d has invalid duration %d",
				*req.ServiceID, service.DurationMinutes)
			return nil, fmt.Errorf("%w: service duration %d is out of range",
				ErrInternal, service.DurationMinutes)
		}
		newService = service
	}

	// Переменные для хранения результата
	var result *domain.Appointment
	var statusReset bool

	// 6. Проверки и обновление в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем запись с блокировкой (FOR UPDATE)
		appt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, apptStorage.ErrAppointmentNotFound) {
				uc.logger.Warn("RescheduleAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 6.2. Клиент может переносить только свою запись
		if req.ActorCustomerID != 0 && appt.CustomerID != req.ActorCustomerID {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d belongs to customer=%d, actor=%d",
				appt.ID, appt.CustomerID, req.ActorCustomerID)
			return ErrNotOwner
		}

		// 6.3. Проверяем, что статус допускает перенос
		if !appt.CanBeRescheduled() {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d has status=%s", appt.ID, appt.Status)
			return fmt.Errorf("%w: status is %s", ErrNotReschedulable, appt.Status)
		}

		// 6.4. Применяем изменения к копии
		updated := *appt
		updated.StartsAt = req.StartsAt

		if newService != nil {
			updated.ServiceID = newService.ID
			updated.DurationMinutes = newService.DurationMinutes
			updated.ServiceName = newService.Name
			updated.ServicePrice = ptr.Deref(newService.Price, 0)
		}

		if req.Professional != nil {
			updated.Professional = normalizeProfessional(req.Professional)
		}

		// 6.5. Понижение статуса: подтверждённая запись после переноса
		// требует повторного подтверждения
		outcome := domain.RescheduleStatus(appt.Status)
		updated.Status = outcome.Status
		statusReset = outcome.StatusReset

		// 6.6. Получаем записи целевого дня с блокировкой (FOR UPDATE)
		filter := domain.DayFilter{
			Day:          req.StartsAt,
			Professional: updated.Professional,
		}

		existing, err := uc.appointmentRepo.GetByDay(txCtx, filter)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 6.7. Проверяем пересечения, исключая собственный интервал записи
		if conflictErr := conflict.Detect(updated.Interval(), updated.ProfessionalKey(), existing, appt.ID); conflictErr != nil {
			uc.logger.Warn("RescheduleAppointment: %v", conflictErr)
			return fmt.Errorf("%w: %v", ErrConflict, conflictErr)
		}

		// 6.8. Сохраняем изменения
		if err := uc.appointmentRepo.UpdateSchedule(txCtx, &updated); err != nil {
			uc.logger.Error("RescheduleAppointment: failed to update appointment id=%d: %v", appt.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		result = &updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	if statusReset {
		uc.logger.Info("RescheduleAppointment: appointment id=%d demoted to %s, re-confirmation required",
			result.ID, result.Status)
	}
	uc.logger.Info("RescheduleAppointment: successfully rescheduled appointment id=%d to %s",
		result.ID, result.StartsAt.Format(domain.DateTimeFormat))

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		CustomerID:      result.CustomerID,
		ServiceID:       result.ServiceID,
		StartsAt:        result.StartsAt,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		Professional:    result.Professional,
		StatusReset:     statusReset,
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		CustomerName:    result.CustomerName,
		Notes:           result.Notes,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// normalizeProfessional обрезает пробелы и превращает пустую строку в nil
func normalizeProfessional(p *string) *string {
	if p == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*p)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

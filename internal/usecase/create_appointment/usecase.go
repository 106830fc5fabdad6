package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atelierhub/SBM-SchedulingService/internal/conflict"
	"github.com/atelierhub/SBM-SchedulingService/internal/domain"
	catalogClient "github.com/atelierhub/SBM-SchedulingService/internal/integrations/catalogservice"
	customerClient "github.com/atelierhub/SBM-SchedulingService/internal/integrations/customerservice"
	"github.com/atelierhub/SBM-SchedulingService/internal/timegrid"
	"github.com/atelierhub/SBM-SchedulingService/pkg/ptr"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogClient   CatalogServiceClient
	customerClient  CustomerServiceClient
	txManager       TransactionManager
	grid            timegrid.Config
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogClient CatalogServiceClient,
	customerClient CustomerServiceClient,
	txManager TransactionManager,
	grid timegrid.Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogClient:   catalogClient,
		customerClient:  customerClient,
		txManager:       txManager,
		grid:            grid,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// финальная проверка пересечений выполняется по заблокированным строкам
// дня, поэтому две конкурентные записи на один слот не могут пройти обе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%d, service=%d, startsAt=%s, professional=%v",
		req.CustomerID, req.ServiceID, req.StartsAt.Format(domain.DateTimeFormat), req.Professional)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация времени начала (рабочие часы, не в прошлом)
	if err := validateStartTime(req.StartsAt, now, uc.grid); err != nil {
		uc.logger.Warn("CreateAppointment: start time validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем услугу — её длительность определяет занимаемый интервал
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.Active {
		uc.logger.Warn("CreateAppointment: service id=%d is not active", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// Каталог — внешняя система, его данным не доверяем слепо
	if service.DurationMinutes < domain.MinServiceDurationMinutes ||
		service.DurationMinutes > domain.MaxServiceDurationMinutes {
		uc.logger.Error("CreateAppointment: service id=%d has invalid duration %d",
			req.ServiceID, service.DurationMinutes)
		return nil, fmt.Errorf("%w: service duration %d is out of range",
			ErrInternal, service.DurationMinutes)
	}

	// 5. Получаем клиента
	customer, err := uc.customerClient.GetCustomer(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, customerClient.ErrCustomerNotFound) {
			uc.logger.Warn("CreateAppointment: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	professional := normalizeProfessional(req.Professional)

	status := domain.StatusScheduled
	if req.Confirm {
		status = domain.StatusConfirmed
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 6. Финальная проверка пересечений и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем записи дня с блокировкой (FOR UPDATE)
		filter := domain.DayFilter{
			Day:          req.StartsAt,
			Professional: professional,
		}

		existing, err := uc.appointmentRepo.GetByDay(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 6.2. Проверяем пересечения тем же предикатом, что и при
		// отрисовке слотов
		candidate := domain.NewInterval(req.StartsAt, service.DurationMinutes)
		key := ""
		if professional != nil {
			key = *professional
		}

		if conflictErr := conflict.Detect(candidate, key, existing, 0); conflictErr != nil {
			uc.logger.Warn("CreateAppointment: %v", conflictErr)
			return fmt.Errorf("%w: %v", ErrConflict, conflictErr)
		}

		// 6.3. Создаем запись с денормализацией данных
		appt := &domain.Appointment{
			CustomerID:      req.CustomerID,
			ServiceID:       req.ServiceID,
			StartsAt:        req.StartsAt,
			DurationMinutes: service.DurationMinutes,
			Status:          status,
			Professional:    professional,
			// Денормализация данных услуги и клиента
			ServiceName:  service.Name,
			ServicePrice: ptr.Deref(service.Price, 0),
			CustomerName: customer.Name,
			// Заметки
			Notes: req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		CustomerID:      result.CustomerID,
		ServiceID:       result.ServiceID,
		StartsAt:        result.StartsAt,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		Professional:    result.Professional,
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		CustomerName:    result.CustomerName,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
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

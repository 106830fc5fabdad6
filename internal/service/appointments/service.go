package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atelierhub/SBM-SchedulingService/internal/domain"
	apptRepo "github.com/atelierhub/SBM-SchedulingService/internal/infra/storage/appointment"
	"github.com/atelierhub/SBM-SchedulingService/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// GetCustomerAppointments получает историю записей клиента
// Опционально фильтрует по статусу
func (s *Service) GetCustomerAppointments(ctx context.Context, req *models.GetCustomerAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetCustomerAppointments: fetching appointments for customer=%d, status=%v",
		req.CustomerID, req.Status)

	if req.CustomerID <= 0 {
		return nil, fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	// Конвертируем статус из строки в domain.AppointmentStatus
	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerAppointments: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appointments, err := s.appointmentRepo.GetByCustomerID(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerAppointments: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerAppointments: successfully fetched %d appointments for customer=%d",
		len(appointments), req.CustomerID)
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus обновляет статус записи по правилам жизненного цикла:
// scheduled -> confirmed -> completed -> invoiced
// Отмена идёт через Cancel, не через UpdateStatus.
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s", appointmentID, req.Status)

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, appointmentID)
		return fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	if newStatus == domain.StatusCancelled {
		s.logger.Warn("UpdateStatus: cancellation of appointment id=%d must go through Cancel", appointmentID)
		return fmt.Errorf("%w: use the cancel operation", ErrIllegalTransition)
	}

	// Получаем запись
	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Проверяем допустимость перехода
	if !domain.CanTransition(appt.Status, newStatus) {
		s.logger.Warn("UpdateStatus: illegal transition %s -> %s for appointment id=%d",
			appt.Status, newStatus, appointmentID)
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, appt.Status, newStatus)
	}

	// Обновляем статус
	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, newStatus); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found during update", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", appointmentID, newStatus)
	return nil
}

// Cancel отменяет запись
// Сотрудник может отменить любую запись; клиент — только свою и только
// с обоснованием (причина не короче domain.MinJustificationLength символов)
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d, actor=%d", appointmentID, req.ActorCustomerID)

	if len(req.Reason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: reason too long for appointment id=%d", appointmentID)
		return fmt.Errorf("%w: reason must not exceed %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	// Получаем запись
	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Self-service: клиент отменяет только свою запись и только с обоснованием
	if req.ActorCustomerID != 0 {
		if appt.CustomerID != req.ActorCustomerID {
			s.logger.Warn("Cancel: access denied for customer=%d to appointment id=%d",
				req.ActorCustomerID, appointmentID)
			return ErrAccessDenied
		}
		if len(strings.TrimSpace(req.Reason)) < domain.MinJustificationLength {
			s.logger.Warn("Cancel: justification missing for self-service cancel of appointment id=%d", appointmentID)
			return fmt.Errorf("%w: at least %d characters", ErrJustificationRequired, domain.MinJustificationLength)
		}
	}

	// Проверяем, можно ли отменить запись
	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appt.Status)
		return fmt.Errorf("%w: status is %s", ErrCannotCancel, appt.Status)
	}

	// Отменяем запись
	if err := s.appointmentRepo.Cancel(ctx, appointmentID, strings.TrimSpace(req.Reason)); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", appointmentID)
	return nil
}

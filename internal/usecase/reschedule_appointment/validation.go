package reschedule_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/atelierhub/SBM-SchedulingService/internal/domain"
	"github.com/atelierhub/SBM-SchedulingService/internal/timegrid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if req.StartsAt.IsZero() {
		return fmt.Errorf("%w: startsAt is required", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.ActorCustomerID < 0 {
		return fmt.Errorf("%w: actorCustomerID must not be negative", ErrInvalidInput)
	}

	if req.Professional != nil && len(*req.Professional) > domain.MaxProfessionalLength {
		return fmt.Errorf("%w: professional must not exceed %d characters",
			ErrInvalidInput, domain.MaxProfessionalLength)
	}

	return nil
}

// validateStartTime проверяет, что новое время внутри рабочих часов и
// не в прошлом. Выравнивание по сетке не требуется: запись вплотную к
// окончанию предыдущей допустима.
func validateStartTime(startsAt, now time.Time, grid timegrid.Config) error {
	if !grid.WithinBusinessHours(startsAt) {
		return fmt.Errorf("%w: start time must be between %s and %s",
			ErrOutsideBusinessHours, grid.DayStart, grid.DayEnd)
	}

	if !startsAt.After(now) {
		return ErrPastTime
	}

	return nil
}

// validateJustification проверяет обоснование self-service переноса.
// Для сотрудника (actorCustomerID == 0) обоснование не требуется.
func validateJustification(actorCustomerID int64, justification *string) error {
	if actorCustomerID == 0 {
		return nil
	}

	if justification == nil || len(strings.TrimSpace(*justification)) < domain.MinJustificationLength {
		return fmt.Errorf("%w: at least %d characters", ErrJustificationRequired, domain.MinJustificationLength)
	}

	return nil
}

package create_appointment

import (
	"fmt"
	"time"

	"github.com/atelierhub/SBM-SchedulingService/internal/domain"
	"github.com/atelierhub/SBM-SchedulingService/internal/timegrid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StartsAt.IsZero() {
		return fmt.Errorf("%w: startsAt is required", ErrInvalidInput)
	}

	if req.Professional != nil && len(*req.Professional) > domain.MaxProfessionalLength {
		return fmt.Errorf("%w: professional must not exceed %d characters",
			ErrInvalidInput, domain.MaxProfessionalLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters",
			ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateStartTime проверяет, что время начала внутри рабочих часов и
// не в прошлом. Выравнивание по сетке не требуется: сетка — подсказка
// для формы, запись вплотную к окончанию предыдущей (например 09:40
// после услуги 09:00-09:40) допустима.
func validateStartTime(startsAt, now time.Time, grid timegrid.Config) error {
	if !grid.WithinBusinessHours(startsAt) {
		return fmt.Errorf("%w: start time must be between %s and %s",
			ErrOutsideBusinessHours, grid.DayStart, grid.DayEnd)
	}

	// Прошлое проверяется по точному моменту, а не по календарному дню:
	// сегодня в 14:05 запись на 14:00 уже недоступна
	if !startsAt.After(now) {
		return ErrPastTime
	}

	return nil
}

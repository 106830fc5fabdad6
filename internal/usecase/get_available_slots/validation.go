package get_available_slots

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ExcludeAppointmentID < 0 {
		return fmt.Errorf("%w: excludeAppointmentID must not be negative", ErrInvalidInput)
	}

	if !req.SelectedTime.IsZero() {
		if err := req.SelectedTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid selected time: %v", ErrInvalidInput, err)
		}
	}

	return nil
}

package reschedule_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrServiceNotFound возвращается, когда новая услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("reschedule_appointment: service not found")

	// ErrServiceInactive возвращается, когда новая услуга снята с продажи
	ErrServiceInactive = errors.New("reschedule_appointment: service is not active")

	// ErrNotReschedulable возвращается, когда статус записи не допускает перенос
	// (completed, invoiced и cancelled записи не переносятся)
	ErrNotReschedulable = errors.New("reschedule_appointment: appointment cannot be rescheduled in its current status")

	// ErrNotOwner возвращается, когда клиент пытается перенести чужую запись
	ErrNotOwner = errors.New("reschedule_appointment: appointment belongs to another customer")

	// ErrJustificationRequired возвращается, когда клиент переносит свою запись
	// без обоснования
	ErrJustificationRequired = errors.New("reschedule_appointment: justification is required")

	// ErrPastTime возвращается при попытке переноса на прошедшее время
	ErrPastTime = errors.New("reschedule_appointment: new time is in the past")

	// ErrOutsideBusinessHours возвращается, когда новое время вне рабочих часов
	ErrOutsideBusinessHours = errors.New("reschedule_appointment: time is outside business hours")

	// ErrConflict возвращается, когда новый интервал пересекается с другой записью
	ErrConflict = errors.New("reschedule_appointment: new slot conflicts with an existing appointment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_appointment: internal error")
)

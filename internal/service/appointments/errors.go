package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied возвращается, когда клиент обращается к чужой записи
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда запись не может быть отменена
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrIllegalTransition возвращается при недопустимом переходе статуса
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrJustificationRequired возвращается, когда клиент отменяет свою запись
	// без обоснования
	ErrJustificationRequired = errors.New("justification is required")

	// ErrInvalidStatus возвращается при попытке установить неизвестный статус
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

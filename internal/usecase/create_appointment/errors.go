package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrServiceInactive возвращается, когда услуга снята с продажи
	ErrServiceInactive = errors.New("create_appointment: service is not active")

	// ErrCustomerNotFound возвращается, когда клиент не найден в реестре
	ErrCustomerNotFound = errors.New("create_appointment: customer not found")

	// ErrPastTime возвращается при попытке записи на прошедшее время
	ErrPastTime = errors.New("create_appointment: appointment time is in the past")

	// ErrOutsideBusinessHours возвращается, когда время начала вне рабочих часов
	ErrOutsideBusinessHours = errors.New("create_appointment: time is outside business hours")

	// ErrConflict возвращается, когда интервал пересекается с существующей записью
	ErrConflict = errors.New("create_appointment: slot conflicts with an existing appointment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

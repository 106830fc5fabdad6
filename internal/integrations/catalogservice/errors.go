package catalogservice

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("catalog service not found")

	// ErrInvalidDuration возвращается, когда каталог вернул услугу с
	// некорректной длительностью
	ErrInvalidDuration = errors.New("catalogservice client: service has invalid duration")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")
)

package reschedule_appointment

import (
	"time"
)

// Request модель запроса на перенос записи
type Request struct {
	AppointmentID int64     // ID переносимой записи
	StartsAt      time.Time // Новые дата и время начала

	// ServiceID — новая услуга (опционально, nil - услуга не меняется).
	// Смена услуги меняет длительность занимаемого интервала.
	ServiceID *int64

	// Professional — новый мастер (опционально, nil - мастер не меняется).
	// Пустая строка снимает назначение мастера.
	Professional *string

	// ActorCustomerID — ID клиента, если перенос выполняет сам клиент
	// через self-service форму. 0 — перенос выполняет сотрудник.
	ActorCustomerID int64

	// Justification — обоснование переноса. Обязательно для self-service.
	Justification *string
}

// Response модель ответа с перенесённой записью
type Response struct {
	ID              int64     // ID записи
	CustomerID      int64     // ID клиента
	ServiceID       int64     // ID услуги после переноса
	StartsAt        time.Time // Новые дата и время начала
	DurationMinutes int       // Длительность в минутах
	Status          string    // Статус записи после переноса
	Professional    *string   // Мастер после переноса

	// StatusReset true, если подтверждённая запись была понижена обратно
	// до scheduled — клиенту нужно подтвердить новое время заново
	StatusReset bool

	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	CustomerName string  // Имя клиента
	Notes        *string // Заметки

	UpdatedAt time.Time // Время обновления
}

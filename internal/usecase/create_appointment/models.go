package create_appointment

import (
	"time"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerID int64     // ID клиента из реестра
	ServiceID  int64     // ID услуги из каталога
	StartsAt   time.Time // Дата и время начала записи

	// Professional — мастер, к которому идёт запись (опционально).
	// nil или пустая строка — мастер не назначен.
	Professional *string

	Notes *string // Дополнительные заметки (опционально)

	// Confirm — сразу подтвердить запись (запись, созданная сотрудником
	// по телефону). Публичная форма всегда создаёт scheduled.
	Confirm bool
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64     // ID созданной записи
	CustomerID      int64     // ID клиента
	ServiceID       int64     // ID услуги
	StartsAt        time.Time // Дата и время начала
	DurationMinutes int       // Длительность в минутах
	Status          string    // Статус записи
	Professional    *string   // Назначенный мастер

	// Денормализованные данные
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	CustomerName string  // Имя клиента
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

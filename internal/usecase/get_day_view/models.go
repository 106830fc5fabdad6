package get_day_view

import (
	"time"
)

// Request модель запроса дневного календаря
type Request struct {
	Date time.Time // Календарный день

	// Professional — показать только записи одного мастера (опционально)
	Professional *string

	// IncludeCancelled — включать ли отменённые записи в выдачу.
	// На раскладку они не влияют в любом случае.
	IncludeCancelled bool
}

// Entry запись дневного календаря с её горизонтальным размещением
type Entry struct {
	ID              int64
	CustomerID      int64
	ServiceID       int64
	StartsAt        time.Time
	DurationMinutes int
	Status          string
	Professional    *string
	ServiceName     string
	CustomerName    string

	// Горизонтальное размещение при пересечении с другими записями
	ColumnIndex int
	ColumnCount int
	WidthPct    float64
	OffsetPct   float64
}

// Response модель ответа дневного календаря
type Response struct {
	Date    time.Time
	Entries []Entry
}

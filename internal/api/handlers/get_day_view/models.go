package get_day_view

import (
	"github.com/atelierhub/SBM-SchedulingService/internal/domain"
	getDayView "github.com/atelierhub/SBM-SchedulingService/internal/usecase/get_day_view"
)

// EntryResponse HTTP модель записи дневного календаря
type EntryResponse struct {
	ID              int64   `json:"id"`
	CustomerID      int64   `json:"customerId"`
	ServiceID       int64   `json:"serviceId"`
	StartTime       string  `json:"startTime"` // "10:00"
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Professional    *string `json:"professional,omitempty"`
	ServiceName     string  `json:"serviceName"`
	CustomerName    string  `json:"customerName"`

	// Горизонтальное размещение при пересечении с другими записями
	ColumnIndex int     `json:"columnIndex"`
	ColumnCount int     `json:"columnCount"`
	WidthPct    float64 `json:"widthPct"`
	OffsetPct   float64 `json:"offsetPct"`
}

// DayViewResponse HTTP модель ответа дневного календаря
type DayViewResponse struct {
	Date    string          `json:"date"` // "2026-03-14"
	Entries []EntryResponse `json:"entries"`
}

// FromUseCaseResponse конвертирует модель use case в HTTP ответ
func FromUseCaseResponse(resp *getDayView.Response) *DayViewResponse {
	entries := make([]EntryResponse, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		entries = append(entries, EntryResponse{
			ID:              e.ID,
			CustomerID:      e.CustomerID,
			ServiceID:       e.ServiceID,
			StartTime:       e.StartsAt.Format(domain.TimeFormat),
			DurationMinutes: e.DurationMinutes,
			Status:          e.Status,
			Professional:    e.Professional,
			ServiceName:     e.ServiceName,
			CustomerName:    e.CustomerName,
			ColumnIndex:     e.ColumnIndex,
			ColumnCount:     e.ColumnCount,
			WidthPct:        e.WidthPct,
			OffsetPct:       e.OffsetPct,
		})
	}

	return &DayViewResponse{
		Date:    resp.Date.Format(domain.DateFormat),
		Entries: entries,
	}
}

package reschedule_appointment

import (
	"time"

	"github.com/atelierhub/SBM-SchedulingService/internal/domain"
	rescheduleAppointment "github.com/atelierhub/SBM-SchedulingService/internal/usecase/reschedule_appointment"
)

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	Date         string  `json:"date"`      // "2026-03-14"
	StartTime    string  `json:"startTime"` // "10:00"
	ServiceID    *int64  `json:"serviceId,omitempty"`
	Professional *string `json:"professional,omitempty"`

	// SelfService true, когда запись переносит сам клиент
	SelfService   bool    `json:"selfService,omitempty"`
	Justification *string `json:"justification,omitempty"`
}

// RescheduleResponse HTTP response model
type RescheduleResponse struct {
	ID              int64   `json:"id"`
	CustomerID      int64   `json:"customerId"`
	ServiceID       int64   `json:"serviceId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Professional    *string `json:"professional,omitempty"`

	// StatusReset true, если подтверждённая запись была понижена до scheduled
	StatusReset bool `json:"statusReset"`

	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	CustomerName string  `json:"customerName"`
	Notes        *string `json:"notes,omitempty"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleRequest) ToUseCaseRequest(appointmentID, actorCustomerID int64) (*rescheduleAppointment.Request, error) {
	startsAt, err := time.Parse(domain.DateTimeFormat, r.Date+" "+r.StartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleAppointment.Request{
		AppointmentID:   appointmentID,
		StartsAt:        startsAt,
		ServiceID:       r.ServiceID,
		Professional:    r.Professional,
		ActorCustomerID: actorCustomerID,
		Justification:   r.Justification,
	}, nil
}

// FromUseCaseResponse конвертирует модель use case в HTTP ответ
func FromUseCaseResponse(resp *rescheduleAppointment.Response) *RescheduleResponse {
	return &RescheduleResponse{
		ID:              resp.ID,
		CustomerID:      resp.CustomerID,
		ServiceID:       resp.ServiceID,
		Date:            resp.StartsAt.Format(domain.DateFormat),
		StartTime:       resp.StartsAt.Format(domain.TimeFormat),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Professional:    resp.Professional,
		StatusReset:     resp.StatusReset,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		CustomerName:    resp.CustomerName,
		Notes:           resp.Notes,
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}

package create_appointment

import (
	"time"

	"github.com/atelierhub/SBM-SchedulingService/internal/domain"
	createAppointment "github.com/atelierhub/SBM-SchedulingService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CustomerID   int64   `json:"customerId"`
	ServiceID    int64   `json:"serviceId"`
	Date         string  `json:"date"`      // "2026-03-14"
	StartTime    string  `json:"startTime"` // "10:00"
	Professional *string `json:"professional,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	Confirm      bool    `json:"confirm,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	CustomerID      int64   `json:"customerId"`
	ServiceID       int64   `json:"serviceId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Professional    *string `json:"professional,omitempty"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	CustomerName    string  `json:"customerName"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// allowConfirm false для публичной формы: она всегда создаёт scheduled
func (r *CreateAppointmentRequest) ToUseCaseRequest(allowConfirm bool) (*createAppointment.Request, error) {
	startsAt, err := time.Parse(domain.DateTimeFormat, r.Date+" "+r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		CustomerID:   r.CustomerID,
		ServiceID:    r.ServiceID,
		StartsAt:     startsAt,
		Professional: r.Professional,
		Notes:        r.Notes,
		Confirm:      allowConfirm && r.Confirm,
	}, nil
}

// FromUseCaseResponse конвертирует модель use case в HTTP ответ
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		CustomerID:      resp.CustomerID,
		ServiceID:       resp.ServiceID,
		Date:            resp.StartsAt.Format(domain.DateFormat),
		StartTime:       resp.StartsAt.Format(domain.TimeFormat),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Professional:    resp.Professional,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		CustomerName:    resp.CustomerName,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}

package models

import (
	"errors"
	"time"

	"github.com/atelierhub/SBM-SchedulingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	// ActorCustomerID — ID клиента, если отмену выполняет сам клиент
	// через self-service форму. 0 — отмену выполняет сотрудник.
	ActorCustomerID int64 `json:"actorCustomerId"`

	// Reason — причина отмены. Для self-service обязательна и выступает
	// обоснованием.
	Reason string `json:"reason"`
}

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetCustomerAppointmentsRequest запрос истории записей клиента
type GetCustomerAppointmentsRequest struct {
	CustomerID int64   `json:"customerId"`
	Status     *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	CustomerID      int64   `json:"customerId"`
	ServiceID       int64   `json:"serviceId"`
	StartsAt        string  `json:"startsAt"` // "2026-03-14 10:00"
	Date            string  `json:"date"`     // "2026-03-14"
	StartTime       string  `json:"startTime"` // "10:00"
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Professional    *string `json:"professional,omitempty"`

	// Денормализованные данные
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	CustomerName string  `json:"customerName"`
	Notes        *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:              a.ID,
		CustomerID:      a.CustomerID,
		ServiceID:       a.ServiceID,
		StartsAt:        a.StartsAt.Format(domain.DateTimeFormat),
		Date:            a.StartsAt.Format(domain.DateFormat),
		StartTime:       a.StartsAt.Format(domain.TimeFormat),
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		Professional:    a.Professional,
		ServiceName:     a.ServiceName,
		ServicePrice:    a.ServicePrice,
		CustomerName:    a.CustomerName,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}

	resp.CancellationReason = a.CancellationReason
	if a.CancelledAt != nil {
		cancelledAt := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		result = append(result, *FromDomainAppointment(a))
	}
	return &AppointmentListResponse{Appointments: result}
}

// ToDomainAppointmentStatus конвертирует строку в domain статус
func ToDomainAppointmentStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	if !domain.ValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}

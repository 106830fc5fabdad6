package get_customer_appointments

import (
	"context"

	"github.com/atelierhub/SBM-SchedulingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetCustomerAppointments(ctx context.Context, req *models.GetCustomerAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

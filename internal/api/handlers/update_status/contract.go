package update_status

import (
	"context"

	"github.com/atelierhub/SBM-SchedulingService/internal/service/appointments/models"
)

type AppointmentService interface {
	UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

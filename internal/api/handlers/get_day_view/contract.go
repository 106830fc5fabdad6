package get_day_view

import (
	"context"

	getDayView "github.com/atelierhub/SBM-SchedulingService/internal/usecase/get_day_view"
)

type GetDayViewUseCase interface {
	Execute(ctx context.Context, req *getDayView.Request) (*getDayView.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

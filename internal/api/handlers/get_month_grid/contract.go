package get_month_grid

import (
	"github.com/atelierhub/SBM-SchedulingService/internal/service/calendar"
)

type CalendarService interface {
	MonthGrid(year, month int) (*calendar.MonthGridResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

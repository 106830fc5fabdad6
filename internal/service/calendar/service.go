package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/atelierhub/SBM-SchedulingService/internal/timegrid"
)

var (
	// ErrInvalidInput возвращается при некорректных годе или месяце
	ErrInvalidInput = errors.New("calendar: invalid input data")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Service сервис месячной сетки для календаря выбора даты
type Service struct {
	logger Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(logger Logger) *Service {
	return &Service{logger: logger}
}

// Week неделя месячной сетки, всегда 7 дней начиная с воскресенья
type Week struct {
	Days []Day `json:"days"`
}

// Day ячейка месячной сетки
type Day struct {
	Date    string `json:"date"` // "2026-03-14"
	Day     int    `json:"day"`
	InMonth bool   `json:"inMonth"`
}

// MonthGridResponse ответ с месячной сеткой
type MonthGridResponse struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Weeks []Week `json:"weeks"`
}

// MonthGrid строит месячную сетку: полные недели с воскресенья, ведущие и
// замыкающие дни соседних месяцев помечены InMonth=false
func (s *Service) MonthGrid(year, month int) (*MonthGridResponse, error) {
	if year < 1970 || year > 9999 {
		s.logger.Warn("MonthGrid: invalid year=%d", year)
		return nil, fmt.Errorf("%w: year out of range", ErrInvalidInput)
	}
	if month < 1 || month > 12 {
		s.logger.Warn("MonthGrid: invalid month=%d", month)
		return nil, fmt.Errorf("%w: month must be 1..12", ErrInvalidInput)
	}

	grid := timegrid.MonthGrid(year, time.Month(month))

	weeks := make([]Week, 0, len(grid))
	for _, row := range grid {
		week := Week{Days: make([]Day, 0, len(row))}
		for _, cell := range row {
			week.Days = append(week.Days, Day{
				Date:    cell.Date.Format("2006-01-02"),
				Day:     cell.Date.Day(),
				InMonth: cell.InMonth,
			})
		}
		weeks = append(weeks, week)
	}

	s.logger.Info("MonthGrid: built grid for %d-%02d, %d weeks", year, month, len(weeks))

	return &MonthGridResponse{
		Year:  year,
		Month: month,
		Weeks: weeks,
	}, nil
}

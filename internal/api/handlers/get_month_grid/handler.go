package get_month_grid

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/atelierhub/SBM-SchedulingService/internal/api/handlers"
	"github.com/atelierhub/SBM-SchedulingService/internal/service/calendar"
)

const (
	msgInvalidYear  = "некорректный год"
	msgInvalidMonth = "некорректный месяц"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/{year}/{month}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		h.logger.Warn("GET /calendar/{year}/{month} - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		h.logger.Warn("GET /calendar/{year}/{month} - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.service.MonthGrid(year, month)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar/{year}/{month} - Invalid input: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /calendar/{year}/{month} - Failed to build grid: year=%d, month=%d, error=%v",
				year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/{year}/{month} - Grid built successfully: year=%d, month=%d", year, month)
	handlers.RespondJSON(w, http.StatusOK, result)
}

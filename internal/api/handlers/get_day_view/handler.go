package get_day_view

import (
	"errors"
	"net/http"
	"time"

	"github.com/atelierhub/SBM-SchedulingService/internal/api/handlers"
	"github.com/atelierhub/SBM-SchedulingService/internal/domain"
	getDayView "github.com/atelierhub/SBM-SchedulingService/internal/usecase/get_day_view"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetDayViewUseCase
	logger  Logger
}

func NewHandler(useCase GetDayViewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/day-view
// Query params: date (required, YYYY-MM-DD), professional, includeCancelled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /day-view - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /day-view - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var professional *string
	if p := query.Get("professional"); p != "" {
		professional = &p
	}

	req := &getDayView.Request{
		Date:             date,
		Professional:     professional,
		IncludeCancelled: query.Get("includeCancelled") == "true",
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getDayView.ErrInvalidInput):
			h.logger.Warn("GET /day-view - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /day-view - Failed to get day view: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /day-view - Day view retrieved successfully: date=%s, entries=%d",
		dateStr, len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, response)
}

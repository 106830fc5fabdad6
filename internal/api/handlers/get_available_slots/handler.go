package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/atelierhub/SBM-SchedulingService/internal/api/handlers"
	getAvailableSlots "github.com/atelierhub/SBM-SchedulingService/internal/usecase/get_available_slots"
)

const (
	msgMissingServiceID = "ID услуги обязателен"
	msgInvalidServiceID = "некорректный ID услуги"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidExcludeID = "некорректный ID исключаемой записи"
	msgInvalidSelected  = "некорректный формат выбранного времени, ожидается HH:MM"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: serviceId (required), date (required, YYYY-MM-DD),
// professional, excludeAppointmentId, selected (HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Извлекаем serviceId из query параметров
	serviceIDStr := query.Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Необязательные параметры
	var professional *string
	if p := query.Get("professional"); p != "" {
		professional = &p
	}

	var excludeID int64
	if excludeStr := query.Get("excludeAppointmentId"); excludeStr != "" {
		excludeID, err = strconv.ParseInt(excludeStr, 10, 64)
		if err != nil || excludeID < 0 {
			h.logger.Warn("GET /slots - Invalid exclude appointment ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
	}

	selectedStr := query.Get("selected")

	// Формируем запрос к use case (с парсингом даты и времени)
	useCaseReq, err := ToUseCaseRequest(dateStr, serviceID, professional, excludeID, selectedStr)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid request params: %v", err)
		if selectedStr != "" && dateStr != "" {
			handlers.RespondBadRequest(w, msgInvalidSelected)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /slots - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /slots - Failed to get slots: service_id=%d, date=%s, error=%v",
				serviceID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /slots - Slots retrieved successfully: service_id=%d, date=%s, slots_count=%d",
		serviceID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}

package create_appointment

import (
	"errors"
	"net/http"

	"github.com/atelierhub/SBM-SchedulingService/internal/api/handlers"
	createAppointment "github.com/atelierhub/SBM-SchedulingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateTime      = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgConflict             = "выбранное время пересекается с существующей записью"
	msgServiceNotFound      = "услуга не найдена"
	msgServiceInactive      = "услуга недоступна для записи"
	msgCustomerNotFound     = "клиент не найден"
	msgPastTime             = "выбранное время уже прошло"
	msgOutsideBusinessHours = "выбранное время вне рабочих часов"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
// Внутренняя форма сотрудника: может сразу подтвердить запись
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, true)
}

// HandlePublic POST /api/v1/public/appointments
// Публичная self-service форма: запись всегда создаётся scheduled
func (h *Handler) HandlePublic(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, false)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, allowConfirm bool) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(allowConfirm)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrConflict):
			h.logger.Warn("POST /appointments - Conflict: customer_id=%d, service_id=%d", req.CustomerID, req.ServiceID)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrServiceInactive):
			h.logger.Warn("POST /appointments - Service inactive: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, createAppointment.ErrCustomerNotFound):
			h.logger.Warn("POST /appointments - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createAppointment.ErrPastTime):
			h.logger.Warn("POST /appointments - Past time: customer_id=%d, date=%s %s", req.CustomerID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgPastTime)

		case errors.Is(err, createAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("POST /appointments - Outside business hours: date=%s %s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: customer_id=%d, service_id=%d, error=%v",
				req.CustomerID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, customer_id=%d, status=%s",
		result.ID, result.CustomerID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

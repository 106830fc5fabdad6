package reschedule_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/atelierhub/SBM-SchedulingService/internal/api/handlers"
	"github.com/atelierhub/SBM-SchedulingService/internal/api/middleware"
	rescheduleAppointment "github.com/atelierhub/SBM-SchedulingService/internal/usecase/reschedule_appointment"
)

const (
	msgInvalidAppointmentID  = "некорректный ID записи"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDateTime       = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgNotFound              = "запись не найдена"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgForbidden             = "доступ запрещен"
	msgNotReschedulable      = "запись не может быть перенесена в текущем статусе"
	msgJustificationRequired = "требуется обоснование переноса"
	msgConflict              = "новое время пересекается с существующей записью"
	msgServiceNotFound       = "услуга не найдена"
	msgServiceInactive       = "услуга недоступна для записи"
	msgPastTime              = "выбранное время уже прошло"
	msgOutsideBusinessHours  = "выбранное время вне рабочих часов"
)

type Handler struct {
	useCase RescheduleAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{appointmentId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id}/schedule - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Self-service перенос действует от имени клиента из заголовка
	var actorCustomerID int64
	if req.SelfService {
		userID, ok := middleware.GetUserID(r.Context())
		if !ok {
			h.logger.Warn("PUT /appointments/{id}/schedule - Missing user ID for self-service reschedule")
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}
		actorCustomerID = userID
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID, actorCustomerID)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id}/schedule - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id}/schedule - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleAppointment.ErrNotOwner):
			h.logger.Warn("PUT /appointments/{id}/schedule - Access denied: appointment_id=%d, actor=%d",
				appointmentID, actorCustomerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rescheduleAppointment.ErrNotReschedulable):
			h.logger.Warn("PUT /appointments/{id}/schedule - Not reschedulable: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgNotReschedulable)

		case errors.Is(err, rescheduleAppointment.ErrJustificationRequired):
			h.logger.Warn("PUT /appointments/{id}/schedule - Justification required: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgJustificationRequired)

		case errors.Is(err, rescheduleAppointment.ErrConflict):
			h.logger.Warn("PUT /appointments/{id}/schedule - Conflict: appointment_id=%d, date=%s %s",
				appointmentID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, rescheduleAppointment.ErrServiceNotFound):
			h.logger.Warn("PUT /appointments/{id}/schedule - Service not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, rescheduleAppointment.ErrServiceInactive):
			h.logger.Warn("PUT /appointments/{id}/schedule - Service inactive: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, rescheduleAppointment.ErrPastTime):
			h.logger.Warn("PUT /appointments/{id}/schedule - Past time: appointment_id=%d, date=%s %s",
				appointmentID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgPastTime)

		case errors.Is(err, rescheduleAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("PUT /appointments/{id}/schedule - Outside business hours: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, rescheduleAppointment.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{id}/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /appointments/{id}/schedule - Failed to reschedule: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /appointments/{id}/schedule - Appointment rescheduled successfully: appointment_id=%d, status_reset=%v",
		result.ID, result.StatusReset)
	handlers.RespondJSON(w, http.StatusOK, response)
}

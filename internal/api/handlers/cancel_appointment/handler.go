package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/atelierhub/SBM-SchedulingService/internal/api/handlers"
	"github.com/atelierhub/SBM-SchedulingService/internal/api/middleware"
	"github.com/atelierhub/SBM-SchedulingService/internal/service/appointments"
	"github.com/atelierhub/SBM-SchedulingService/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentID  = "некорректный ID записи"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgNotFound              = "запись не найдена"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgForbidden             = "доступ запрещен"
	msgCannotCancel          = "запись не может быть отменена"
	msgJustificationRequired = "требуется обоснование отмены"
)

// CancelRequest HTTP request model
type CancelRequest struct {
	// SelfService true, когда запись отменяет сам клиент
	SelfService bool   `json:"selfService,omitempty"`
	Reason      string `json:"reason"`
}

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req CancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Self-service отмена действует от имени клиента из заголовка
	serviceReq := &models.CancelAppointmentRequest{Reason: req.Reason}
	if req.SelfService {
		userID, ok := middleware.GetUserID(r.Context())
		if !ok {
			h.logger.Warn("PATCH /appointments/{id}/cancel - Missing user ID for self-service cancel")
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}
		serviceReq.ActorCustomerID = userID
	}

	if err := h.service.Cancel(r.Context(), appointmentID, serviceReq); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Access denied: appointment_id=%d, actor=%d",
				appointmentID, serviceReq.ActorCustomerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrJustificationRequired):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Justification required: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgJustificationRequired)

		case errors.Is(err, appointments.ErrCannotCancel):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Cannot cancel: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /appointments/{id}/cancel - Failed to cancel: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Appointment cancelled successfully: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

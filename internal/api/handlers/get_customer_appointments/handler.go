package get_customer_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/atelierhub/SBM-SchedulingService/internal/api/handlers"
	"github.com/atelierhub/SBM-SchedulingService/internal/service/appointments"
	"github.com/atelierhub/SBM-SchedulingService/internal/service/appointments/models"
)

const (
	msgInvalidCustomerID = "некорректный ID клиента"
	msgInvalidStatus     = "некорректный статус записи"
)

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

// Handle GET /api/v1/customers/{customerId}/appointments
// Query params: status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerIDStr := vars["customerId"]

	customerID, err := strconv.ParseInt(customerIDStr, 10, 64)
	if err != nil || customerID <= 0 {
		h.logger.Warn("GET /customers/{id}/appointments - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	req := &models.GetCustomerAppointmentsRequest{CustomerID: customerID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetCustomerAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /customers/{id}/appointments - Invalid input: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /customers/{id}/appointments - Failed to get appointments: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/{id}/appointments - Appointments retrieved successfully: customer_id=%d, count=%d",
		customerID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}

package domain

// statusTransitions описывает допустимые переходы статусов:
// scheduled -> confirmed -> completed -> invoiced, отмена возможна из любого
// нетерминального статуса. invoiced и cancelled — терминальные.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled: {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {StatusInvoiced, StatusCancelled},
	StatusInvoiced:  {},
	StatusCancelled: {},
}

// ValidStatus reports whether s is a known appointment status
func ValidStatus(s AppointmentStatus) bool {
	_, ok := statusTransitions[s]
	return ok
}

// IsTerminalStatus reports whether s admits no further transitions
func IsTerminalStatus(s AppointmentStatus) bool {
	allowed, ok := statusTransitions[s]
	return ok && len(allowed) == 0
}

// CanTransition reports whether the transition from -> to is legal
func CanTransition(from, to AppointmentStatus) bool {
	for _, s := range statusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// RescheduleOutcome is the status side effect of a date/service/professional change
type RescheduleOutcome struct {
	Status      AppointmentStatus
	StatusReset bool
}

// RescheduleStatus returns the status an appointment carries after a
// reschedule. A confirmed appointment is demoted back to scheduled because
// the changed time or resource invalidates the customer's confirmation;
// the demotion is reported via StatusReset so callers can surface it.
// The current status must be reschedulable (see Appointment.CanBeRescheduled).
func RescheduleStatus(current AppointmentStatus) RescheduleOutcome {
	if current == StatusConfirmed {
		return RescheduleOutcome{Status: StatusScheduled, StatusReset: true}
	}
	return RescheduleOutcome{Status: current}
}

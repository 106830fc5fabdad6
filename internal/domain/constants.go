package domain

// Default schedule configuration values
const (
	DefaultDayStart        = "08:00"
	DefaultDayEnd          = "20:00"
	DefaultSlotStepMinutes = 30
)

// Business validation constants
const (
	MinServiceDurationMinutes = 1
	MaxServiceDurationMinutes = 480 // 8 hours

	// MinJustificationLength минимальная длина обоснования для self-service
	// отмены и переноса записи
	MinJustificationLength = 3

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxProfessionalLength       = 100
)

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM
)

// ActiveStatuses список статусов, занимающих время мастера
// Используется при выборке busy-интервалов
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
	StatusInvoiced,
}

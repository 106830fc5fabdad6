package get_available_slots

import (
	"time"

	"github.com/atelierhub/SBM-SchedulingService/pkg/types"
)

// SlotState классификация слота
type SlotState string

const (
	// SlotAvailable слот свободен для бронирования
	SlotAvailable SlotState = "available"
	// SlotConflict слот пересекается с существующей записью
	SlotConflict SlotState = "conflict"
	// SlotPast слот уже в прошлом
	SlotPast SlotState = "past"
)

// Request модель запроса на классификацию слотов дня
type Request struct {
	Date      time.Time // Календарный день
	ServiceID int64     // Услуга, определяет длительность кандидата

	// Professional — мастер, для которого подбираются слоты.
	// nil — мастер не выбран: busy-интервалы всех мастеров учитываются
	// консервативно.
	Professional *string

	// ExcludeAppointmentID — при редактировании существующей записи её
	// собственный интервал не должен конфликтовать сам с собой. 0 = нет.
	ExcludeAppointmentID int64

	// SelectedTime — текущее выбранное в форме время (опционально). Если
	// оно стало недоступным, выбор переводится на первый свободный слот.
	SelectedTime types.TimeString
}

// Slot классифицированный слот
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
	State           SlotState
}

// Response результат классификации слотов дня
type Response struct {
	Date         time.Time
	ServiceID    int64
	Professional *string

	// Slots классификация каждого слота сетки (для всех дней)
	Slots []Slot

	// Visible список для отображения: для сегодняшнего дня прошедшие
	// слоты исключены полностью, для остальных дней — все слоты
	Visible []Slot

	// Selected итоговое время выбора (пустое, если свободных слотов нет)
	Selected types.TimeString

	// SelectionMoved true, если переданный SelectedTime стал недоступен
	// и выбор был переведён на первый свободный слот
	SelectionMoved bool

	// NoAvailability true, если в этот день нет ни одного свободного слота
	NoAvailability bool
}

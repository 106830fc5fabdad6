package get_available_slots

import (
	"time"

	"github.com/atelierhub/SBM-SchedulingService/internal/conflict"
	"github.com/atelierhub/SBM-SchedulingService/internal/domain"
	"github.com/atelierhub/SBM-SchedulingService/internal/timegrid"
	"github.com/atelierhub/SBM-SchedulingService/pkg/types"
)

// classifySlots классифицирует каждый слот сетки для указанного дня
//
// Правила:
//   - слот "past", если день целиком в прошлом, либо день сегодняшний и
//     время слота не позже текущего времени
//   - слот "conflict", если интервал-кандидат [t, t+duration) строго
//     пересекается с busy-интервалом (граничащие интервалы не конфликтуют)
//   - иначе слот "available"
//
// Пустой набор busy-интервалов даёт все непрошедшие слоты свободными.
// Функция чистая: одинаковые входы всегда дают одинаковый результат.
func classifySlots(
	grid []types.TimeString,
	date time.Time,
	now time.Time,
	durationMinutes int,
	professional string,
	busy []*domain.Appointment,
	excludeID int64,
) []Slot {
	pastDay := timegrid.IsPastDay(date, now)
	today := timegrid.IsSameDay(date, now)
	nowTime := types.NewTimeString(now)

	slots := make([]Slot, 0, len(grid))
	for _, t := range grid {
		slot := Slot{
			StartTime:       t,
			DurationMinutes: durationMinutes,
			State:           SlotAvailable,
		}

		switch {
		case pastDay, today && !t.IsAfter(nowTime):
			slot.State = SlotPast
		default:
			start, err := t.OnDate(date)
			if err != nil {
				slot.State = SlotConflict
				break
			}
			if conflict.Blocked(start, durationMinutes, professional, busy, excludeID) {
				slot.State = SlotConflict
			}
		}

		slots = append(slots, slot)
	}
	return slots
}

// visibleSlots возвращает список для отображения: для сегодняшнего дня
// прошедшие слоты вырезаются, для остальных дней список совпадает с полным
// (прошедшие остаются, UI показывает их неактивными)
func visibleSlots(slots []Slot, date, now time.Time) []Slot {
	if !timegrid.IsSameDay(date, now) {
		return slots
	}

	visible := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if s.State == SlotPast {
			continue
		}
		visible = append(visible, s)
	}
	return visible
}

// resolveSelection переводит выбор формы на первый свободный слот, если
// текущий выбор отсутствует или стал недоступен
func resolveSelection(slots []Slot, selected types.TimeString) (types.TimeString, bool, bool) {
	var first types.TimeString
	selectedAvailable := false

	for _, s := range slots {
		if s.State != SlotAvailable {
			continue
		}
		if first.IsZero() {
			first = s.StartTime
		}
		if s.StartTime == selected {
			selectedAvailable = true
		}
	}

	// Нет ни одного свободного слота — день полностью занят
	if first.IsZero() {
		return "", false, true
	}

	if selectedAvailable {
		return selected, false, false
	}

	// Выбор переводится; флаг moved выставляется только если выбор был
	moved := !selected.IsZero()
	return first, moved, false
}

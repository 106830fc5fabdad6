package get_available_slots

import (
	"time"

	"github.com/atelierhub/SBM-SchedulingService/internal/domain"
	getAvailableSlots "github.com/atelierhub/SBM-SchedulingService/internal/usecase/get_available_slots"
	"github.com/atelierhub/SBM-SchedulingService/pkg/types"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	State           string `json:"state"` // available | conflict | past
}

// SlotsResponse HTTP модель ответа со слотами дня
type SlotsResponse struct {
	Date           string         `json:"date"` // "2026-03-14"
	ServiceID      int64          `json:"serviceId"`
	Professional   *string        `json:"professional,omitempty"`
	Slots          []SlotResponse `json:"slots"`
	Visible        []SlotResponse `json:"visible"`
	Selected       string         `json:"selected,omitempty"`
	SelectionMoved bool           `json:"selectionMoved"`
	NoAvailability bool           `json:"noAvailability"`
}

// ToUseCaseRequest собирает модель use case из query параметров
func ToUseCaseRequest(dateStr string, serviceID int64, professional *string, excludeID int64, selectedStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	var selected types.TimeString
	if selectedStr != "" {
		selected, err = types.NewTimeStringFromString(selectedStr)
		if err != nil {
			return nil, err
		}
	}

	return &getAvailableSlots.Request{
		Date:                 date,
		ServiceID:            serviceID,
		Professional:         professional,
		ExcludeAppointmentID: excludeID,
		SelectedTime:         selected,
	}, nil
}

// FromUseCaseResponse конвертирует модель use case в HTTP ответ
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	return &SlotsResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		ServiceID:      resp.ServiceID,
		Professional:   resp.Professional,
		Slots:          fromSlots(resp.Slots),
		Visible:        fromSlots(resp.Visible),
		Selected:       resp.Selected.String(),
		SelectionMoved: resp.SelectionMoved,
		NoAvailability: resp.NoAvailability,
	}
}

func fromSlots(slots []getAvailableSlots.Slot) []SlotResponse {
	result := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, SlotResponse{
			StartTime:       s.StartTime.String(),
			DurationMinutes: s.DurationMinutes,
			State:           string(s.State),
		})
	}
	return result
}

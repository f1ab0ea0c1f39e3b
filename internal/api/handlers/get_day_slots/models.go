package get_day_slots

import (
	"github.com/Mohanrajjicate/drone-booking/internal/domain"
	daySlots "github.com/Mohanrajjicate/drone-booking/internal/usecase/get_day_slots"
)

// TimeSlotResponse HTTP модель временного слота
type TimeSlotResponse struct {
	ID    string `json:"id"`    // "09-10"
	Label string `json:"label"` // "9:00 AM - 10:00 AM"
}

// DaySlotsResponse HTTP модель ответа о доступности даты
type DaySlotsResponse struct {
	Date     string `json:"date"`
	Bookable bool   `json:"bookable"`

	// Reason машиночитаемая причина недоступности, пустая для доступной даты
	Reason string `json:"reason,omitempty"`

	// Message готовое сообщение для view-only режима
	Message string `json:"message,omitempty"`

	AvailableSlots []TimeSlotResponse `json:"availableSlots"`
	BookedSlots    []TimeSlotResponse `json:"bookedSlots"`
}

func toSlotResponses(slots []domain.TimeSlot) []TimeSlotResponse {
	result := make([]TimeSlotResponse, 0, len(slots))
	for _, slot := range slots {
		result = append(result, TimeSlotResponse{ID: slot.ID, Label: slot.Label})
	}
	return result
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *daySlots.Response) *DaySlotsResponse {
	return &DaySlotsResponse{
		Date:           domain.DateKey(resp.Date),
		Bookable:       resp.Bookable,
		Reason:         string(resp.Reason),
		Message:        resp.Message,
		AvailableSlots: toSlotResponses(resp.AvailableSlots),
		BookedSlots:    toSlotResponses(resp.BookedSlots),
	}
}

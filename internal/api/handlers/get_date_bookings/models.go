package get_date_bookings

import (
	"time"

	"github.com/Mohanrajjicate/drone-booking/internal/service/bookings/models"
)

// BookingResponse HTTP модель бронирования в списке
type BookingResponse struct {
	ID            int64   `json:"id"`
	Date          string  `json:"date"`
	SlotID        string  `json:"slotId"`
	SlotLabel     string  `json:"slotLabel"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	ContactNumber string  `json:"contactNumber"`
	College       string  `json:"college"`
	EventName     *string `json:"eventName,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

// BookingListResponse HTTP модель списка бронирований на дату
type BookingListResponse struct {
	Date     string            `json:"date"`
	Bookings []BookingResponse `json:"bookings"`
}

// FromServiceResponse конвертирует модель сервиса в HTTP response
func FromServiceResponse(dateKey string, list *models.BookingListResponse) *BookingListResponse {
	result := make([]BookingResponse, 0, len(list.Bookings))
	for _, b := range list.Bookings {
		result = append(result, BookingResponse{
			ID:            b.ID,
			Date:          b.DateKey,
			SlotID:        b.SlotID,
			SlotLabel:     b.SlotLabel,
			Name:          b.Name,
			Email:         b.Email,
			ContactNumber: b.ContactNumber,
			College:       b.College,
			EventName:     b.EventName,
			CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		})
	}

	return &BookingListResponse{
		Date:     dateKey,
		Bookings: result,
	}
}

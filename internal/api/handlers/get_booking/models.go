package get_booking

import (
	"time"

	"github.com/Mohanrajjicate/drone-booking/internal/service/bookings/models"
)

// BookingResponse HTTP модель бронирования
type BookingResponse struct {
	ID            int64   `json:"id"`
	Date          string  `json:"date"` // каноничный ключ YYYY-MM-DD
	SlotID        string  `json:"slotId"`
	SlotLabel     string  `json:"slotLabel"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	ContactNumber string  `json:"contactNumber"`
	College       string  `json:"college"`
	EventName     *string `json:"eventName,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

// FromServiceResponse конвертирует модель сервиса в HTTP response
func FromServiceResponse(b *models.BookingResponse) *BookingResponse {
	return &BookingResponse{
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
	}
}

package create_booking

import (
	"time"

	"github.com/Mohanrajjicate/drone-booking/internal/domain"
	createBooking "github.com/Mohanrajjicate/drone-booking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date          string  `json:"date"`   // "2026-03-17"
	SlotID        string  `json:"slotId"` // "09-10"
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	ContactNumber string  `json:"contactNumber"`
	College       string  `json:"college"`
	EventName     *string `json:"eventName,omitempty"`
	TermsAccepted bool    `json:"termsAccepted"`
}

// BookingConfirmationResponse HTTP response model для экрана подтверждения
type BookingConfirmationResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Date             string `json:"date"`             // каноничный ключ YYYY-MM-DD
	ConfirmationDate string `json:"confirmationDate"` // "Monday, January 5"
	SlotID           string `json:"slotId"`
	SlotLabel        string `json:"slotLabel"`
	CreatedAt        string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату бронирования по каноничному ключу
	date, err := time.Parse(domain.DateKeyFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Date:   date,
		SlotID: r.SlotID,
		Form: domain.FormData{
			Name:          r.Name,
			Email:         r.Email,
			ContactNumber: r.ContactNumber,
			College:       r.College,
			EventName:     r.EventName,
		},
		TermsAccepted: r.TermsAccepted,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingConfirmationResponse {
	return &BookingConfirmationResponse{
		ID:               resp.ID,
		Name:             resp.Name,
		Date:             resp.DateKey,
		ConfirmationDate: resp.ConfirmationDate,
		SlotID:           resp.SlotID,
		SlotLabel:        resp.SlotLabel,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}
}

package models

import (
	"time"

	"github.com/Mohanrajjicate/drone-booking/internal/domain"
)

// BookingResponse модель бронирования для чтения
type BookingResponse struct {
	ID            int64
	DateKey       string
	SlotID        string
	SlotLabel     string
	Name          string
	Email         string
	ContactNumber string
	College       string
	EventName     *string
	CreatedAt     time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse
}

// FromDomainBooking конвертирует доменную модель в модель ответа
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		DateKey:       b.DateKey(),
		SlotID:        b.SlotID,
		SlotLabel:     b.SlotLabel(),
		Name:          b.Name,
		Email:         b.Email,
		ContactNumber: b.ContactNumber,
		College:       b.College,
		EventName:     b.EventName,
		CreatedAt:     b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных моделей
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: result}
}

package get_day_slots

import (
	"time"

	"github.com/Mohanrajjicate/drone-booking/internal/domain"
)

// Request модель запроса слотов на дату
type Request struct {
	Date time.Time // дата (без времени)
}

// Response модель ответа: доступность даты и ее слоты
type Response struct {
	Date time.Time

	// Bookable true, если дата доступна для бронирования:
	// не в прошлом, не занята целиком и не воскресенье
	Bookable bool

	// Reason причина недоступности (пустая для доступной даты).
	// При нескольких причинах действует приоритет:
	// прошлое > занято целиком > воскресенье.
	Reason  domain.UnavailableReason
	Message string

	// AvailableSlots свободные слоты в порядке определения
	AvailableSlots []domain.TimeSlot

	// BookedSlots занятые слоты в порядке определения
	// (для view-only дат показывается именно этот список)
	BookedSlots []domain.TimeSlot
}

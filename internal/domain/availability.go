package domain

import "time"

// UnavailableReason причина, по которой дата недоступна для бронирования
type UnavailableReason string

const (
	ReasonNone        UnavailableReason = ""
	ReasonPast        UnavailableReason = "past"
	ReasonFullyBooked UnavailableReason = "fully_booked"
	ReasonClosedDay   UnavailableReason = "closed_sunday"
)

// Message returns the user-facing explanation for the reason
func (r UnavailableReason) Message() string {
	switch r {
	case ReasonPast:
		return "This date is in the past and cannot be booked."
	case ReasonFullyBooked:
		return "This date is fully booked."
	case ReasonClosedDay:
		return "Bookings are not available on Sundays."
	default:
		return ""
	}
}

// IsDateInPast проверяет, что дата строго раньше сегодняшнего дня.
// Сравниваются каноничные ключи дат, а не моменты времени: дата из
// запроса распарсена в UTC, тогда как "сегодня" живет в поясе площадки,
// и сравнение полуночей как моментов сдвигало бы границу дня.
// Сегодняшний день всегда считается доступным, отсечки по времени
// внутри текущего дня нет.
func IsDateInPast(date, today time.Time) bool {
	return DateKey(date) < DateKey(today)
}

// DateUnavailableReason возвращает причину недоступности даты.
// При нескольких причинах сразу действует приоритет:
// прошлое > занято целиком > закрытый день (воскресенье).
func DateUnavailableReason(date, today time.Time, booked BookedSlots) UnavailableReason {
	switch {
	case IsDateInPast(date, today):
		return ReasonPast
	case booked.IsFullyBooked(DateKey(date)):
		return ReasonFullyBooked
	case date.Weekday() == time.Sunday:
		return ReasonClosedDay
	default:
		return ReasonNone
	}
}

// IsBookingAllowed проверяет, что дата доступна для бронирования:
// не в прошлом, не занята целиком и не воскресенье
func IsBookingAllowed(date, today time.Time, booked BookedSlots) bool {
	return DateUnavailableReason(date, today, booked) == ReasonNone
}

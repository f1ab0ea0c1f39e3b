package get_month_availability

import (
	"github.com/Mohanrajjicate/drone-booking/internal/domain"
	monthAvailability "github.com/Mohanrajjicate/drone-booking/internal/usecase/get_month_availability"
)

// CalendarDayResponse HTTP модель одной ячейки сетки календаря
type CalendarDayResponse struct {
	Date           string `json:"date"` // каноничный ключ YYYY-MM-DD
	Day            int    `json:"day"`  // число месяца для отображения
	IsCurrentMonth bool   `json:"isCurrentMonth"`
	IsToday        bool   `json:"isToday"`
	IsPast         bool   `json:"isPast"`
	IsWeekend      bool   `json:"isWeekend"`
	IsFullyBooked  bool   `json:"isFullyBooked"`

	// IsBookable true для ячеек текущего месяца, по которым можно
	// открыть форму бронирования
	IsBookable bool `json:"isBookable"`
}

// MonthAvailabilityResponse HTTP модель ответа занятости месяца
type MonthAvailabilityResponse struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Today string `json:"today"`

	// Days ровно 42 ячейки, первая колонка - воскресенье
	Days []CalendarDayResponse `json:"days"`

	// BookedSlots занятость месяца: ключ даты -> занятые слоты
	BookedSlots map[string][]string `json:"bookedSlots"`

	// Degraded true, если занятость не удалось загрузить из хранилища
	// и показаны кэшированные либо пустые данные
	Degraded bool `json:"degraded"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *monthAvailability.Response) *MonthAvailabilityResponse {
	days := make([]CalendarDayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		key := day.Key()
		days = append(days, CalendarDayResponse{
			Date:           key,
			Day:            day.Date.Day(),
			IsCurrentMonth: day.IsCurrentMonth,
			IsToday:        day.IsToday,
			IsPast:         day.IsPast,
			IsWeekend:      day.IsWeekend,
			IsFullyBooked:  resp.Booked.IsFullyBooked(key),
			IsBookable:     day.IsCurrentMonth && domain.IsBookingAllowed(day.Date, resp.Today, resp.Booked),
		})
	}

	return &MonthAvailabilityResponse{
		Year:        resp.Year,
		Month:       int(resp.Month),
		Today:       domain.DateKey(resp.Today),
		Days:        days,
		BookedSlots: resp.Booked,
		Degraded:    resp.Degraded,
	}
}

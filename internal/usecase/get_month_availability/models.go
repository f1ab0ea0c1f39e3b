package get_month_availability

import (
	"time"

	"github.com/Mohanrajjicate/drone-booking/internal/domain"
)

// Request модель запроса занятости месяца
type Request struct {
	Year  int        // год отображаемого месяца
	Month time.Month // месяц (1-12)
}

// Response модель ответа: сетка календаря и занятость месяца
type Response struct {
	Year  int
	Month time.Month
	Today time.Time // "сегодня" в поясе площадки, по нему считались флаги

	// Days ровно 42 ячейки: хвост предыдущего месяца, текущий месяц,
	// заполнение следующими месяцами
	Days []domain.CalendarDay

	// Booked занятость видимого месяца: ключ даты -> занятые слоты
	Booked domain.BookedSlots

	// Degraded true, если выборка из хранилища не удалась и занятость
	// взята из кеша или считается пустой
	Degraded bool
}
